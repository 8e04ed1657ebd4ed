package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// serverConfig holds the process-level settings. Each platform package loads
// its own section.
type serverConfig struct {
	Port          string
	CORSOrigins   []string
	RunMigrations bool
	LogLevel      slog.Level
}

func loadServerConfig() serverConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	origins := []string{"http://localhost:3000"}
	if v, ok := os.LookupEnv("CORS_ORIGIN"); ok {
		origins = splitList(v)
	}

	migrate, _ := strconv.ParseBool(os.Getenv("RUN_MIGRATIONS"))

	return serverConfig{
		Port:          port,
		CORSOrigins:   origins,
		RunMigrations: migrate,
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
	}
}

// splitList splits a comma separated value; "*" or an empty value allows any origin.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s == "*" {
			return nil
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
