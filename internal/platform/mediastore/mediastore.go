// Package mediastore persists uploaded media by name. Names are chosen by the
// caller and are never generated or deduplicated here.
package mediastore

import (
	"errors"
	"os"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no object exists under the name.
	ErrNotFound = errors.New("media not found")

	// ErrInvalidName is returned for names that are empty or contain path elements.
	ErrInvalidName = errors.New("invalid media name")

	// ErrAlreadyExists is returned by Save when the name is already taken.
	ErrAlreadyExists = errors.New("media already exists")
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// Backend names accepted by MEDIA_BACKEND.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config holds media store settings.
type Config struct {
	Backend      string
	Dir          string // local backend root
	PublicPrefix string // URL prefix under which stored names are served

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Timeout   time.Duration
}

// LoadConfigFromEnv reads the media store settings from environment variables.
func LoadConfigFromEnv() Config {
	timeout, err := time.ParseDuration(os.Getenv("S3_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}
	return Config{
		Backend:      envOr("MEDIA_BACKEND", BackendLocal),
		Dir:          envOr("MEDIA_DIR", "./uploads"),
		PublicPrefix: strings.TrimRight(envOr("MEDIA_PUBLIC_PREFIX", "/uploads"), "/"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Region:     envOr("S3_REGION", "us-east-1"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),
		S3AccessKey:  os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:  os.Getenv("S3_SECRET_KEY"),
		S3Timeout:    timeout,
	}
}

// ValidateName rejects names that could escape the store root.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return ErrInvalidName
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
