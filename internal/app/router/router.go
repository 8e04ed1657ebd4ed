package router

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "travel_journal/internal/feature/auth/transport/handler"
	goalshandler "travel_journal/internal/feature/goals/transport/handler"
	socialhandler "travel_journal/internal/feature/social/transport/handler"
	travelhandler "travel_journal/internal/feature/travelhistory/transport/handler"
	"travel_journal/internal/platform/http/handler"
	"travel_journal/internal/platform/http/middleware"
	jwtmw "travel_journal/internal/platform/jwt"
)

// defaultMultipartMemory bounds the in-memory part of a multipart upload:
// five images of at most 5MB plus the text fields.
const defaultMultipartMemory = 32 << 20

// Store reports database reachability. *db.Supervisor satisfies it.
type Store interface {
	Healthy() bool
	Check(ctx context.Context) error
}

type Handlers struct {
	Auth   *authhandler.AuthHandler
	Travel *travelhandler.TravelHistoryHandler
	Media  *travelhandler.MediaHandler
	Goals  *goalshandler.GoalHandler
	Social *socialhandler.SocialHandler
}

type Options struct {
	CORSOrigins []string
	JWTSecret   string
	// MediaPrefix is the public path uploaded media is served under. Media is
	// served by this process only when the prefix is a local path.
	MediaPrefix string
}

func NewRouter(h Handlers, store Store, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	r.MaxMultipartMemory = defaultMultipartMemory

	// 導通確認用
	r.GET("/healthz", handler.Health(store))
	r.HEAD("/healthz", handler.Health(store))

	if p := strings.TrimRight(opts.MediaPrefix, "/"); strings.HasPrefix(p, "/") {
		r.GET(p+"/:name", h.Media.Serve)
	}

	api := r.Group("/")
	api.Use(middleware.RequireDatabase(store))
	{
		api.POST("/signup", h.Auth.Signup)
		api.POST("/login", h.Auth.Login)

		api.POST("/travel-history", h.Travel.Submit)
		api.GET("/travel-history", h.Travel.ListAll)
		api.GET("/travel-history/:userID", h.Travel.ListByUser)
		api.GET("/travel-history-by-country", h.Travel.ListByArea)
		api.GET("/travel-history-by-area", h.Travel.ListByArea)

		api.POST("/future-goals", h.Goals.Create)
		api.GET("/future-goals/:userID", h.Goals.List)
		api.PUT("/future-goals/:goalID", h.Goals.Update)
		api.DELETE("/future-goals/:goalID", h.Goals.Delete)

		api.POST("/likes", h.Social.Like)
		api.GET("/likes/:history_id", h.Social.Likes)
		api.POST("/comments", h.Social.Comment)
		api.GET("/comments/:history_id", h.Social.Comments)

		// 認証必須
		api.GET("/me", jwtmw.AuthRequired(opts.JWTSecret), h.Auth.Me)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
