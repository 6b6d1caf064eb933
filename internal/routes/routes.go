package routes

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zaqqye/linkbio/internal/auth"
	"github.com/zaqqye/linkbio/internal/config"
	"github.com/zaqqye/linkbio/internal/controllers"
	"github.com/zaqqye/linkbio/internal/database"
	"github.com/zaqqye/linkbio/internal/metrics"
	"github.com/zaqqye/linkbio/internal/middleware"
	"github.com/zaqqye/linkbio/internal/storage"
	"github.com/zaqqye/linkbio/internal/store"
	"github.com/zaqqye/linkbio/internal/ws"
)

// Register installs middleware and every route on r.
func Register(r *gin.Engine, s store.Store, cfg *config.Config, hub *ws.Hub) {
	r.MaxMultipartMemory = 8 << 20
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		metrics.Middleware(),
		middleware.ErrorHandler(),
	)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(cfg)))
	}

	// Controllers
	authenticator := auth.New(s, auth.Config{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		ExpiresIn: cfg.TokenTTL(),
	})
	local := storage.NewLocalStorage(cfg.UploadDir)
	authCtrl := &controllers.AuthController{Auth: authenticator}
	websiteCtrl := &controllers.WebsiteController{Store: s}
	healthCtrl := &controllers.HealthController{Store: s}
	adminCtrl := &controllers.AdminController{
		Store: s,
		Hub:   hub,
		Seed: func(ctx context.Context) error {
			return database.SeedContent(ctx, s)
		},
	}
	uploadCtrl := &controllers.UploadController{
		Store:    s,
		Uploader: storage.NewUploader(local, cfg.UploadURLPrefix, cfg.UploadMaxBytes),
		Hub:      hub,
	}

	// Public
	r.GET("/healthz", healthCtrl.Health)
	r.GET("/metrics", metrics.Handler())
	if strings.HasPrefix(cfg.UploadURLPrefix, "/") {
		r.Static(cfg.UploadURLPrefix, local.Root())
	}

	api := r.Group("/api")
	{
		api.GET("/website", websiteCtrl.Get)
		api.GET("/ws", ws.Handler(hub))
		api.POST("/admin/login", authCtrl.Login)
	}

	// Protected
	requireAdmin := middleware.RequireAdmin(authenticator)
	api.POST("/init-db", requireAdmin, adminCtrl.InitDB)

	admin := api.Group("/admin", requireAdmin)
	{
		admin.GET("/me", authCtrl.Me)
		admin.POST("/update", adminCtrl.Update)
		admin.POST("/upload", uploadCtrl.Upload)
		admin.POST("/links", adminCtrl.SaveLink)
		admin.DELETE("/links/:id", adminCtrl.DeleteLink)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	return cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
