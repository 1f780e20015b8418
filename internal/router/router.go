package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"menuparser/internal/menu"
	"menuparser/internal/metrics"
	"menuparser/internal/middleware"
	"menuparser/internal/web"
)

type Options struct {
	AllowedOrigins []string
	// MaxUploadBytes also sizes gin's in-memory multipart buffer used by c.FormFile.
	MaxUploadBytes int64
	ServeUI        bool
}

func NewRouter(menuHandler *menu.Handler, opts Options) (*gin.Engine, error) {
	r := gin.New()

	if opts.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = opts.MaxUploadBytes
	}

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		metrics.PrometheusMiddleware(),
	)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/process", menuHandler.Process)
	}

	if opts.ServeUI {
		if err := web.RegisterStaticRoutes(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}
