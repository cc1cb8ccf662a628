package routes

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"inventory-backend/internal/handlers"
	"inventory-backend/internal/middleware"
	"inventory-backend/internal/storage"
)

// Deps agrupa lo que necesitan las rutas
type Deps struct {
	Products       *handlers.ProductHandler
	Settings       *handlers.SettingsHandler
	Images         *handlers.ImageHandler
	UploadDir      string
	MaxUploadBytes int64
	Ping           func(ctx context.Context) error
	Log            logrus.FieldLogger
}

// NewRouter arma el engine con middlewares y todas las rutas
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		gin.Recovery(),
		cors.New(corsConfig()),
	)
	if d.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = d.MaxUploadBytes
	}

	RegisterRoutes(router, d)
	return router
}

func RegisterRoutes(router *gin.Engine, d Deps) {
	router.Static("/"+storage.PublicPrefix, d.UploadDir)
	router.GET("/health", health(d.Ping))

	upload := middleware.BodyLimit(d.MaxUploadBytes)

	api := router.Group("/api")
	{
		api.POST("/products", upload, d.Products.CreateProduct)
		api.PUT("/products/:id", d.Products.UpdateProduct)
		api.DELETE("/products/:id", d.Products.DeleteProduct)
		api.GET("/products", d.Products.ListProducts)
		api.GET("/products/search", d.Products.SearchProducts)
		api.GET("/products/:id", d.Products.GetProduct)

		api.POST("/settings", d.Settings.SaveSettings)
		api.GET("/settings", d.Settings.GetSettings)
		api.DELETE("/settings/price-codes", d.Settings.DeletePriceCodes)

		api.POST("/images", upload, d.Images.UploadImage)
		api.GET("/images/:imageId", d.Images.ServeImage)

		api.POST("/switch-to-alphabet", handlers.SwitchToAlphabet)
		api.POST("/switch-to-number", handlers.SwitchToNumber)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}

func health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
