// Package httpapi wires the Gin transport to the application services: it
// owns the middleware chain (tracing, correlation IDs, access logs, panic
// recovery, metrics, rate limiting, compression, CORS) and the route table.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/config"
	"github.com/bakehouse/go-recipe-backend/internal/http/handlers"
	"github.com/bakehouse/go-recipe-backend/internal/http/middleware"
	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// RegisterRoutes attaches the middleware chain and every HTTP endpoint to the
// given Gin engine, mounting the public API under cfg.APIBasePath.
//
// Order in the chain matters: tracing wraps everything, the request ID must
// exist before logging and recovery run, and /metrics is registered ahead of
// the rate limiter so scrapes are never throttled.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(1 << 20))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(corsPolicy(cfg.CORS)))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db
	h := handlers.New(handlers.Services{
		Categories:         &services.CategoryService{DB: db},
		Ingredients:        &services.IngredientService{DB: db},
		PackagingMaterials: &services.PackagingMaterialService{DB: db},
		Purchases:          &services.PurchaseService{DB: db},
		PackagingPurchases: &services.PackagingPurchaseService{DB: db},
		Recipes:            &services.RecipeService{DB: db},
		RecipeDetails:      &services.RecipeDetailService{DB: db},
		Products:           &services.ProductService{DB: db},
		EggMaster:          &services.EggMasterService{DB: db},
	})

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Recipe categories
		api.POST("/recipe-categories", h.CreateCategory)
		api.GET("/recipe-categories", h.ListCategories)
		api.GET("/recipe-categories/:id", h.GetCategory)
		api.PUT("/recipe-categories/:id", h.UpdateCategory)
		api.DELETE("/recipe-categories/:id", h.DeleteCategory)

		// Ingredients
		api.POST("/ingredients", h.CreateIngredient)
		api.GET("/ingredients", h.ListIngredients)
		api.GET("/ingredients/:id", h.GetIngredient)
		api.PUT("/ingredients/:id", h.UpdateIngredient)
		api.DELETE("/ingredients/:id", h.DeleteIngredient)

		// Packaging materials
		api.POST("/packaging-materials", h.CreatePackagingMaterial)
		api.GET("/packaging-materials", h.ListPackagingMaterials)
		api.GET("/packaging-materials/:id", h.GetPackagingMaterial)
		api.PUT("/packaging-materials/:id", h.UpdatePackagingMaterial)
		api.DELETE("/packaging-materials/:id", h.DeletePackagingMaterial)

		// Ingredient purchases
		api.POST("/purchase-history", h.CreatePurchase)
		api.GET("/purchase-history", h.ListPurchases)
		api.GET("/purchase-history/:id", h.GetPurchase)
		api.PUT("/purchase-history/:id", h.UpdatePurchase)
		api.DELETE("/purchase-history/:id", h.DeletePurchase)

		// Packaging purchases
		api.POST("/packaging-purchase-history", h.CreatePackagingPurchase)
		api.GET("/packaging-purchase-history", h.ListPackagingPurchases)
		api.GET("/packaging-purchase-history/:id", h.GetPackagingPurchase)
		api.PUT("/packaging-purchase-history/:id", h.UpdatePackagingPurchase)
		api.DELETE("/packaging-purchase-history/:id", h.DeletePackagingPurchase)

		// Recipes
		api.POST("/recipes", h.CreateRecipe)
		api.GET("/recipes", h.ListRecipes)
		api.GET("/recipes/:id", h.GetRecipe)
		api.PUT("/recipes/:id", h.UpdateRecipe)
		api.DELETE("/recipes/:id", h.DeleteRecipe)
		api.GET("/recipes/:id/details", h.ListRecipeDetailsForRecipe)

		// Recipe details
		api.POST("/recipe-details", h.CreateRecipeDetail)
		api.GET("/recipe-details", h.ListRecipeDetails)
		api.GET("/recipe-details/recipe/:recipe_id", h.ListRecipeDetailsByRecipe)
		api.GET("/recipe-details/:id", h.GetRecipeDetail)
		api.PUT("/recipe-details/:id", h.UpdateRecipeDetail)
		api.DELETE("/recipe-details/:id", h.DeleteRecipeDetail)

		// Products
		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		// Egg master
		api.POST("/egg-master", h.CreateEggMaster)
		api.GET("/egg-master", h.ListEggMaster)
		api.GET("/egg-master/:id", h.GetEggMaster)
		api.PUT("/egg-master/:id", h.UpdateEggMaster)
		api.DELETE("/egg-master/:id", h.DeleteEggMaster)
	}
}

// corsPolicy builds the CORS config: an explicit origin allowlist when one is
// configured, otherwise allow-all without credentials.
func corsPolicy(c config.CORSConfig) cors.Config {
	p := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(c.AllowedOrigins) == 0 {
		p.AllowAllOrigins = true
	} else {
		p.AllowOrigins = c.AllowedOrigins
	}
	return p
}

// limitBody caps the request body size for all endpoints to maxBytes using
// http.MaxBytesReader. Requests exceeding the cap fail on body read.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
