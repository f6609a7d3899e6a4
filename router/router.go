package router

import (
	"io/fs"
	"net/http"

	"github.com/correia-jilson/pennywise-tracker/api"
	"github.com/correia-jilson/pennywise-tracker/config"
	"github.com/correia-jilson/pennywise-tracker/database"
	_ "github.com/correia-jilson/pennywise-tracker/docs"
	"github.com/correia-jilson/pennywise-tracker/store"
	"github.com/correia-jilson/pennywise-tracker/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the gin engine: CORS, the embedded dashboard page,
// the REST API and the swagger UI.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Embedded static dashboard page.
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load page")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger UI.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	st := store.New(database.DB)
	categoryHandler := api.NewCategoryHandler(st)
	expenseHandler := api.NewExpenseHandler(st)
	exportHandler := api.NewExportHandler(st)

	rest := r.Group("/api")
	{
		rest.GET("/categories", categoryHandler.List)
		rest.POST("/categories", categoryHandler.Create)

		rest.GET("/expenses", expenseHandler.List)
		rest.POST("/expenses", expenseHandler.Create)
		rest.DELETE("/expenses", expenseHandler.Delete)
		rest.GET("/expenses/export", exportHandler.Export)
	}

	// Health check.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows cross-origin access to every route. Deliberately
// permissive for the demo scope.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
