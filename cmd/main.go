package main

import (
	"net/http"
	"os"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HTML content for the endpoint index page
const htmlIndexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Catalog Service API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-patch { color: #fca130; }
        .method-delete { color: #f93e3e; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>Catalog Service API Endpoints</h1>

    <h2>Products API</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/products">/products</a></code> - List all products in insertion order.</li>
        <li><span class="method method-get">GET</span> <code>/products/{id}</code> - Retrieve a product by its ID (e.g., <a href="/products/1">/products/1</a>).</li>
        <li><span class="method method-get">GET</span> <code><a href="/products/search?category=electronics">/products/search?category={category}</a></code> - Case-insensitive category search; omit <code>category</code> to list everything.</li>
        <li><span class="method method-post">POST</span> <code>/products</code> - Create a product. JSON body: <code>{"id": "optional", "name": "string", "description": "string", "price": float64, "category": "string"}</code>. A missing ID is generated.</li>
        <li><span class="method method-put">PUT</span> <code>/products/{id}</code> - Replace a product's name, description, price and category. The ID never changes.</li>
        <li><span class="method method-patch">PATCH</span> <code>/products/{id}</code> - Partially update a product; only the fields present in the body are overwritten.</li>
        <li><span class="method method-delete">DELETE</span> <code>/products/{id}</code> - Delete a product by its ID.</li>
    </ul>

    <h2>Investments API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/investments/projection</code> - Project the future value of monthly contributions. JSON body: <code>{"monthlyInvestment": float64, "numberOfMonths": int, "annualInterestRate": float64}</code></li>
    </ul>

</body>
</html>
`

func serveIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlIndexPageContent))
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using info: %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Catalog Service...")

	gin.SetMode(cfg.GinMode)

	// --- Dependency Injection ---
	productRepo := repository.NewMemoryProductRepository(repository.NewUUIDGenerator(), logger)
	logger.Info("Repositories initialized.")

	if cfg.SeedSampleData {
		if err := repository.SeedSampleProducts(productRepo, logger); err != nil {
			logger.Fatalf("Failed to seed sample products: %v", err)
		}
	}

	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	investmentUseCase := usecase.NewInvestmentUseCase(logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, logger)
	investmentHandler := delivery.NewInvestmentHandler(investmentUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	// Route Registration
	router.GET("/", serveIndexPage)
	productHandler.RegisterRoutes(router)
	investmentHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	// Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
