package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediahub/database"
	"mediahub/internal/config"
	"mediahub/internal/http-api/handler"
	"mediahub/internal/http-api/repository"
	"mediahub/internal/http-api/service"
	"mediahub/internal/sentiment"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// 2. Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	// 3. Outbound sentiment client
	analyzer := sentiment.NewClient(cfg.SentimentAPIURL, cfg.SentimentAPIToken, cfg.SentimentTimeout)

	// 4. Wire repositories -> services -> handlers
	productRepo := repository.NewProductRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)
	userRepo := repository.NewUserRepository(db)

	productSvc := service.NewProductService(productRepo)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, analyzer)
	userSvc := service.NewUserService(userRepo)
	statisticSvc := service.NewStatisticService(feedbackRepo)
	bulkSvc := service.NewBulkService(productSvc, feedbackSvc, cfg.BulkProductChunkSize, cfg.BulkFeedbackChunkSize)

	productHandler := handler.NewProductHandler(productSvc)
	feedbackHandler := handler.NewFeedbackHandler(feedbackSvc)
	userHandler := handler.NewUserHandler(userSvc)
	statisticHandler := handler.NewStatisticHandler(statisticSvc)
	utilsHandler := handler.NewUtilsHandler(bulkSvc)

	// 5. Setup Gin
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "API is alive and database connected",
		})
	})

	userHandler.RegisterRoutes(r.Group("/user"))
	feedbackHandler.RegisterRoutes(r.Group("/feedback"))
	productHandler.RegisterRoutes(r.Group("/product"))
	statisticHandler.RegisterRoutes(r.Group("/statistic"))
	utilsHandler.RegisterRoutes(r.Group("/utils"))

	httpServer := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Println("Server running at", httpServer)
	if err := r.Run(httpServer); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
