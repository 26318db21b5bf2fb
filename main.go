package main

import (
	"fmt"
	"log"

	"github.com/surajprakash3/Foodie-project/configs"
	"github.com/surajprakash3/Foodie-project/middlewares"
	"github.com/surajprakash3/Foodie-project/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Sync()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.ClientURL))

	// Serve uploaded images
	r.Static("/uploads", "./"+cfg.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "foodie API is running"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
