package main

import (
	"log"

	"github.com/Seokzzoo/bonoclicker/internal/config"
	"github.com/Seokzzoo/bonoclicker/internal/database"
	"github.com/Seokzzoo/bonoclicker/internal/handlers"
	"github.com/Seokzzoo/bonoclicker/internal/middleware"
	"github.com/Seokzzoo/bonoclicker/internal/services"
	"github.com/Seokzzoo/bonoclicker/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Bono Clicker API
// @version         1.0
// @description     Daily click game with team assignment and daily/weekly leaderboards
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	loc := cfg.Location()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.Teams, cfg.SessionTTL)
	gameService := services.NewGameService(db, authService, loc, cfg.PlayWindowSec, cfg.MaxCPS)
	leaderboardService := services.NewLeaderboardService(db, loc, cfg.DailyTopLimit)

	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService, authService, leaderboardService, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/public", "./public")
	r.GET("/ws/leaderboard", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
		}

		game := api.Group("/game")
		game.Use(middleware.JWTAuth(authService))
		{
			game.POST("/start", gameHandler.Start)
			game.POST("/submit", gameHandler.Submit)
		}

		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("/daily", leaderboardHandler.Daily)
			leaderboard.GET("/weekly", leaderboardHandler.Weekly)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
