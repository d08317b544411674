package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"bugtracker-be/config"
	"bugtracker-be/controllers"
	"bugtracker-be/middlewares"
	"bugtracker-be/routes"
	"bugtracker-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ctx := context.Background()

	var bugStore store.BugStore
	switch os.Getenv("STORE_DRIVER") {
	case "memory":
		log.Println("Using in-memory bug store")
		bugStore = store.NewMemoryStore()
	default:
		client, err := config.ConnectDB(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		log.Println("MongoDB connection established successfully!")
		bugStore = store.NewMongoStore(client, config.DatabaseName())
	}

	r := gin.Default()
	r.Use(middlewares.ErrorHandler())
	r.Use(cors.New(corsConfig()))

	bc := controllers.NewBugController(bugStore)

	var createGuards []gin.HandlerFunc
	if os.Getenv("REDIS_ADDRESS") != "" {
		rdb, err := config.ConnectRedis(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis")

		limit := 20
		if v, err := strconv.Atoi(os.Getenv("BUG_CREATE_DAILY_LIMIT")); err == nil && v > 0 {
			limit = v
		}
		createGuards = append(createGuards, middlewares.BugCreateRateLimiter(rdb, limit))
	}

	routes.BugRoutes(r, bc, createGuards...)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bug Tracker API is running...")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server running on http://localhost:%s", port)

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	if err := bugStore.Close(shutdownCtx); err != nil {
		log.Printf("Store shutdown failed: %v", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
