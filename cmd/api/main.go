package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-sales-dashboard/internal/cache"
	"go-sales-dashboard/internal/config"
	"go-sales-dashboard/internal/events"
	"go-sales-dashboard/internal/handler"
	"go-sales-dashboard/internal/kafka"
	"go-sales-dashboard/internal/middleware"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/repository"
	"go-sales-dashboard/internal/service"
	"go-sales-dashboard/internal/ws"
	"go-sales-dashboard/pkg/database"
	"go-sales-dashboard/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseDSN, cfg.DBLogLevel)
	defer database.Close(db)
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&model.User{}, &model.Produk{}, &model.Transaksi{}); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}
	}

	// 3. Live push + domain events
	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	publishers := events.Fanout{wsHub}
	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.ServiceName, 1024)
		producer.Start(ctx)
		publishers = append(publishers, producer)
		log.Printf("Publishing events to kafka topic %s", cfg.KafkaTopic)
	}

	// 4. Aggregate cache
	var aggCache cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		rdb := cache.NewClient(cfg.RedisAddr)
		defer rdb.Close()
		aggCache = cache.NewRedis(rdb, cfg.CacheTTL)
		log.Printf("Caching aggregates in redis at %s", cfg.RedisAddr)
	}

	// 5. Dependency Injection (Wiring Layers)
	clock := service.NewClock(cfg.Location)
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	userService := service.NewUserService(userRepo, publishers)
	authService := service.NewAuthService(userRepo, tokens, publishers)
	salesService := service.NewSalesService(txRepo, aggCache, clock)
	dashService := service.NewDashboardService(productRepo, txRepo, clock)

	live := service.NewLivePusher(dashService, wsHub, cfg.LiveInterval)
	go live.Run(ctx)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Sales Dashboard API v1.0",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	// 7. Routes
	handler.RegisterRoutes(app, handler.Handlers{
		Users:     handler.NewUserHandler(userService),
		Auth:      handler.NewAuthHandler(authService),
		Sales:     handler.NewSalesHandler(salesService),
		Dashboard: handler.NewDashboardHandler(dashService),
		Ping:      func() error { return database.Ping(db) },
	}, middleware.RequireAuth(tokens, userRepo))

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		if !wsHub.Join(c) {
			return
		}
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	cancel()
	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}

	log.Println("Server exited")
}
