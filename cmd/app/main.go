package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/JuelHossain/import-goods-sub000/internal/admin"
	"github.com/JuelHossain/import-goods-sub000/internal/auth"
	"github.com/JuelHossain/import-goods-sub000/internal/category"
	"github.com/JuelHossain/import-goods-sub000/internal/config"
	"github.com/JuelHossain/import-goods-sub000/internal/idgen"
	"github.com/JuelHossain/import-goods-sub000/internal/merchant"
	"github.com/JuelHossain/import-goods-sub000/internal/order"
	"github.com/JuelHossain/import-goods-sub000/internal/preorder"
	"github.com/JuelHossain/import-goods-sub000/internal/product"
	"github.com/JuelHossain/import-goods-sub000/internal/restdb"
	"github.com/JuelHossain/import-goods-sub000/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "mode": mode(cfg)})
	})

	// demo stores: read-only snapshots by default, a mutable in-memory
	// store when DEMO_MUTABLE=1
	var (
		productFallback  product.Repository  = product.NewFixtureSnapshot()
		orderFallback    order.Repository    = order.NewFixtureSnapshot()
		preOrderFallback preorder.Repository = preorder.NewFixtureSnapshot()
	)
	if cfg.DemoMutable {
		productFallback = product.NewFixtureMemory()
		orderFallback = order.NewFixtureMemory()
		preOrderFallback = preorder.NewFixtureMemory()
	}

	// remote repositories, when a backend is configured. A postgres:// URL
	// gets the native driver, anything else the hosted table API. Failing
	// to reach the backend at startup is not fatal: the services fall back
	// to fixtures on every read anyway.
	var (
		productRemote  product.Repository
		orderRemote    order.Repository
		preOrderRemote preorder.Repository
		orderIDs       idgen.Generator
		preOrderIDs    idgen.Generator
	)
	if cfg.RemoteEnabled() {
		if cfg.RemotePostgres() {
			db, err := sql.Open("pgx", cfg.BackendURL)
			if err != nil {
				log.Printf("warning: cannot open backend database, running on fixtures: %v", err)
			} else {
				if err := db.Ping(); err != nil {
					log.Printf("warning: backend database unreachable at startup: %v", err)
				}
				defer db.Close()
				productRemote = product.NewPostgresRepository(db)
				orderRemote = order.NewPostgresRepository(db)
				preOrderRemote = preorder.NewPostgresRepository(db)
			}
		} else {
			client := restdb.NewClient(cfg.BackendURL, cfg.BackendAnonKey, &http.Client{Timeout: cfg.BackendTimeout})
			productRemote = product.NewRestRepository(client)
			orderRemote = order.NewRestRepository(client)
			preOrderRemote = preorder.NewRestRepository(client)
		}
		// remote rows need ids minted before insert; the demo stores mint
		// their own
		orderIDs = idgen.UUID{}
		preOrderIDs = idgen.UUID{}
	}

	productService := product.NewService(productRemote, productFallback, cfg.BackendTimeout)
	orderService := order.NewService(orderRemote, orderFallback, orderIDs, cfg.BackendTimeout)
	preOrderService := preorder.NewService(preOrderRemote, preOrderFallback, preOrderIDs, cfg.BackendTimeout)

	userService, err := user.NewDemoService()
	if err != nil {
		log.Fatalf("seed demo accounts: %v", err)
	}

	productHandler := product.NewHandler(productService)
	orderHandler := order.NewHandler(orderService)
	preOrderHandler := preorder.NewHandler(preOrderService)
	authHandler := auth.NewHandler(userService, cfg.JWTSecret)
	adminHandler := admin.NewHandler(productService, orderService, preOrderService)

	// public surface
	authHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	merchant.NewHandler(merchant.NewService()).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService()).RegisterPublicRoutes(app)

	// everything below requires a valid session token
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))

	authHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	preOrderHandler.RegisterProtectedRoutes(app)

	adminGuard := auth.RequireRole(auth.RoleAdmin)
	productHandler.RegisterAdminRoutes(app, adminGuard)
	orderHandler.RegisterAdminRoutes(app, adminGuard)
	preOrderHandler.RegisterAdminRoutes(app, adminGuard)
	adminHandler.RegisterAdminRoutes(app, adminGuard)

	log.Printf("listening on %s (%s)", cfg.Addr, mode(cfg))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func mode(cfg config.Config) string {
	if cfg.RemoteEnabled() {
		return "remote"
	}
	return "demo"
}
