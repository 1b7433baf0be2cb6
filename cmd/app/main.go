package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wichananm65/acoustic-shop-backend/internal/cart"
	"github.com/wichananm65/acoustic-shop-backend/internal/checkout"
	"github.com/wichananm65/acoustic-shop-backend/internal/config"
	"github.com/wichananm65/acoustic-shop-backend/internal/contact"
	"github.com/wichananm65/acoustic-shop-backend/internal/product"
	"github.com/wichananm65/acoustic-shop-backend/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var db *sql.DB
	if cfg.NeedsPostgres() || cfg.DatabaseURL != "" {
		db = mustOpenDB(ctx, cfg.DatabaseURL)
		defer db.Close()
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
	}

	catalog, err := product.LoadCatalog(ctx, catalogSource(ctx, cfg, db, rdb))
	if err != nil {
		config.Exitf("load catalog: %v", err)
	}
	productService := product.NewService(catalog)

	issuer, err := session.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		config.Exitf("session: %v", err)
	}

	storage, closeStorage := cartStorage(ctx, cfg, db, rdb)
	defer closeStorage()
	cartService := cart.NewService(storage)

	publisher, closePublisher := orderPublisher(cfg)
	defer closePublisher()
	checkoutService := checkout.NewService(orderRepository(ctx, db), cartService, publisher, cfg.CheckoutDelay)

	contactService := contact.NewService(contact.NewInMemoryRepository(), cfg.ContactDelay)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "products": len(productService.List())})
	})

	product.NewHandler(productService).RegisterPublicRoutes(app)
	session.NewHandler(issuer).RegisterPublicRoutes(app)
	contact.NewHandler(contactService).RegisterPublicRoutes(app)

	app.Use(issuer.Middleware())

	cart.NewHandler(cartService, cart.NewCatalogResolver(productService)).RegisterProtectedRoutes(app)
	checkout.NewHandler(checkoutService).RegisterProtectedRoutes(app)

	log.Printf("[app] starting server on %s (catalog=%s, cart=%s)", cfg.Addr, cfg.CatalogSource, cfg.CartStorage)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("[app] server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(ctx context.Context, dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		config.Exitf("open database: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		config.Exitf("ping database: %v", err)
	}
	return db
}

func catalogSource(ctx context.Context, cfg config.Config, db *sql.DB, rdb *redis.Client) product.Source {
	var src product.Source = product.NewStaticSource(product.DefaultProducts())
	if cfg.CatalogSource == config.CatalogPostgres {
		pg := product.NewPostgresSource(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			config.Exitf("catalog schema: %v", err)
		}
		n, err := pg.SeedIfEmpty(ctx, product.DefaultProducts())
		if err != nil {
			config.Exitf("seed catalog: %v", err)
		}
		if n > 0 {
			log.Printf("[app] seeded %d products", n)
		}
		src = pg
	}
	if rdb != nil {
		src = product.NewCachedSource(rdb, src, cfg.CatalogCacheTTL)
	}
	return src
}

func cartStorage(ctx context.Context, cfg config.Config, db *sql.DB, rdb *redis.Client) (cart.Storage, func()) {
	switch cfg.CartStorage {
	case config.StorageSQLite:
		s, err := cart.OpenSQLiteStorage(cfg.CartSQLitePath)
		if err != nil {
			config.Exitf("cart storage: %v", err)
		}
		return s, func() { _ = s.Close() }
	case config.StoragePostgres:
		s := cart.NewPostgresStorage(db)
		if err := s.EnsureSchema(ctx); err != nil {
			config.Exitf("cart schema: %v", err)
		}
		return s, func() {}
	case config.StorageRedis:
		return cart.NewRedisStorage(rdb, cfg.SessionTTL), func() {}
	default:
		return cart.NewMemoryStorage(), func() {}
	}
}

func orderRepository(ctx context.Context, db *sql.DB) checkout.Repository {
	if db == nil {
		return checkout.NewInMemoryRepository()
	}
	repo := checkout.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		config.Exitf("orders schema: %v", err)
	}
	return repo
}

func orderPublisher(cfg config.Config) (checkout.Publisher, func()) {
	if cfg.RabbitMQURI == "" {
		return checkout.NopPublisher{}, func() {}
	}
	conn, err := amqp.Dial(cfg.RabbitMQURI)
	if err != nil {
		config.Exitf("rabbitmq: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		config.Exitf("rabbitmq channel: %v", err)
	}
	pub, err := checkout.NewAMQPPublisher(ch, cfg.OrderQueue)
	if err != nil {
		config.Exitf("rabbitmq queue: %v", err)
	}
	return pub, func() {
		_ = ch.Close()
		_ = conn.Close()
	}
}
