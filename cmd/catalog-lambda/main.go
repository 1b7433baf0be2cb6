package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/caarlos0/env/v11"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/wichananm65/acoustic-shop-backend/internal/config"
	"github.com/wichananm65/acoustic-shop-backend/internal/product"
)

type lambdaConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
}

func main() {
	var cfg lambdaConfig
	if err := env.Parse(&cfg); err != nil {
		config.Exitf("parse env: %v", err)
	}

	var src product.Source = product.NewStaticSource(product.DefaultProducts())
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			config.Exitf("open database: %v", err)
		}
		defer db.Close()
		src = product.NewPostgresSource(db)
	}

	// Loaded once per cold start.
	catalog, err := product.LoadCatalog(context.Background(), src)
	if err != nil {
		log.Fatalf("[catalog-lambda] load catalog: %v", err)
	}

	lambda.Start(product.NewAPIGatewayHandler(product.NewService(catalog)).Handle)
}
