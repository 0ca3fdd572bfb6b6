package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Naitik2408/pizza-sub001/configs"
	"github.com/Naitik2408/pizza-sub001/middlewares"
	"github.com/Naitik2408/pizza-sub001/routes"
	"github.com/Naitik2408/pizza-sub001/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedSettings(); err != nil {
		log.Fatalf("seed settings failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedOffers(); err != nil {
		log.Fatalf("seed offers failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	rules := routes.RegisterRoutes(r, configs.DB(), cfg, routes.Deps{
		Gateway:  services.NoopGateway{},
		Notifier: services.LogNotifier{},
	})
	rules.AutoRefresh(context.Background(), cfg.RulesRefresh)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
