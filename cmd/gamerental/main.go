package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gamerental/cli/internal/cli"
	"gamerental/cli/internal/config"
	"gamerental/cli/internal/database"
	"gamerental/cli/internal/repository"
	"gamerental/cli/internal/service"
)

func init() {
	config.LoadConfig()
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", os.Args[0])
		os.Exit(1)
	}
	dbname, port, user := os.Args[1], os.Args[2], os.Args[3]
	cfg := config.AppConfig

	fmt.Println("Connecting to database...")
	db, err := database.Connect(database.BuildDSN(cfg.DBHost, port, dbname, user, cfg.DBSSLMode))
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer database.Close(db)

	if cfg.SeedDemoData {
		if err := database.NewSeeder(db).Run(); err != nil {
			log.Printf("Seeding failed: %v", err)
		}
	}

	users := repository.NewUserRepository(db)
	catalog := repository.NewCatalogRepository(db)
	orders := repository.NewOrderRepository(db)
	tracking := repository.NewTrackingRepository(db)

	shipping := service.ShippingDefaults{Origin: cfg.ShipOrigin, Courier: cfg.ShipCourier}

	shell := cli.NewShell(os.Stdin, os.Stdout, os.Stderr, cli.Services{
		Auth:     service.NewAuthService(users),
		Users:    service.NewUserService(users),
		Catalog:  service.NewCatalogService(catalog),
		Orders:   service.NewOrderService(orders, tracking, catalog, users, shipping),
		Tracking: service.NewTrackingService(tracking, orders, users),
	})
	shell.Run(context.Background())

	fmt.Println("Disconnecting from database...Done")
	fmt.Println("\nBye !")
}
