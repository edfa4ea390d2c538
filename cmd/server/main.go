package main

import (
	"flag"
	"log"

	"github.com/capitolstays/valuation-backend-go/internal/api"
	"github.com/capitolstays/valuation-backend-go/internal/config"
	"github.com/capitolstays/valuation-backend-go/internal/database"
	"github.com/capitolstays/valuation-backend-go/internal/features"
	"github.com/capitolstays/valuation-backend-go/internal/repository"
	"github.com/capitolstays/valuation-backend-go/internal/service"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	deriver, err := features.NewDeriver(
		cfg.Market.POI,
		cfg.Market.Bounds,
		cfg.Market.RoomTypes,
		cfg.Market.Neighbourhoods,
	)
	if err != nil {
		log.Fatal("Failed to build feature deriver:", err)
	}

	listingRepo := repository.NewListingRepository(db)
	runRepo := repository.NewTrainingRunRepository(db)

	roiService := service.NewROIService(cfg.ROI)
	valuationService := service.NewValuationService(
		cfg.Market, cfg.Model, deriver, listingRepo, runRepo, roiService,
	)
	marketService := service.NewMarketService(listingRepo)

	// Training blocks startup; no appraisal is served before it completes.
	if err := valuationService.Bootstrap(cfg.Dataset); err != nil {
		log.Fatal("Failed to bootstrap valuation model:", err)
	}

	router := api.SetupRouter(cfg, valuationService, marketService)

	log.Printf("Server starting on %s (%s)", cfg.Server.Addr, cfg.Market.Name)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
