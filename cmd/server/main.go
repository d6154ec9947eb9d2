package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/greenscan/backend/config"
	httpDelivery "github.com/greenscan/backend/internal/delivery/http"
	"github.com/greenscan/backend/internal/domain"
	"github.com/greenscan/backend/internal/infrastructure/engine"
	"github.com/greenscan/backend/internal/infrastructure/openfoodfacts"
	"github.com/greenscan/backend/internal/infrastructure/share"
	"github.com/greenscan/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GreenScan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Product database: %s", cfg.OpenFoodFacts.BaseURL)

	// Infrastructure
	offClient := openfoodfacts.NewClient(
		cfg.OpenFoodFacts.BaseURL,
		cfg.OpenFoodFacts.UserAgent,
		cfg.OpenFoodFacts.Timeout,
	)
	decodingEngine := engine.NewRemoteEngine()

	// Usecase layer
	lookupService := usecase.NewLookupService(offClient)
	presenter := usecase.NewResultPresenter(
		usecase.NewGradeClassifier(),
		usecase.NewLabelCatalog(),
		usecase.NewGradeExplanationCatalog(),
	)

	var senders []domain.ShareSender
	if cfg.Share.WebhookURL != "" {
		senders = append(senders, share.NewWebhookSender(cfg.Share.WebhookURL, 10*time.Second))
		log.Printf("Share webhook configured: %s", cfg.Share.WebhookURL)
	}
	exporter := usecase.NewShareExporter(senders...)

	results := httpDelivery.NewResultStore()

	// A decoded barcode goes straight through the verdict pipeline; the
	// newest result overwrites whatever was stored before.
	onCode := func(code string) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.OpenFoodFacts.Timeout)
		defer cancel()

		product, err := lookupService.Lookup(ctx, code)
		if err != nil {
			results.Put(presenter.PresentError())
			return
		}
		results.Put(presenter.Present(product))
	}

	session := usecase.NewScanSession(decodingEngine, engineConfig(cfg), onCode)

	handler := httpDelivery.NewHandler(lookupService, presenter, exporter, session, decodingEngine, results)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// engineConfig builds the capture configuration, starting from the fixed
// defaults and applying any overrides from config.
func engineConfig(cfg *config.Config) domain.EngineConfig {
	ec := usecase.DefaultEngineConfig()
	if cfg.Scanner.FacingMode != "" {
		ec.FacingMode = cfg.Scanner.FacingMode
	}
	if cfg.Scanner.MinWidth > 0 {
		ec.MinWidth = cfg.Scanner.MinWidth
	}
	if cfg.Scanner.MinHeight > 0 {
		ec.MinHeight = cfg.Scanner.MinHeight
	}
	if len(cfg.Scanner.Readers) > 0 {
		ec.Readers = cfg.Scanner.Readers
	}
	if cfg.Scanner.Workers > 0 {
		ec.Workers = cfg.Scanner.Workers
	}
	return ec
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
