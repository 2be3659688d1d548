package main

import (
	"fmt"
	"log"

	"docreader/internal/config"
	"docreader/internal/handler"
	"docreader/internal/parser"
	"docreader/internal/parser/claude"
	"docreader/internal/parser/gemini"
	"docreader/internal/parser/openai"
	"docreader/internal/pdftext"
	"docreader/internal/port"
	"docreader/internal/repository/postgres"
	"docreader/internal/router"
	"docreader/internal/service"
)

// @title DocReader API
// @version 1.0
// @description Invoice digitization backend: upload a PDF or image, extract structured invoice data via an AI model, review, save, and re-export.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)

	// Register extraction providers
	parser.RegisterProvider("gemini", func(pc *config.ProviderConfig) port.TextGenerator {
		return gemini.NewGenerator(pc)
	})
	parser.RegisterProvider("openai", func(pc *config.ProviderConfig) port.TextGenerator {
		return openai.NewGenerator(pc)
	})
	parser.RegisterProvider("claude", func(pc *config.ProviderConfig) port.TextGenerator {
		return claude.NewGenerator(pc)
	})

	// Build a generator per configured provider. Providers without an API
	// key are left out; requests naming them fail with unknown provider.
	generators := map[string]port.TextGenerator{}
	for name, pc := range cfg.Parser.Providers() {
		if pc.APIKey == "" {
			continue
		}
		gen, err := parser.NewGenerator(name, pc)
		if err != nil {
			return fmt.Errorf("failed to initialize provider %s: %w", name, err)
		}
		generators[name] = gen
		log.Printf("extraction provider enabled: %s (%s)", name, pc.DefaultModel)
	}

	// Initialize services
	extractSvc := service.NewExtractService(generators, cfg.Parser.Default, pdftext.NewExtractor())
	invoiceSvc := service.NewInvoiceService(invoiceRepo)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, extractH, invoiceH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
