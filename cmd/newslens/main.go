package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"newslens/internal/app"
	"newslens/internal/config"
	"newslens/internal/logger"
	"newslens/internal/metrics"
	"newslens/internal/model"
	"newslens/internal/sources"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger.Init(cfg.Debug)

	// Check if we should start HTTP server for monitoring
	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer(cfg.MonitoringPort)
	}

	store := sources.NewStore(cfg.CustomSourcesPath)
	if err := store.Load(); err != nil {
		logger.Warn("could not load custom sources, continuing without them", "error", err)
	}

	registry, err := sources.Load(cfg.SourcesPath, store)
	if err != nil {
		log.Fatalf("sources config error: %v", err)
	}

	category := model.CategoryNews
	if len(os.Args) > 1 {
		category, err = model.ParseCategory(os.Args[1])
		if err != nil {
			log.Fatalf("%v (valid: %v)", err, model.Categories)
		}
	}

	svc := app.NewService(cfg, registry)
	ctx := context.Background()

	articles, err := svc.Articles(ctx, category)
	if err != nil {
		log.Fatalf("fetch error: %v", err)
	}
	fmt.Printf("Fetched %d articles for %s\n", len(articles), category)

	for i, a := range articles {
		if i >= 10 {
			break
		}
		fmt.Println("---")
		fmt.Printf("[%s | %s] %s\n", a.Source.Name, a.Source.Bias, a.Title)
		fmt.Printf("%s | %s\n", a.Published.Format("2006-01-02 15:04"), a.URL)
	}

	groups, err := svc.StoryGroups(ctx, category)
	if err != nil {
		log.Fatalf("clustering error: %v", err)
	}
	fmt.Printf("\n%d story groups\n", len(groups))
	for _, g := range groups {
		fmt.Println("---")
		fmt.Printf("%d outlets: %s\n", g.SourceCount(), g.Lead.Title)
		if g.Bias.Rated > 0 {
			fmt.Printf("bias spread %.2f..%.2f (mean %.2f over %d rated)\n",
				g.Bias.Min, g.Bias.Max, g.Bias.Mean, g.Bias.Rated)
		}
		for _, m := range g.Members {
			fmt.Printf("  - %s: %s\n", m.Source.Name, m.Title)
		}
	}
}

func startMonitoringServer(port string) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	log.Printf("Starting monitoring server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Monitoring server error: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
