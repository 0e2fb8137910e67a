package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/runabh1/stress.report/internal/api"
	"github.com/runabh1/stress.report/internal/db"
	"github.com/runabh1/stress.report/internal/model"
)

var (
	//go:embed static/*
	staticFiles embed.FS
	devMode     = flag.Bool("dev", false, "Serve static files from ./static instead of the embedded copy")
	listen      = flag.String("listen", ":8080", "Listen address")
	dataPath    = flag.String("data", "aadhaar_merged_dataset.csv", "Path to the merged dataset CSV")
	modelPath   = flag.String("model", "aadhaar_service_stress_model.pkl", "Path to the serialized model artifact")
)

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	// The dataset and model artifact are hard startup requirements: serving
	// with either missing would mean answering queries from nothing.
	database, err := db.New()
	if err != nil {
		log.Fatalf("Failed to open dataset table: %v", err)
	}
	defer database.Close()

	f, err := os.Open(*dataPath)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}
	records, err := database.LoadCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Loaded %d dataset records from %s", records, *dataPath)

	artifact, err := model.Load(*modelPath)
	if err != nil {
		log.Fatalf("Failed to load model artifact: %v", err)
	}
	log.Printf("Loaded model artifact %s (%d bytes, sha256 %.12s)", artifact.Path, artifact.Size, artifact.Checksum)

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// HTTP server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := http.NewServeMux()

		// mount the query API under /api
		apiMux := api.NewServer(database, artifact).ServeMux()
		mux.Handle("/api/", http.StripPrefix("/api", apiMux))

		// read static files from the embedded filesystem in production or
		// from the local ./static in dev for easier iteration without
		// restarting the server
		var staticHandler http.Handler
		if *devMode {
			staticHandler = http.FileServer(http.Dir("./static"))
		} else {
			static, err := fs.Sub(staticFiles, "static")
			if err != nil {
				log.Fatalf("failed to mount embedded static files: %v", err)
			}
			staticHandler = http.FileServer(http.FS(static))
		}
		mux.Handle("/", staticHandler)

		// the dashboard may be hosted anywhere; the API is read-only, so an
		// open CORS policy is acceptable
		handler := cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		}).Handler(api.LoggingMiddleware(mux))

		server := &http.Server{
			Addr:    *listen,
			Handler: handler,
		}

		// Start server in a goroutine so it doesn't block
		go func() {
			log.Printf("Serving on %s", *listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		// Wait for context cancellation to shut down server
		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}

		log.Printf("HTTP server routine stopped")
	}()

	wg.Wait()
	log.Printf("Graceful shutdown complete")
}
