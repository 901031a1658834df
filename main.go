// main.go - Entry point and dependency injection
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Yizi-Yeh/runschedule-manager/internal/database"
	"github.com/Yizi-Yeh/runschedule-manager/internal/store"
	"github.com/Yizi-Yeh/runschedule-manager/internal/sync"
	"github.com/Yizi-Yeh/runschedule-manager/internal/web"

	_ "github.com/mattn/go-sqlite3"
	"github.com/robfig/cron/v3"
)

type App struct {
	db       *database.DocumentDB
	store    *store.Store
	syncer   *sync.SyncService
	cron     *cron.Cron
	server   *http.Server
	shutdown chan os.Signal
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app := &App{
		shutdown: make(chan os.Signal, 1),
	}

	if err := app.init(); err != nil {
		log.Fatal("Failed to initialize app:", err)
	}

	app.start()

	signal.Notify(app.shutdown, os.Interrupt, syscall.SIGTERM)
	<-app.shutdown

	app.stop()
}

func (app *App) init() error {
	var err error

	app.db, err = openDatabase()
	if err != nil {
		return err
	}

	app.store = store.NewStore(app.db)
	app.syncer = sync.NewSyncService(app.store, &sync.SimulatedProvider{})

	app.cron = cron.New()

	webHandler := web.NewWebHandler(app.store, app.syncer)
	router := gin.Default()
	webHandler.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}
	app.server = &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	return nil
}

func (app *App) start() {
	// Calendar auto-sync for the current season, when one is connected.
	schedule := os.Getenv("SYNC_CRON")
	if schedule == "" {
		schedule = "@hourly"
	}
	app.cron.AddFunc(schedule, func() {
		season := app.store.CurrentSeason()
		if season == nil || season.GoogleCalendarID == "" {
			return
		}
		log.Println("Starting scheduled calendar sync...")
		if err := app.syncer.SyncSeason(context.Background(), season.ID); err != nil {
			log.Printf("Scheduled sync failed: %v", err)
		}
	})
	app.cron.Start()

	go func() {
		log.Printf("Server starting on http://localhost%s", app.server.Addr)
		if err := app.server.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()
}

func (app *App) stop() {
	log.Println("Shutting down...")

	app.cron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if app.db != nil {
		app.db.Close()
	}

	log.Println("Shutdown complete")
}

// Database initialization
func openDatabase() (*database.DocumentDB, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}

		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}

		dbPath = filepath.Join(dataDir, "runschedule.db")
	}

	return database.Open(dbPath)
}
