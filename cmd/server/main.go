package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare-sync-server/internal/ai"
	"wayfare-sync-server/internal/config"
	"wayfare-sync-server/internal/handler"
	"wayfare-sync-server/internal/middleware"
	"wayfare-sync-server/internal/repository"
	"wayfare-sync-server/internal/service"
	"wayfare-sync-server/internal/websocket"

	_ "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/go-kivik/kivik/v4"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	couchURL := fmt.Sprintf("http://%s:%s@%s:%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	client, err := kivik.New("couch", couchURL)
	if err != nil {
		log.Fatalf("Failed to connect to CouchDB: %v", err)
	}

	exists, err := client.DBExists(context.Background(), cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if err := client.CreateDB(context.Background(), cfg.Database.Name); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		log.Printf("Created database: %s", cfg.Database.Name)
	}

	userRepo := repository.NewUserRepository(client, cfg.Database.Name)
	deviceRepo := repository.NewDeviceRepository(client, cfg.Database.Name)

	baseURL := fmt.Sprintf("%s/%s", couchURL, cfg.Database.Name)
	statusRepo := repository.NewSyncStatusRepository(baseURL)

	var backupRepo repository.BackupRepository
	if cfg.Storage.Mode == "local" {
		backupRepo, err = repository.NewLocalBackupRepository(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatalf("Failed to open local backup store: %v", err)
		}
		log.Printf("Using local backup store at %s", cfg.Storage.LocalDir)
	} else {
		backupRepo = repository.NewBackupRepository(client, cfg.Database.Name)
	}

	wsManager := websocket.NewManager(
		cfg.WebSocket.MaxConnPerSlot,
		cfg.WebSocket.WriteWait,
		cfg.WebSocket.PongWait,
		cfg.WebSocket.PingPeriod,
	)
	go wsManager.Run()

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshTokenExpiration)
	userService := service.NewUserService(userRepo)
	deviceService := service.NewDeviceService(deviceRepo)
	syncService := service.NewSyncService(backupRepo, statusRepo, deviceRepo, wsManager)
	conflictService := service.NewConflictService(backupRepo, cfg.Sync.StalenessWindow, cfg.Sync.DescriptionDiffChars)
	exportService := service.NewExportService()

	var assistantService *service.AssistantService
	if cfg.AI.Endpoint != "" {
		aiClient := ai.NewHTTPClient(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model)
		assistantService = service.NewAssistantService(aiClient)
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	syncHandler := handler.NewSyncHandler(syncService, conflictService)
	exportHandler := handler.NewExportHandler(exportService)
	wsHandler := handler.NewWebSocketHandler(wsManager, cfg.JWT.Secret)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	protected.HandleFunc("/users/me", userHandler.GetMe).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/me", userHandler.UpdateMe).Methods("PUT", "OPTIONS")

	protected.HandleFunc("/devices", deviceHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/devices/register", deviceHandler.Register).Methods("POST", "OPTIONS")
	protected.HandleFunc("/devices/{id}", deviceHandler.Revoke).Methods("DELETE", "OPTIONS")

	protected.HandleFunc("/sync/{syncId}/check", syncHandler.CheckConflicts).Methods("POST", "OPTIONS")
	protected.HandleFunc("/sync/{syncId}/backup", syncHandler.Backup).Methods("POST", "OPTIONS")
	protected.HandleFunc("/sync/{syncId}/restore", syncHandler.Restore).Methods("GET", "OPTIONS")
	protected.HandleFunc("/sync/{syncId}/status", syncHandler.Status).Methods("GET", "OPTIONS")

	protected.HandleFunc("/export/calendar", exportHandler.Calendar).Methods("POST", "OPTIONS")

	if assistantService != nil {
		assistantHandler := handler.NewAssistantHandler(assistantService)
		protected.HandleFunc("/assistant/itinerary", assistantHandler.SuggestItinerary).Methods("POST", "OPTIONS")
	}

	r.HandleFunc("/ws", wsHandler.HandleConnection)

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/", rootHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting Wayfare Sync Server on %s (env: %s)", addr, cfg.Server.Env)
		log.Printf("Connected to CouchDB at %s:%s", cfg.Database.Host, cfg.Database.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"wayfare-sync-server"}`))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Wayfare Sync Server API","version":"1.0.0","endpoints":{"/api/v1/auth/register":"POST","/api/v1/auth/login":"POST","/api/v1/sync/{syncId}/backup":"POST (protected)","/api/v1/sync/{syncId}/restore":"GET (protected)"}}`))
}
