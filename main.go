package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	auth "Woehler/internal/auth"
	batch "Woehler/internal/calc/batch"
	fatigue "Woehler/internal/calc/fatigue"
	importer "Woehler/internal/calc/importer"
	report "Woehler/internal/calc/report"
	history "Woehler/internal/history"
	profile "Woehler/internal/profile"
	repo "Woehler/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		slog.Error("TOKEN_KEY environment variable is not set")
		os.Exit(1)
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(5, 10)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Fatigue Analysis API is running"})
	}).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	fatigueH := &fatigue.Handler{}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}
	importH := &importer.Handler{}

	api.HandleFunc("/analyze", fatigueH.Analyze).Methods("POST")
	api.HandleFunc("/analyze/batch", batchH.Analyze).Methods("POST")
	api.HandleFunc("/materials", fatigueH.Materials).Methods("GET")
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/import/xlsx", importH.Upload).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	historyH := &history.Handler{Repo: userRepo}
	profileH := &profile.Handler{Repo: userRepo}

	secureApi.HandleFunc("/analyze", historyH.Analyze).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.Get).Methods("GET")
}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}

	db := auth.InitDB()
	defer db.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	slog.Info("starting server", "port", port)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")

	wg.Wait()
}
