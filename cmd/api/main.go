package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/obaidAfridi75/Afridibot-repo/internal/config"
	"github.com/obaidAfridi75/Afridibot-repo/internal/handler"
	"github.com/obaidAfridi75/Afridibot-repo/internal/metrics"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/ai"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/chat"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/market"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	store := newStore(ctx, cfg.Redis)
	fetcher := market.NewFetcher(cfg.Market, m)

	// Initialize the Gemini gateway; replies degrade to composed price data
	// when the model backend is unavailable.
	var generator chat.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without model generation - replies use composed price data")
		} else {
			generator = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("GOOGLE_GENAI_API_KEY not configured, skipping AI initialization")
	}

	chatService := chat.NewService(store, fetcher, generator, m)
	router := handler.NewRouter(chatService)

	startServer(ctx, cfg.Server, router)
}

// newStore picks the session turn store: Redis when configured, in-memory
// otherwise.
func newStore(ctx context.Context, cfg config.RedisConfig) memory.Store {
	if !cfg.Enabled() {
		return memory.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("warning: redis unreachable at %s: %v", cfg.Addr, err)
		log.Println("falling back to in-memory session store")
		return memory.NewMemoryStore()
	}

	log.Printf("session store backed by redis at %s", cfg.Addr)
	return memory.NewRedisStore(client)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("gold rate chat backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
