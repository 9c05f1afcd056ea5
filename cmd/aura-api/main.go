// README: Entry point; loads config, wires the agent pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aura/internal/agent"
	"aura/internal/ai"
	"aura/internal/config"
	httptransport "aura/internal/http"
	"aura/internal/infra"
	"aura/internal/modules/catalog"
	"aura/internal/modules/classify"
	"aura/internal/modules/knowledge"
	"aura/internal/modules/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("AURA_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	knowledgeStore := knowledge.NewStore(dbPool, cfg.Knowledge.Namespace)
	if err := knowledgeStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("knowledge schema: %v", err)
	}

	classifyCache := classify.NewCache(redisClient, time.Duration(cfg.Classify.CacheTTLSeconds)*time.Second)
	classifier := classify.NewService(provider, classifyCache)

	knowledgeSvc := knowledge.NewService(provider, provider, knowledgeStore, classifier)
	plannerSvc := schedule.NewService(provider)

	var catalogSvc *catalog.Service
	if cfg.Maps.APIKey != "" {
		catalogSvc, err = catalog.NewService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("catalog init: %v", err)
		}
	} else {
		log.Printf("MAPS_API_KEY not set, catalog search disabled")
	}

	router := agent.NewRouter(classifier, knowledgeSvc, plannerSvc)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Agent:    router,
		Catalog:  catalogSvc,
		Verifier: verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
