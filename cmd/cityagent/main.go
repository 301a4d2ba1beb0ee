// cityagent server — municipal multi-agent decision support: HTTP
// submission API, six department agents, the coordination checkpoint,
// and the audit log.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cityworks/cityagent/pkg/agent"
	"github.com/cityworks/cityagent/pkg/api"
	"github.com/cityworks/cityagent/pkg/audit"
	"github.com/cityworks/cityagent/pkg/cleanup"
	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/contextstore"
	"github.com/cityworks/cityagent/pkg/coordinator"
	"github.com/cityworks/cityagent/pkg/database"
	"github.com/cityworks/cityagent/pkg/jobmanager"
	"github.com/cityworks/cityagent/pkg/llmclient"
	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules/builtin"
	"github.com/cityworks/cityagent/pkg/tools"
	"github.com/cityworks/cityagent/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	log.Printf("Starting %s", version.Full())

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	// Database is optional: without DB_PASSWORD the service runs on
	// in-memory stores (local development, tests).
	var dbClient *database.Client
	if os.Getenv("DB_PASSWORD") != "" {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			log.Fatalf("Failed to load database config: %v", err)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				log.Printf("Error closing database client: %v", err)
			}
		}()
		log.Println("Connected to PostgreSQL, schema migrated")
	} else {
		log.Println("DB_PASSWORD not set — running with in-memory stores")
	}

	// Coordination decisions and audit records.
	var coordStore coordinator.DecisionStore
	var auditStore audit.Store
	if dbClient != nil {
		coordStore = coordinator.NewEntStore(dbClient.Client)
		auditStore = audit.NewEntStore(dbClient.Client)
	} else {
		coordStore = coordinator.NewMemoryStore()
		auditStore = audit.NewMemoryStore()
	}

	// Per-location serialization: Redis-backed when an address is
	// configured (multi-replica), in-process mutexes otherwise.
	var locks coordinator.Locker = coordinator.NewMutexLocker()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		locks = coordinator.NewRedisLocker(rdb, 30*time.Second)
		log.Printf("Using Redis location locks at %s", cfg.RedisAddr)
	}

	coordSvc := coordinator.NewService(coordStore, locks, cfg.Defaults)
	if !cfg.Defaults.CoordinationAutoApprove {
		coordSvc.SetInterventionChannel(&coordinator.TerminalChannel{In: os.Stdin, Out: os.Stdout})
	}

	auditSvc := audit.NewService(auditStore)
	auditSvc.SetOutcomeRecorder(coordSvc)

	// Context Store: the external domain database, read-only. Falls
	// back to an empty static store so every pipeline still completes
	// (degraded) without one.
	var ctxStore contextstore.Store = contextstore.NewStaticStore()
	if dsn := os.Getenv("CONTEXT_DB_URL"); dsn != "" {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			log.Fatalf("Failed to connect to context store: %v", err)
		}
		defer pool.Close()
		ctxStore = contextstore.NewPostgresStore(pool)
		log.Println("Connected to context store")
	}

	llm := buildLLMClient(ctx, cfg)
	ruleRegistry := builtin.Registry()

	runners := make(map[models.Department]jobmanager.Runner)
	for dept, deptCfg := range cfg.DepartmentRegistry.GetAll() {
		runners[dept] = agent.New(dept, deptCfg.AcceptedTypes, agent.Deps{
			Store:       ctxStore,
			Tools:       tools.ForDepartment(dept),
			Rules:       ruleRegistry.Get(dept),
			LLM:         llm,
			Coordinator: coordSvc,
			Audit:       auditSvc,
			Defaults:    cfg.Defaults,
		})
	}
	log.Printf("Initialized %d department agents", len(runners))

	jobs := jobmanager.New(cfg.Defaults, runners)
	coordSvc.SetJobSubmitter(jobs)

	cleanupSvc := cleanup.NewService(time.Hour, coordSvc)
	cleanupSvc.Start(ctx)
	defer cleanupSvc.Stop()

	server := api.NewServer(coordSvc, jobs, dbClient)

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := server.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting, drain in-flight jobs.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	jobs.Shutdown()
	log.Println("Shutdown complete")
}

// buildLLMClient resolves the "default" provider; a missing or
// unusable provider degrades to the fallback-only client so every
// phase still completes deterministically.
func buildLLMClient(ctx context.Context, cfg *config.Config) llmclient.Client {
	providerCfg, err := cfg.GetLLMProvider("default")
	if err != nil {
		slog.Warn("no default LLM provider configured; deterministic fallbacks only")
		return llmclient.NewFakeClient()
	}

	client, err := llmclient.NewProviderClient(ctx, providerCfg, cfg.Defaults.UseLLMFor)
	if err != nil {
		slog.Warn("LLM provider initialization failed; deterministic fallbacks only", "error", err)
		return llmclient.NewFakeClient()
	}
	slog.Info("LLM provider ready", "type", providerCfg.Type, "model", providerCfg.Model)
	return client
}
