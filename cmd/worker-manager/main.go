// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"broker-workers/internal/audit"
	"broker-workers/internal/catalog"
	"broker-workers/internal/common/camunda"
	"broker-workers/internal/common/config"
	"broker-workers/internal/common/database"
	"broker-workers/internal/common/logger"
	"broker-workers/internal/common/observability"
	"broker-workers/internal/matching"

	ml "broker-workers/internal/workers/matching/match-lenders"
	smr "broker-workers/internal/workers/matching/send-match-results"
	vap "broker-workers/internal/workers/matching/validate-applicant-profile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rds *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rds, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rds.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rds.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch with retry ---
	// The audit trail is best-effort: if Elasticsearch never comes up the
	// matching workers still run, they just skip audit writes.
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 5, 2*time.Second, zapLog, "Elasticsearch connection")

	var recorder *audit.Recorder
	if err != nil {
		zapLog.Warn("elasticsearch unavailable, audit trail disabled", zap.Error(err))
		recorder = audit.NewRecorder(nil, cfg.Matching.AuditIndex, log)
	} else {
		zapLog.Info("Elasticsearch connected successfully")
		recorder = audit.NewRecorder(esClient.Client, cfg.Matching.AuditIndex, log)
	}

	// --- Build the matching engine ---
	reader := catalog.NewReader(
		pg.DB,
		rds.Client,
		time.Duration(cfg.Matching.CatalogCacheTTL)*time.Second,
		log,
	)
	evaluator := matching.NewEvaluator(matching.Weights{
		Standard: cfg.Matching.StandardWeight,
		Reduced:  cfg.Matching.ReducedWeight,
	})
	matcher := matching.NewMatcher(matching.NewAggregator(evaluator), reader, log)

	zapLog.Info("Matching engine initialized",
		zap.Int("standardWeight", cfg.Matching.StandardWeight),
		zap.Int("reducedWeight", cfg.Matching.ReducedWeight),
		zap.Int("catalogCacheTtlSeconds", cfg.Matching.CatalogCacheTTL),
	)

	// --- Register Workers ---
	var workers []*camunda.Worker

	if cfg.Workers[vap.TaskType].Enabled {
		handler := vap.NewHandler(
			&vap.Config{
				Timeout: time.Duration(cfg.Workers[vap.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, vap.TaskType, cfg.Workers[vap.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[ml.TaskType].Enabled {
		handler := ml.NewHandler(
			&ml.Config{
				Timeout: time.Duration(cfg.Workers[ml.TaskType].Timeout) * time.Millisecond,
			},
			matcher, recorder, log,
		)
		workers = append(workers, startWorker(zeebeClient, ml.TaskType, cfg.Workers[ml.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[smr.TaskType].Enabled {
		handler, err := smr.NewHandler(
			&smr.Config{
				Enabled:         cfg.Notifications.Enabled,
				AWSRegion:       cfg.Notifications.AWSRegion,
				FromAddress:     cfg.Notifications.FromAddress,
				PartnerTopicARN: cfg.Notifications.PartnerTopicARN,
				Timeout:         time.Duration(cfg.Workers[smr.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create send-match-results handler", zap.Error(err))
		}
		workers = append(workers, startWorker(zeebeClient, smr.TaskType, cfg.Workers[smr.TaskType], handler.Handle, zapLog))
	}

	zapLog.Info("All workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client *camunda.Client, taskType string, wcfg config.WorkerConfig, handlerFunc camunda.HandlerFunc, log *zap.Logger) *camunda.Worker {
	return camunda.Open(
		client.Raw(),
		taskType,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		handlerFunc,
		log,
	)
}
