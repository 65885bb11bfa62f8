// Command api serves the expense extraction engine over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FACorreiaa/expense-engine/internal/domain/categorize"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/handler"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/service"
	"github.com/FACorreiaa/expense-engine/pkg/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	classifier, err := buildClassifier(cfg, logger)
	if err != nil {
		return err
	}

	svc := service.New(classifier, logger)
	expenseHandler := handler.NewExpenseHandler(svc, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "expense-engine"})
	})
	if cfg.Observability.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	expenseHandler.Register(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

// buildClassifier picks the categorization backend. The rule classifier
// needs nothing; Gemini needs a key and is validated by config.Load.
func buildClassifier(cfg *config.Config, logger *slog.Logger) (categorize.Classifier, error) {
	switch cfg.Engine.Classifier {
	case "gemini":
		logger.Info("using gemini classifier", slog.String("model", cfg.Gemini.Model))
		return categorize.NewGeminiClassifier(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return categorize.NewRuleClassifier(), nil
	}
}
