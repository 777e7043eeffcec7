package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/cinetix/support-bot/database"
	"github.com/cinetix/support-bot/emotion"
	"github.com/cinetix/support-bot/faq"
	"github.com/cinetix/support-bot/logging"
	"github.com/cinetix/support-bot/metrics"
	"github.com/cinetix/support-bot/respond"
	"github.com/cinetix/support-bot/server"
)

func main() {
	var addr string
	var configPath string
	var logLevel string
	var staticCatalog bool
	flag.StringVar(&addr, "addr", ":8080", "Address for the chat API to listen on")
	flag.StringVar(&configPath, "config", "", "Path to an FAQ config YAML file (optional)")
	flag.StringVar(&logLevel, "logLevel", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&staticCatalog, "staticCatalog", false, "Serve the built-in catalog without a database")
	flag.Parse()

	// local dev convenience; production sets real env vars
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.LogLevel(logLevel), os.Stdout)

	// listen and serve for metrics server.
	metricsServer := metrics.SetupServer()
	go metricsServer.Run()

	// The static catalog comes from the config file when given, the
	// built-in list otherwise.
	staticEntries := faq.DefaultCatalog()
	composerOpts := []respond.Option{}
	if configPath != "" {
		config, err := faq.LoadConfig(configPath)
		if err != nil {
			logger.Error("failed to load FAQ config", "error", err.Error())
			os.Exit(1)
		}
		staticEntries = config.Catalog()
		composerOpts = append(composerOpts,
			respond.WithMatchThreshold(config.MatchThreshold),
			respond.WithWrapMinConfidence(config.WrapMinConfidence),
			respond.WithClassifier(newClassifier(config)),
		)
	}
	static := faq.NewStaticSource(staticEntries)

	var catalog faq.CatalogSource = static
	var sink database.ConversationWriter
	if !staticCatalog && os.Getenv("POSTGRES_URL") != "" {
		db, err := database.NewPostgres(logger.WithComponent("database"))
		if err != nil {
			logger.Error("failed to connect to postgres, serving static catalog", "error", err.Error())
		} else {
			defer db.Close()
			catalog = faq.NewFallbackSource(db, static, logger.WithComponent("catalog"))
			sink = db
		}
	}

	composer := respond.NewComposer(composerOpts...)
	chat := server.New(catalog, composer, sink, logger)
	httpServer := chat.HTTPServer(addr)

	go func() {
		logger.Info("starting chat API", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil {
			logger.Error("chat API stopped", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
}

func newClassifier(config *faq.Config) *emotion.Classifier {
	return emotion.NewClassifier(config.ConfidenceDivisor)
}
