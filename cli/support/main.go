package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cinetix/support-bot/database"
	"github.com/cinetix/support-bot/emotion"
	"github.com/cinetix/support-bot/faq"
	"github.com/cinetix/support-bot/logging"
	"github.com/cinetix/support-bot/respond"
)

func main() {
	var logLevel string
	var configPath string

	// Define subcommands
	syncCmd := flag.NewFlagSet("sync", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	testCmd := flag.NewFlagSet("test", flag.ExitOnError)
	classifyCmd := flag.NewFlagSet("classify", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Check for help first
	if os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		printUsage()
		os.Exit(0)
	}

	switch os.Args[1] {
	case "sync":
		syncCmd.StringVar(&configPath, "config", "configs/faq/entries.yaml", "Path to FAQ config file")
		syncCmd.StringVar(&logLevel, "logLevel", "info", "Log level")
		_ = syncCmd.Parse(os.Args[2:])
		runSync(configPath, logLevel)

	case "list":
		listCmd.StringVar(&logLevel, "logLevel", "info", "Log level")
		_ = listCmd.Parse(os.Args[2:])
		runList(logLevel)

	case "test":
		var threshold float64
		testCmd.Float64Var(&threshold, "threshold", faq.DefaultMatchThreshold, "Fuzzy match threshold")
		testCmd.StringVar(&configPath, "config", "", "Path to FAQ config file (defaults to built-in catalog)")
		testCmd.StringVar(&logLevel, "logLevel", "info", "Log level")
		_ = testCmd.Parse(os.Args[2:])
		if testCmd.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: test command requires a message argument")
			fmt.Fprintln(os.Stderr, "Usage: support test [options] \"your message here\"")
			os.Exit(1)
		}
		runTest(testCmd.Arg(0), threshold, configPath)

	case "classify":
		_ = classifyCmd.Parse(os.Args[2:])
		if classifyCmd.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: classify command requires a message argument")
			fmt.Fprintln(os.Stderr, "Usage: support classify \"your message here\"")
			os.Exit(1)
		}
		runClassify(classifyCmd.Arg(0))

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Support Chat Management CLI

Usage:
  support <command> [options]

Commands:
  sync      Synchronize FAQ entries from config file to database
  list      List all FAQ entries in the database
  test      Dry-run the matcher and composer for a message
  classify  Dry-run the emotion classifier for a message

Global Environment Variables:
  POSTGRES_URL      PostgreSQL connection string (required for sync/list)

Examples:
  # Sync FAQ entries from config to database
  support sync --config configs/faq/entries.yaml

  # List current FAQ entries
  support list

  # See which FAQ a message would match and the reply it would get
  support test --threshold 0.35 "how do I get my money back"

  # See which emotion a message reads as
  support classify "this is so frustrating, nothing works!"`)
}

func runSync(configPath, logLevel string) {
	logger := logging.NewLogger(logging.LogLevel(logLevel), os.Stdout)
	ctx := context.Background()

	logger.Info("starting FAQ sync", "configPath", configPath)

	config, err := faq.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load FAQ config", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("loaded FAQ config",
		"entries", len(config.Entries),
		"matchThreshold", config.MatchThreshold,
	)

	db, err := database.NewPostgres(logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	result, err := db.Sync(ctx, config)
	if err != nil {
		logger.Error("sync failed", "error", err.Error())
		os.Exit(1)
	}

	fmt.Printf("Sync complete: %d processed, %d created, %d updated, %d deleted, %d errors (%s)\n",
		result.EntriesProcessed, result.EntriesCreated, result.EntriesUpdated,
		result.EntriesDeleted, len(result.Errors), result.Duration)
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "  error: %v\n", e)
	}
}

func runList(logLevel string) {
	logger := logging.NewLogger(logging.LogLevel(logLevel), os.Stdout)
	ctx := context.Background()

	db, err := database.NewPostgres(logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	entries, err := db.ListEntries(ctx)
	if err != nil {
		logger.Error("failed to list FAQ entries", "error", err.Error())
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No FAQ entries found. Run 'support sync' first.")
		return
	}

	for _, e := range entries {
		status := "active"
		if !e.IsActive {
			status = "inactive"
		}
		category := e.Category.String
		if category == "" {
			category = "-"
		}
		fmt.Printf("[%s] %-10s %s\n       keywords: %s\n", status, category, e.Question, e.Keywords)
	}
	fmt.Printf("\n%d entries\n", len(entries))
}

func runTest(message string, threshold float64, configPath string) {
	catalog := faq.DefaultCatalog()
	if configPath != "" {
		config, err := faq.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			os.Exit(1)
		}
		catalog = config.Catalog()
	}

	match := faq.FindBestMatch(message, catalog)
	if match.Matched() {
		fmt.Printf("Best match: %q (score %.3f)\n", match.Entry.Question, match.Score)
	} else {
		fmt.Println("Best match: none")
	}
	if !match.Matched() || match.Score < threshold {
		fmt.Printf("Below threshold %.2f: the bot would answer with suggested topics.\n", threshold)
	}

	composer := respond.NewComposer(respond.WithMatchThreshold(threshold))
	reply := composer.Compose(message, catalog)
	fmt.Printf("Emotion: %s (confidence %.2f)\n", reply.Emotion, reply.Confidence)
	fmt.Printf("\n--- reply ---\n%s\n", reply.Text)
}

func runClassify(message string) {
	result := emotion.Classify(message)
	fmt.Printf("Emotion:    %s %s\n", result.Emotion, result.Emotion.Badge())
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	if len(result.MatchedKeywords) > 0 {
		fmt.Printf("Triggers:   %s\n", strings.Join(result.MatchedKeywords, ", "))
	}
}
