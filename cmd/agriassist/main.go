// Package main is the AgriAssist CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/devaniket16/Agriassist-Chatbot/internal/chat"
	"github.com/devaniket16/Agriassist-Chatbot/internal/cli"
	"github.com/devaniket16/Agriassist-Chatbot/internal/config"
	"github.com/devaniket16/Agriassist-Chatbot/internal/dataset"
	"github.com/devaniket16/Agriassist-Chatbot/internal/embedding"
	"github.com/devaniket16/Agriassist-Chatbot/internal/language"
	"github.com/devaniket16/Agriassist-Chatbot/internal/lexicon"
	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
	"github.com/devaniket16/Agriassist-Chatbot/internal/server"
	"github.com/devaniket16/Agriassist-Chatbot/internal/translate"
	"github.com/devaniket16/Agriassist-Chatbot/internal/vector"
	"github.com/devaniket16/Agriassist-Chatbot/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/agriassist/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "version", "--version", "-v":
		fmt.Printf("agriassist version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (language detection, match scores, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	srv := server.NewServer(components.Resolver, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// Components holds the process-wide, read-only resources built at startup.
type Components struct {
	Entries  []models.QAEntry
	Embedder embedding.Embedder
	Index    *vector.QuestionIndex
	Resolver *chat.Resolver
}

// Close releases the embedding model.
func (c *Components) Close() {
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	entries, skipped, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if len(entries) == 0 {
		logger.Warn("dataset missing or empty; answering with no-data response",
			zap.String("path", cfg.Dataset.Path))
	} else {
		logger.Info("dataset loaded",
			zap.String("path", cfg.Dataset.Path),
			zap.Int("entries", len(entries)),
			zap.Int("skipped", skipped),
		)
	}

	var embedder embedding.Embedder
	onnxEmbedder, err := embedding.NewONNXEmbedder(
		cfg.Embedding.ModelPath,
		cfg.Embedding.Dimensions,
		cfg.Embedding.MaxTokens,
		cfg.Embedding.CacheSize,
	)
	if err != nil {
		logger.Warn("ONNX embedder unavailable, using mock embedder", zap.Error(err))
		embedder = embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
	} else {
		embedder = onnxEmbedder
	}

	start := time.Now()
	index, err := vector.Build(context.Background(), embedder, dataset.Questions(entries))
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("failed to build question index: %w", err)
	}
	logger.Info("question index built",
		zap.Int("vectors", index.Size()),
		zap.Duration("took", time.Since(start)),
	)

	classifier := language.NewClassifier(cfg.Language.AllowedTags, cfg.Language.RomanKeywords, nil, logger)

	var translator translate.Translator
	if cfg.Translate.Disabled {
		translator = translate.NewNoop()
	} else {
		translator = translate.NewGoogleTranslator(
			cfg.Translate.Endpoint,
			time.Duration(*cfg.Translate.TimeoutSeconds)*time.Second,
		)
	}

	resolver := chat.NewResolver(
		entries,
		index,
		embedder,
		lexicon.MustDefault(),
		classifier,
		translator,
		*cfg.Chat.SimilarityThreshold,
		logger,
	)

	return &Components{
		Entries:  entries,
		Embedder: embedder,
		Index:    index,
		Resolver: resolver,
	}, nil
}

// buildQuestion joins all positional args with spaces so multi-word questions
// work the same with or without shell quoting.
func buildQuestion(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:5000", "server URL")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printAskUsage(fs) }
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		printAskUsage(fs)
		os.Exit(1)
	}
	question := buildQuestion(fs.Args())
	if question == "" {
		printAskUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	result, err := askViaHTTP(*serverURL, question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ask failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteChatResult(os.Stdout, result, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// askViaHTTP posts the question to a running server's /chat endpoint.
func askViaHTTP(serverURL, question string) (*models.ChatResult, error) {
	body, err := json.Marshal(models.ChatRequest{Message: question})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(strings.TrimRight(serverURL, "/")+"/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed (is the server running?): %w", err)
	}
	defer resp.Body.Close()
	var result models.ChatResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, result.Response)
	}
	return &result, nil
}

func printAskUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: agriassist ask [flags] <question>\n\n")
	fmt.Fprintf(fs.Output(), "Question is all remaining arguments joined by spaces. Multi-word questions work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  agriassist ask what is the best fertilizer for wheat
  agriassist ask "sheti sathi pani kiti lagte"
  agriassist ask --output json hello
`)
}

func printUsage() {
	fmt.Println(`AgriAssist - multilingual agricultural Q&A service

Usage:
  agriassist server [-config path] [-debug]   start the HTTP server
  agriassist ask [flags] <question>           ask a running server
  agriassist version                          print version
  agriassist help                             print this help`)
}
