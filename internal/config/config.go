// Package config provides configuration loading and structs for the AgriAssist server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Language  LanguageConfig  `yaml:"language"`
	Translate TranslateConfig `yaml:"translate"`
	Chat      ChatConfig      `yaml:"chat"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatasetConfig holds the location of the question/answer dataset.
type DatasetConfig struct {
	// Path is a line-delimited JSON file of {"prompt","completion"} pairs.
	// A missing file is tolerated: the server starts with an empty dataset.
	Path string `yaml:"path"`
}

// EmbeddingConfig holds ONNX embedder settings.
type EmbeddingConfig struct {
	ModelPath  string `yaml:"model_path"`
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
}

// LanguageConfig holds language classification settings.
type LanguageConfig struct {
	// AllowedTags is the ISO 639-1 allow-list; detections outside it are
	// rejected unless the input carries Devanagari script.
	AllowedTags []string `yaml:"allowed_tags"`
	// RomanKeywords are romanized Hindi/Marathi farming words whose presence
	// forces the detected language to Hindi.
	RomanKeywords []string `yaml:"roman_keywords"`
}

// TranslateConfig holds translation service settings.
type TranslateConfig struct {
	Endpoint string `yaml:"endpoint"`
	// TimeoutSeconds bounds each translation call. Pointer so an explicit 0
	// (no timeout) is distinguishable from unset; defaults when nil.
	TimeoutSeconds *int `yaml:"timeout_seconds"`
	// Disabled skips all translation calls; the pipeline then behaves as if
	// every call failed (untranslated text passes through).
	Disabled bool `yaml:"disabled"`
}

// ChatConfig holds resolver settings.
type ChatConfig struct {
	// SimilarityThreshold is the minimum cosine score for an embedding match
	// to be answered with the stored answer rather than the fallback message.
	// Pointer so an explicit 0 (accept every match) is distinguishable from
	// unset; defaults when nil.
	SimilarityThreshold *float64 `yaml:"similarity_threshold"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Dataset.Path = expandPath(cfg.Dataset.Path, configDir)
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
