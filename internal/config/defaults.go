package config

// DefaultAllowedTags is the supported-language allow-list: English plus the
// nine major Indian languages the dataset's audience speaks.
var DefaultAllowedTags = []string{"en", "hi", "mr", "gu", "bn", "ta", "te", "kn", "ml", "pa"}

// DefaultRomanKeywords are romanized Hindi/Marathi farming words. Statistical
// detectors see Latin script and label such input English; any of these words
// in the input forces Hindi instead.
var DefaultRomanKeywords = []string{
	"kya", "kaise", "kab", "kyu", "bhat", "sheti", "pani",
	"fasal", "ugae", "zameen", "shet", "krishi", "beej",
	"ugana", "ugaye", "khet", "paani", "anna", "jal", "khad", "rog",
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "/usr/local/var/agriassist/data/Bigdata_cleaned.jsonl"
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/agriassist/data/models/paraphrase-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Language.AllowedTags == nil {
		cfg.Language.AllowedTags = append([]string(nil), DefaultAllowedTags...)
	}
	if cfg.Language.RomanKeywords == nil {
		cfg.Language.RomanKeywords = append([]string(nil), DefaultRomanKeywords...)
	}
	if cfg.Translate.Endpoint == "" {
		cfg.Translate.Endpoint = "https://translate.googleapis.com/translate_a/single"
	}
	if cfg.Translate.TimeoutSeconds == nil {
		timeout := 10
		cfg.Translate.TimeoutSeconds = &timeout
	}
	if cfg.Chat.SimilarityThreshold == nil {
		threshold := 0.5
		cfg.Chat.SimilarityThreshold = &threshold
	}
}
