package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Analysis  AnalysisConfig  `yaml:"analysis" mapstructure:"analysis"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the run-history database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// AnthropicConfig holds Anthropic API settings for the narrative and
// weight-generation calls.
type AnthropicConfig struct {
	Key            string  `yaml:"key" mapstructure:"key"`
	Model          string  `yaml:"model" mapstructure:"model"`
	MaxTokens      int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerMin int     `yaml:"requests_per_min" mapstructure:"requests_per_min"`
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Temperature    float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxRetries     int     `yaml:"max_retries" mapstructure:"max_retries"`
}

// AnalysisConfig configures the deterministic analysis core.
type AnalysisConfig struct {
	// BenchmarkFile optionally overrides the built-in benchmark table.
	BenchmarkFile string `yaml:"benchmark_file" mapstructure:"benchmark_file"`
	// GlossaryFile points at the glossary JSON attached to reports.
	GlossaryFile string `yaml:"glossary_file" mapstructure:"glossary_file"`

	InflationRate        float64 `yaml:"inflation_rate" mapstructure:"inflation_rate"`
	CorpusGrowthRate     float64 `yaml:"corpus_growth_rate" mapstructure:"corpus_growth_rate"`
	LifeExpectancy       int     `yaml:"life_expectancy" mapstructure:"life_expectancy"`
	ExpenseReductionRate float64 `yaml:"expense_reduction_rate" mapstructure:"expense_reduction_rate"`
	MedicalCoverFactor   float64 `yaml:"medical_cover_factor" mapstructure:"medical_cover_factor"`
	TermCoverFactor      float64 `yaml:"term_cover_factor" mapstructure:"term_cover_factor"`

	Relaxation RelaxationConfig `yaml:"relaxation" mapstructure:"relaxation"`
}

// RelaxationConfig holds the verdict band multipliers.
type RelaxationConfig struct {
	LowStage1  float64 `yaml:"low_stage_1" mapstructure:"low_stage_1"`
	HighStage1 float64 `yaml:"high_stage_1" mapstructure:"high_stage_1"`
	LowStage2  float64 `yaml:"low_stage_2" mapstructure:"low_stage_2"`
	HighStage2 float64 `yaml:"high_stage_2" mapstructure:"high_stage_2"`
}

// ServerConfig configures the HTTP analysis server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FINHEALTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "finhealth.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("anthropic.requests_per_min", 50)
	v.SetDefault("anthropic.timeout_secs", 60)
	v.SetDefault("anthropic.temperature", 0.2)
	v.SetDefault("anthropic.max_retries", 3)
	v.SetDefault("analysis.inflation_rate", 0.05)
	v.SetDefault("analysis.corpus_growth_rate", 0.08)
	v.SetDefault("analysis.life_expectancy", 75)
	v.SetDefault("analysis.expense_reduction_rate", 0)
	v.SetDefault("analysis.medical_cover_factor", 500000)
	v.SetDefault("analysis.term_cover_factor", 10)
	v.SetDefault("analysis.relaxation.low_stage_1", 0.85)
	v.SetDefault("analysis.relaxation.high_stage_1", 1.15)
	v.SetDefault("analysis.relaxation.low_stage_2", 0.75)
	v.SetDefault("analysis.relaxation.high_stage_2", 1.25)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the fields required for the given run mode. Modes map to
// commands: "analyze" needs LLM credentials, "serve" additionally needs a
// usable port, "score" runs fully offline.
func (c *Config) Validate(mode string) error {
	var missing []string

	check := func(ok bool, msg string) {
		if !ok {
			missing = append(missing, msg)
		}
	}

	switch mode {
	case "score":
		// Deterministic pipeline only; nothing external required.
	case "analyze":
		check(c.Anthropic.Key != "", "anthropic.key is required")
	case "serve":
		check(c.Anthropic.Key != "", "anthropic.key is required")
		check(c.Server.Port > 0, "server.port must be > 0")
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	check(c.Analysis.ExpenseReductionRate >= 0 && c.Analysis.ExpenseReductionRate <= 50,
		"analysis.expense_reduction_rate must be between 0 and 50")
	check(c.Analysis.LifeExpectancy > 0, "analysis.life_expectancy must be > 0")
	if c.Store.Driver != "" {
		check(c.Store.Driver == "sqlite" || c.Store.Driver == "postgres",
			"store.driver must be sqlite or postgres")
	}

	if len(missing) > 0 {
		return eris.New("config: " + strings.Join(missing, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
