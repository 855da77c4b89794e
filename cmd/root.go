package cmd

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"talentmatch/internal/ai/gemini"
	"talentmatch/internal/matching"
	"talentmatch/internal/secrets"
	"talentmatch/internal/store"
)

const (
	app = "talentmatch"

	envDatabaseURL   = "TALENTMATCH_DATABASE_URL"
	envGeminiKeyFile = "TALENTMATCH_GEMINI_KEY_FILE"
)

type Config struct {
	Database *DatabaseConfig `mapstructure:"database"`
	AI       *AIConfig       `mapstructure:"ai"`
	Matching *MatchingConfig `mapstructure:"matching"`
	Server   *ServerConfig   `mapstructure:"server"`
}

type DatabaseConfig struct {
	URL     string `mapstructure:"url"`
	URLFile string `mapstructure:"url-file"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type MatchingConfig struct {
	CandidatePool string        `mapstructure:"candidate-pool"`
	PaceInterval  time.Duration `mapstructure:"pace-interval"`
	TopN          int           `mapstructure:"top-n"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentmatch scores candidate resumes against job postings with AI assistance",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the match and serve commands.
	if matchCmd.CalledAs() == "" && serveCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) matchingConfig() (matching.Config, error) {
	cfg := matching.Config{}
	if c.Matching == nil {
		return cfg, nil
	}

	pool, err := store.ParseCandidatePool(c.Matching.CandidatePool)
	if err != nil {
		return cfg, err
	}

	cfg.CandidatePool = pool
	cfg.PaceInterval = c.Matching.PaceInterval
	cfg.TopN = c.Matching.TopN

	return cfg, nil
}

// buildRunner wires the store, the Gemini assessor, and the batch runner
// from configuration.
func buildRunner(ctx context.Context, config *Config, logger *zap.Logger) (*matching.Runner, *store.Store, error) {
	dbCfg := config.Database
	if dbCfg == nil {
		dbCfg = &DatabaseConfig{}
	}

	databaseURL, err := secrets.Load(secrets.Source{
		Name:  "database url",
		Value: dbCfg.URL,
		Env:   envDatabaseURL,
		File:  dbCfg.URLFile,
	})
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}

	geminiCfg := &GeminiConfig{}
	if config.AI != nil && config.AI.Gemini != nil {
		geminiCfg = config.AI.Gemini
	}

	keyFile := geminiCfg.APIKeyFile
	if strings.TrimSpace(keyFile) == "" {
		keyFile = os.Getenv(envGeminiKeyFile)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  keyFile,
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	assessor := gemini.NewAssessor(generator, logger, geminiCfg.MaxLogLength)

	matchCfg, err := config.matchingConfig()
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	return matching.NewRunner(st, assessor, logger, matchCfg), st, nil
}
