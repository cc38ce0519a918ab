package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/knowledge"
)

const (
	app = "major-advisor"
)

type Config struct {
	ProfileFile     string            `mapstructure:"profile-file"`
	Top             int               `mapstructure:"top"`
	ExcludeFile     string            `mapstructure:"exclude-file"`
	ExportDir       string            `mapstructure:"export-dir"`
	DisabledFilters []string          `mapstructure:"disabled-filters"`
	Catalog         *CatalogConfig    `mapstructure:"catalog"`
	Knowledge       *knowledge.Config `mapstructure:"knowledge"`
	AI              *AIConfig         `mapstructure:"ai"`
}

type CatalogConfig struct {
	Database   string         `mapstructure:"database"`
	StreamOnly bool           `mapstructure:"stream-only"`
	Exclude    []string       `mapstructure:"exclude"`
	Majors     []catalog.Seed `mapstructure:"majors"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "major-advisor recommends university majors from grades, interests and an essay",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("profile-file", "MAJOR_ADVISOR_PROFILE"); err != nil {
		log.Fatalf("binding MAJOR_ADVISOR_PROFILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("top", 3)
	viper.SetDefault("catalog.database", app+".db")
	viper.SetDefault("knowledge.concurrency", 4)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.gemini.max-retries", 3)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is major-advisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The default config file is optional, an explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Catalog == nil {
		config.Catalog = &CatalogConfig{}
	}
	if config.Knowledge == nil {
		config.Knowledge = &knowledge.Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	return config, nil
}
