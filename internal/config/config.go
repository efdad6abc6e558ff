package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files, environment
// variables and command line flags.
type Config struct {
	Env       string `mapstructure:"env"`        // current application environment (local, dev, prod etc)
	DataPath  string `mapstructure:"data_path"`  // path to the text file with the 50 capital-state pairs
	OutputDir string `mapstructure:"output_dir"` // directory the timestamped batch folders are created under
	Verbose   bool   `mapstructure:"verbose"`    // enable per-quiz diagnostic logging
	Quiz      Quiz   `mapstructure:"quiz"`       // quiz generation section
}

// Quiz contains quiz generation parameters.
type Quiz struct {
	Count     int `mapstructure:"count"`     // number of quizzes per batch, one per student
	Questions int `mapstructure:"questions"` // number of questions per quiz
}

// Load reads configuration from config files, environment variables and
// the given command line flags. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("data_path", "assets/data/states-capitals.txt")
	v.SetDefault("output_dir", ".")
	v.SetDefault("verbose", false)
	v.SetDefault("quiz.count", 35)
	v.SetDefault("quiz.questions", 50)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("data_path", "QUIZGEN_DATA_PATH")
	_ = v.BindEnv("output_dir", "QUIZGEN_OUTPUT_DIR")

	// Bind the two generation flags when present.
	if flags != nil {
		if f := flags.Lookup("quizzes"); f != nil {
			_ = v.BindPFlag("quiz.count", f)
		}
		if f := flags.Lookup("verbose"); f != nil {
			_ = v.BindPFlag("verbose", f)
		}
	}

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Quiz.Count <= 0 {
		return nil, fmt.Errorf("quiz count must be positive, got %d", cfg.Quiz.Count)
	}
	if cfg.Quiz.Questions <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", cfg.Quiz.Questions)
	}

	return &cfg, nil
}
