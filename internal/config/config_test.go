package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "local" {
		t.Fatalf("env = %q, want %q", cfg.Env, "local")
	}
	if cfg.DataPath != "assets/data/states-capitals.txt" {
		t.Fatalf("data_path = %q", cfg.DataPath)
	}
	if cfg.OutputDir != "." {
		t.Fatalf("output_dir = %q", cfg.OutputDir)
	}
	if cfg.Quiz.Count != 35 {
		t.Fatalf("quiz.count = %d, want 35", cfg.Quiz.Count)
	}
	if cfg.Quiz.Questions != 50 {
		t.Fatalf("quiz.questions = %d, want 50", cfg.Quiz.Questions)
	}
	if cfg.Verbose {
		t.Fatal("verbose should default to false")
	}
}

func generationFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("quizgen", pflag.ContinueOnError)
	flags.IntP("quizzes", "n", 35, "")
	flags.BoolP("verbose", "v", false, "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return flags
}

func TestLoadFlagOverrides(t *testing.T) {
	cfg, err := Load(generationFlags(t, "-n", "12", "-v"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Quiz.Count != 12 {
		t.Fatalf("quiz.count = %d, want 12", cfg.Quiz.Count)
	}
	if !cfg.Verbose {
		t.Fatal("verbose flag not applied")
	}
}

func TestLoadRejectsNonPositiveCounts(t *testing.T) {
	if _, err := Load(generationFlags(t, "-n", "-1")); err == nil {
		t.Fatal("expected error for negative quiz count")
	}
	if _, err := Load(generationFlags(t, "--quizzes=0")); err == nil {
		t.Fatal("expected error for zero quiz count")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("QUIZGEN_DATA_PATH", "elsewhere/pairs.txt")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataPath != "elsewhere/pairs.txt" {
		t.Fatalf("data_path = %q, want env override", cfg.DataPath)
	}
	if cfg.Env != "production" {
		t.Fatalf("env = %q, want %q", cfg.Env, "production")
	}
}
