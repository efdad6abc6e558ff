package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aliskhannn/capitals-quiz-generator/internal/config"
	"github.com/aliskhannn/capitals-quiz-generator/internal/delivery/textfile"
	"github.com/aliskhannn/capitals-quiz-generator/internal/logger"
	"github.com/aliskhannn/capitals-quiz-generator/internal/repository"
	"github.com/aliskhannn/capitals-quiz-generator/internal/service"
)

func main() {
	pflag.IntP("quizzes", "n", 35, "number of quizzes to generate, one per student")
	pflag.BoolP("verbose", "v", false, "enable per-quiz diagnostic output")
	pflag.Parse()

	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load(pflag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	// Load and validate the capitals dataset.
	capitalRepo, err := repository.NewCapitalRepository(cfg.DataPath)
	if err != nil {
		zl.Fatal("load capitals", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	quizService := service.NewQuizService(capitalRepo, rng)

	writer, err := textfile.New(cfg.OutputDir, time.Now(), zl)
	if err != nil {
		zl.Fatal("create batch directories", zap.Error(err))
	}

	batch := service.NewBatchService(quizService, writer, zl)
	if err := batch.Run(cfg.Quiz.Count, cfg.Quiz.Questions); err != nil {
		zl.Fatal("generate batch", zap.Error(err))
	}

	zl.Info("quizzes written",
		zap.String("quiz_dir", writer.QuizDir()),
		zap.String("answer_dir", writer.AnswerDir()),
	)
}
