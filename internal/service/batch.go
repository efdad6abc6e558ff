package service

import (
	"fmt"

	"go.uber.org/zap"
)

// defaultQuizCount is the fallback batch size, one quiz per student of
// a typical class roster.
const defaultQuizCount = 35

// QuizSink receives one generated quiz and its answer key. The text
// file writer is the production implementation; tests supply in-memory
// sinks so the generator never touches a filesystem.
type QuizSink interface {
	WriteQuiz(quizNum int, questions []string, answerKey []string) error
}

// SinkReporter is optionally implemented by sinks that can report how
// many quiz and answer files they hold.
type SinkReporter interface {
	Report() (quizFiles, answerFiles int, err error)
}

// BatchService generates a batch of quizzes and hands each one to the
// configured sink.
type BatchService struct {
	quizzes *QuizService
	sink    QuizSink
	log     *zap.Logger
}

// NewBatchService creates a new BatchService.
func NewBatchService(quizzes *QuizService, sink QuizSink, log *zap.Logger) *BatchService {
	return &BatchService{
		quizzes: quizzes,
		sink:    sink,
		log:     log,
	}
}

// Run generates nQuizzes quizzes of nQuestions questions each.
// Generation or sink failure aborts the remainder of the batch.
func (b *BatchService) Run(nQuizzes, nQuestions int) error {
	if nQuizzes <= 0 {
		nQuizzes = defaultQuizCount
	}

	for quizNum := 1; quizNum <= nQuizzes; quizNum++ {
		questions, answerKey, err := b.quizzes.GenerateQuizText(nQuestions)
		if err != nil {
			return fmt.Errorf("generate quiz %d: %w", quizNum, err)
		}

		if err := b.sink.WriteQuiz(quizNum, questions, answerKey); err != nil {
			return fmt.Errorf("write quiz %d: %w", quizNum, err)
		}

		b.log.Debug("quiz generated",
			zap.Int("quiz", quizNum),
			zap.Int("questions", len(questions)),
		)
	}

	b.log.Info("batch complete", zap.Int("quizzes", nQuizzes))

	if reporter, ok := b.sink.(SinkReporter); ok {
		quizFiles, answerFiles, err := reporter.Report()
		if err != nil {
			b.log.Warn("sink report failed", zap.Error(err))
		} else {
			b.log.Debug("sink report",
				zap.Int("quiz_files", quizFiles),
				zap.Int("answer_files", answerFiles),
			)
		}
	}

	return nil
}
