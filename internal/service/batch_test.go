package service

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type recordedQuiz struct {
	quizNum   int
	questions []string
	answerKey []string
}

type fakeSink struct {
	quizzes []recordedQuiz
	failOn  int // quiz number to fail on, 0 for never
}

func (s *fakeSink) WriteQuiz(quizNum int, questions []string, answerKey []string) error {
	if s.failOn != 0 && quizNum == s.failOn {
		return errors.New("disk full")
	}
	s.quizzes = append(s.quizzes, recordedQuiz{
		quizNum:   quizNum,
		questions: questions,
		answerKey: answerKey,
	})
	return nil
}

func TestBatchRunWritesEveryQuiz(t *testing.T) {
	sink := &fakeSink{}
	batch := NewBatchService(newTestService(1), sink, zap.NewNop())

	if err := batch.Run(3, 50); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.quizzes) != 3 {
		t.Fatalf("expected 3 quizzes written, got %d", len(sink.quizzes))
	}
	for i, quiz := range sink.quizzes {
		if quiz.quizNum != i+1 {
			t.Fatalf("quiz %d written with number %d", i+1, quiz.quizNum)
		}
		if len(quiz.questions) != 50 || len(quiz.answerKey) != 50 {
			t.Fatalf("quiz %d has %d questions / %d answers, want 50 of each",
				quiz.quizNum, len(quiz.questions), len(quiz.answerKey))
		}
	}
}

func TestBatchRunDefaultsQuizCount(t *testing.T) {
	sink := &fakeSink{}
	batch := NewBatchService(newTestService(1), sink, zap.NewNop())

	if err := batch.Run(0, 10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.quizzes) != defaultQuizCount {
		t.Fatalf("expected %d quizzes, got %d", defaultQuizCount, len(sink.quizzes))
	}
}

func TestBatchRunSinkErrorAborts(t *testing.T) {
	sink := &fakeSink{failOn: 2}
	batch := NewBatchService(newTestService(1), sink, zap.NewNop())

	err := batch.Run(4, 10)
	if err == nil {
		t.Fatal("expected error from failing sink")
	}
	if !strings.Contains(err.Error(), "write quiz 2") {
		t.Fatalf("error %q does not name the failing quiz", err)
	}
	if len(sink.quizzes) != 1 {
		t.Fatalf("expected batch aborted after 1 quiz, got %d", len(sink.quizzes))
	}
}

func TestBatchRunGenerationErrorAborts(t *testing.T) {
	sink := &fakeSink{}
	batch := NewBatchService(newTestService(1), sink, zap.NewNop())

	err := batch.Run(2, 51)
	if !errors.Is(err, ErrNotEnoughStates) {
		t.Fatalf("expected ErrNotEnoughStates, got %v", err)
	}
	if len(sink.quizzes) != 0 {
		t.Fatalf("expected no quizzes written, got %d", len(sink.quizzes))
	}
}
