package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/capitals-quiz-generator/internal/domain/entities"
)

// defaultQuestionCount is one question per US state.
const defaultQuestionCount = 50

var (
	ErrNotEnoughStates   = errors.New("not enough states for requested question count")
	ErrNotEnoughCapitals = errors.New("not enough distinct capitals for answer options")
)

// CapitalSource provides the validated state-capital dataset.
type CapitalSource interface {
	All() entities.CapitalMap
	States() []string
	Capitals() []string
}

// QuizService generates randomized multiple-choice quizzes from a
// validated capitals dataset. The random source is injected so callers
// control seeding.
type QuizService struct {
	capitals CapitalSource
	rng      *rand.Rand
}

// NewQuizService creates a new QuizService.
func NewQuizService(capitals CapitalSource, rng *rand.Rand) *QuizService {
	return &QuizService{
		capitals: capitals,
		rng:      rng,
	}
}

// GenerateQuiz produces nQuestions questions and the parallel answer
// key. nQuestions <= 0 falls back to one question per state. Each quiz
// permutes the state list once and walks it, so a state never repeats
// within a single quiz.
func (s *QuizService) GenerateQuiz(nQuestions int) ([]entities.Question, []entities.AnswerKeyEntry, error) {
	if nQuestions <= 0 {
		nQuestions = defaultQuestionCount
	}

	capitalByState := s.capitals.All()
	states := s.capitals.States()
	capitals := s.capitals.Capitals()

	if nQuestions > len(states) {
		return nil, nil, fmt.Errorf("%w: %d states, %d questions requested", ErrNotEnoughStates, len(states), nQuestions)
	}

	s.rng.Shuffle(len(states), func(i, j int) {
		states[i], states[j] = states[j], states[i]
	})

	questions := make([]entities.Question, 0, nQuestions)
	answerKey := make([]entities.AnswerKeyEntry, 0, nQuestions)

	for i := 0; i < nQuestions; i++ {
		state := states[i]
		correct := capitalByState[state]

		distractors, err := pickDistractors(s.rng, capitals, correct, optionsPerQuestion-1)
		if err != nil {
			return nil, nil, fmt.Errorf("question %d: %w", i+1, err)
		}

		set := buildOptionSet(s.rng, correct, distractors)

		questions = append(questions, entities.Question{
			Number:       i + 1,
			State:        state,
			Options:      set.Options,
			CorrectLabel: set.CorrectLabel,
		})
		answerKey = append(answerKey, entities.AnswerKeyEntry{
			Number: i + 1,
			Label:  set.CorrectLabel,
		})
	}

	return questions, answerKey, nil
}

// GenerateQuizText renders one quiz into parallel slices of formatted
// question blocks and answer-key lines.
func (s *QuizService) GenerateQuizText(nQuestions int) ([]string, []string, error) {
	questions, answerKey, err := s.GenerateQuiz(nQuestions)
	if err != nil {
		return nil, nil, err
	}

	questionTexts := make([]string, len(questions))
	for i, question := range questions {
		questionTexts[i] = FormatQuestion(question)
	}

	answerLines := make([]string, len(answerKey))
	for i, entry := range answerKey {
		answerLines[i] = FormatAnswerKey(entry)
	}

	return questionTexts, answerLines, nil
}
