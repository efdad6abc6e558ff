package service

import (
	"fmt"
	"math/rand"

	"github.com/aliskhannn/capitals-quiz-generator/internal/domain/entities"
)

// optionsPerQuestion is the number of answer choices per question:
// one correct capital and three distractors.
const optionsPerQuestion = 4

// OptionSet holds the shuffled answer options for one question and the
// label of the option carrying the correct capital.
type OptionSet struct {
	Options      []entities.Option
	CorrectLabel string
}

// buildOptionSet combines the correct capital with the distractors,
// shuffles the result, and assigns labels "A" onward in display order.
// It is a pure function of its inputs and the random source.
func buildOptionSet(rng *rand.Rand, correct string, distractors []string) OptionSet {
	texts := make([]string, 0, 1+len(distractors))
	texts = append(texts, correct)
	texts = append(texts, distractors...)

	rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	set := OptionSet{Options: make([]entities.Option, len(texts))}
	for i, text := range texts {
		label := string(rune('A' + i))
		set.Options[i] = entities.Option{Label: label, Text: text}
		if text == correct {
			set.CorrectLabel = label
		}
	}

	return set
}

// pickDistractors draws count wrong answers at random from the capitals
// pool, without replacement and never equal to the correct capital.
func pickDistractors(rng *rand.Rand, capitals []string, correct string, count int) ([]string, error) {
	candidates := make([]string, 0, len(capitals))
	for _, capital := range capitals {
		if capital != correct {
			candidates = append(candidates, capital)
		}
	}

	if len(candidates) < count {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughCapitals, len(candidates), count)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates[:count], nil
}
