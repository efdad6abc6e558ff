package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aliskhannn/capitals-quiz-generator/internal/domain/entities"
)

// statesCount is the number of US states, and therefore the exact
// number of entries a valid capitals file must contain.
const statesCount = 50

var (
	ErrDataFileNotFound = errors.New("capitals data file not found")
	ErrMalformedData    = errors.New("malformed capitals data")
	ErrStateNotFound    = errors.New("state not found")
)

// CapitalRepository provides access to the 50 US state capitals.
// The dataset is loaded once from a flat text file with one
// "capital, state" pair per line.
type CapitalRepository struct {
	capitals entities.CapitalMap
}

// NewCapitalRepository loads and validates the capitals file at path.
func NewCapitalRepository(path string) (*CapitalRepository, error) {
	capitals, err := loadCapitals(path)
	if err != nil {
		return nil, err
	}

	return &CapitalRepository{capitals: capitals}, nil
}

// All returns a copy of the full state-to-capital map.
func (r *CapitalRepository) All() entities.CapitalMap {
	m := make(entities.CapitalMap, len(r.capitals))
	for state, capital := range r.capitals {
		m[state] = capital
	}
	return m
}

// States returns all state names.
func (r *CapitalRepository) States() []string {
	return r.capitals.States()
}

// Capitals returns all capital names.
func (r *CapitalRepository) Capitals() []string {
	return r.capitals.Capitals()
}

// CapitalOf returns the capital of the given state.
// If the state is unknown, it returns ErrStateNotFound.
func (r *CapitalRepository) CapitalOf(state string) (string, error) {
	capital, ok := r.capitals[state]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrStateNotFound, state)
	}
	return capital, nil
}

func loadCapitals(path string) (entities.CapitalMap, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileNotFound, path)
		}
		return nil, fmt.Errorf("open capitals file: %w", err)
	}
	defer file.Close()

	capitals := make(entities.CapitalMap, statesCount)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		capital, state, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no comma", ErrMalformedData, lineNum)
		}

		capitals[strings.TrimSpace(state)] = strings.TrimSpace(capital)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read capitals file: %w", err)
	}

	if len(capitals) != statesCount {
		return nil, fmt.Errorf("%w: expected %d entries, got %d", ErrMalformedData, statesCount, len(capitals))
	}

	return capitals, nil
}
