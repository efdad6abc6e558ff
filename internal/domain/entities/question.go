package entities

// Option is a single labeled answer choice.
type Option struct {
	Label string // "A" through "D"
	Text  string // capital city name
}

// Question is one multiple-choice question of a quiz.
type Question struct {
	Number       int    // 1-based position within the quiz
	State        string // the state being asked about
	Options      []Option
	CorrectLabel string // label of the option holding the correct capital
}

// AnswerKeyEntry records the correct option for one question.
// Entries are created in lockstep with their questions.
type AnswerKeyEntry struct {
	Number int
	Label  string
}
