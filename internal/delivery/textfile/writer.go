// Package textfile writes generated quizzes and answer keys to local
// text files, one pair of timestamped directories per batch.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const timestampLayout = "2006-01-02-15.04.05"

// quizHeader is the static fill-in block at the top of every quiz file.
const quizHeader = "Name:\n\nDate:\n\nPeriod:\n\n"

// Writer stores quiz and answer-key files under a pair of sibling
// directories named with the batch creation timestamp.
type Writer struct {
	quizDir   string
	answerDir string
	log       *zap.Logger
}

// New creates the "quizzes <ts>" and "answers <ts>" directories under
// baseDir, using now for the timestamp, and returns a Writer targeting
// them.
func New(baseDir string, now time.Time, log *zap.Logger) (*Writer, error) {
	ts := now.Format(timestampLayout)
	quizDir := filepath.Join(baseDir, "quizzes "+ts)
	answerDir := filepath.Join(baseDir, "answers "+ts)

	for _, dir := range []string{quizDir, answerDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create batch directory %s: %w", dir, err)
		}
	}

	return &Writer{
		quizDir:   quizDir,
		answerDir: answerDir,
		log:       log,
	}, nil
}

// QuizDir returns the directory holding the quiz files.
func (w *Writer) QuizDir() string { return w.quizDir }

// AnswerDir returns the directory holding the answer-key files.
func (w *Writer) AnswerDir() string { return w.answerDir }

// WriteQuiz writes capitalsquiz{k}.txt and capitalsquiz_answers{k}.txt
// for quiz number k.
func (w *Writer) WriteQuiz(quizNum int, questions []string, answerKey []string) error {
	quizPath := filepath.Join(w.quizDir, fmt.Sprintf("capitalsquiz%d.txt", quizNum))
	answerPath := filepath.Join(w.answerDir, fmt.Sprintf("capitalsquiz_answers%d.txt", quizNum))

	if err := writeFile(quizPath, quizContent(quizNum, questions)); err != nil {
		return err
	}
	if err := writeFile(answerPath, strings.Join(answerKey, "")); err != nil {
		return err
	}

	w.log.Debug("quiz files written",
		zap.String("quiz", quizPath),
		zap.String("answers", answerPath),
	)

	return nil
}

// Report returns the number of files currently present in the quiz and
// answer directories.
func (w *Writer) Report() (int, int, error) {
	quizFiles, err := os.ReadDir(w.quizDir)
	if err != nil {
		return 0, 0, fmt.Errorf("read quiz directory: %w", err)
	}

	answerFiles, err := os.ReadDir(w.answerDir)
	if err != nil {
		return 0, 0, fmt.Errorf("read answer directory: %w", err)
	}

	return len(quizFiles), len(answerFiles), nil
}

func quizContent(quizNum int, questions []string) string {
	var b strings.Builder

	b.WriteString(quizHeader)
	fmt.Fprintf(&b, "%20sState Capitals Quiz (Form %d)\n\n", "", quizNum)
	for _, question := range questions {
		b.WriteString(question)
	}

	return b.String()
}

func writeFile(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
