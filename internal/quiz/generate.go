package quiz

import (
	"fmt"
	"math/rand"
	"strconv"
)

// GenerateOptions controls quiz generation.
type GenerateOptions struct {
	Topic         string
	QuestionCount int
	Difficulty    string // "any", "easy", "medium" or "hard"
}

// Generate picks QuestionCount questions from the bank for the requested
// topic and difficulty, shuffles each question's answers and numbers the
// questions starting at 1.
func Generate(bank *Bank, opts GenerateOptions, r *rand.Rand) ([]Question, error) {
	count := opts.QuestionCount
	if count <= 0 {
		count = 4
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = "any"
	}

	// Over-fetch so difficulty filtering still leaves enough questions.
	var pool []BankEntry
	switch {
	case opts.Topic == TopicRandom || opts.Topic == "":
		pool = bank.Random(count*2, r)
	case TopicExists(opts.Topic):
		pool = bank.RandomByTopic(opts.Topic, count*2, r)
	default:
		pool = bank.Random(count*2, r)
	}

	if difficulty != "any" {
		filtered := filterByDifficulty(pool, difficulty)
		if len(filtered) < count {
			extra := filterByDifficulty(bank.Random(count*2, r), difficulty)
			filtered = append(filtered, extra...)
		}
		pool = filtered
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("no questions available for topic %q difficulty %q", opts.Topic, difficulty)
	}
	if count > len(pool) {
		count = len(pool)
	}
	pool = pool[:count]

	questions := make([]Question, len(pool))
	for i, entry := range pool {
		options := append([]string{entry.CorrectAnswer}, entry.IncorrectAnswers...)
		shuffle(options, r)

		correctIndex := 0
		for j, opt := range options {
			if opt == entry.CorrectAnswer {
				correctIndex = j
				break
			}
		}

		questions[i] = Question{
			QuestionNumber:     i + 1,
			QuestionText:       entry.Question,
			Options:            options,
			CorrectOptionIndex: correctIndex,
			ImageQuery:         entry.ImageQuery,
			Difficulty:         entry.Difficulty,
		}
	}
	return questions, nil
}

func filterByDifficulty(entries []BankEntry, difficulty string) []BankEntry {
	var out []BankEntry
	for _, e := range entries {
		if e.Difficulty == difficulty {
			out = append(out, e)
		}
	}
	return out
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle(s []string, r *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// DiverseOptions reports whether a set of answer options has enough spread
// to make a fair multiple-choice question. All-numeric options must not be
// clustered within 2 of each other; very short options must vary in
// characters.
func DiverseOptions(options []string) bool {
	allNumbers := true
	allShort := true
	for _, opt := range options {
		if _, err := strconv.ParseFloat(opt, 64); err != nil {
			allNumbers = false
		}
		if len(opt) >= 3 {
			allShort = false
		}
	}

	if allNumbers {
		min, max := 0.0, 0.0
		for i, opt := range options {
			n, _ := strconv.ParseFloat(opt, 64)
			if i == 0 || n < min {
				min = n
			}
			if i == 0 || n > max {
				max = n
			}
		}
		return max-min > 2
	}

	if allShort {
		chars := map[rune]struct{}{}
		for _, opt := range options {
			for _, c := range opt {
				chars[c] = struct{}{}
			}
		}
		return len(chars) > len(options)
	}

	return true
}
