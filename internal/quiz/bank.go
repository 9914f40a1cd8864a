package quiz

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/bytedance/sonic"
)

//go:embed questions.json
var defaultBankData []byte

// BankEntry is one raw question as stored in the bank, before answer
// shuffling turns it into a Question.
type BankEntry struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Difficulty       string   `json:"difficulty"`
	ImageQuery       string   `json:"imageQuery"`
}

// Bank holds the question pool organized by topic id.
type Bank struct {
	byTopic map[string][]BankEntry
}

// DefaultBank loads the question pool embedded in the binary.
func DefaultBank() (*Bank, error) {
	return parseBank(defaultBankData)
}

// LoadBank reads a question pool from a JSON file with the same shape
// as the embedded bank.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}
	return parseBank(data)
}

func parseBank(data []byte) (*Bank, error) {
	var byTopic map[string][]BankEntry
	if err := sonic.Unmarshal(data, &byTopic); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}
	if len(byTopic) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	return &Bank{byTopic: byTopic}, nil
}

// Topics lists the topic ids present in the bank.
func (b *Bank) Topics() []string {
	ids := make([]string, 0, len(b.byTopic))
	for id := range b.byTopic {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByTopic returns all entries for one topic.
func (b *Bank) ByTopic(topic string) []BankEntry {
	return b.byTopic[topic]
}

// RandomByTopic returns up to count random entries for one topic.
func (b *Bank) RandomByTopic(topic string, count int, r *rand.Rand) []BankEntry {
	pool := b.byTopic[topic]
	return pickRandom(pool, count, r)
}

// Random returns up to count random entries drawn from all topics.
func (b *Bank) Random(count int, r *rand.Rand) []BankEntry {
	var pool []BankEntry
	for _, id := range b.Topics() {
		pool = append(pool, b.byTopic[id]...)
	}
	return pickRandom(pool, count, r)
}

func pickRandom(pool []BankEntry, count int, r *rand.Rand) []BankEntry {
	shuffled := make([]BankEntry, len(pool))
	copy(shuffled, pool)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
