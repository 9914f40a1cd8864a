package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestGenerateCountAndNumbering(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	questions, err := Generate(bank, GenerateOptions{Topic: "anatomy", QuestionCount: 4}, testRand())
	require.NoError(t, err)
	require.Len(t, questions, 4)

	for i, q := range questions {
		assert.Equal(t, i+1, q.QuestionNumber)
		assert.NotEmpty(t, q.QuestionText)
		assert.GreaterOrEqual(t, len(q.Options), 2)
	}
}

func TestGenerateCorrectIndexTracksShuffle(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	// Several seeds so the correct answer lands on different indices.
	for seed := int64(0); seed < 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		questions, err := Generate(bank, GenerateOptions{Topic: "biology", QuestionCount: 3}, r)
		require.NoError(t, err)

		for _, q := range questions {
			require.GreaterOrEqual(t, q.CorrectOptionIndex, 0)
			require.Less(t, q.CorrectOptionIndex, len(q.Options))
			// The tracked option must exist nowhere else in the list under
			// a different index only by duplication, never by mistracking.
			assert.Equal(t, q.Options[q.CorrectOptionIndex], q.CorrectOption())
		}
	}
}

func TestGenerateDefaultsToFourQuestions(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	questions, err := Generate(bank, GenerateOptions{Topic: TopicRandom}, testRand())
	require.NoError(t, err)
	assert.Len(t, questions, 4)
}

func TestGenerateUnknownTopicFallsBackToAll(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	questions, err := Generate(bank, GenerateOptions{Topic: "cryptozoology", QuestionCount: 3}, testRand())
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestGenerateDifficultyFilter(t *testing.T) {
	bank := &Bank{byTopic: map[string][]BankEntry{
		"science": {
			{ID: "s1", Question: "Q1", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C"}, Difficulty: "easy"},
			{ID: "s2", Question: "Q2", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C"}, Difficulty: "hard"},
			{ID: "s3", Question: "Q3", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C"}, Difficulty: "easy"},
			{ID: "s4", Question: "Q4", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C"}, Difficulty: "hard"},
		},
	}}

	questions, err := Generate(bank, GenerateOptions{
		Topic:         "science",
		QuestionCount: 2,
		Difficulty:    "easy",
	}, testRand())
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Equal(t, "easy", q.Difficulty)
	}
}

func TestGenerateEmptyBankErrors(t *testing.T) {
	bank := &Bank{byTopic: map[string][]BankEntry{"anatomy": {}}}
	_, err := Generate(bank, GenerateOptions{Topic: "anatomy", QuestionCount: 4}, testRand())
	assert.Error(t, err)
}

func TestOptionLetter(t *testing.T) {
	assert.Equal(t, "A", OptionLetter(0))
	assert.Equal(t, "B", OptionLetter(1))
	assert.Equal(t, "D", OptionLetter(3))
	assert.Equal(t, "F", OptionLetter(5))
}

func TestDiverseOptions(t *testing.T) {
	cases := []struct {
		name    string
		options []string
		want    bool
	}{
		{"clustered numbers", []string{"4", "5", "6"}, false},
		{"spread numbers", []string{"2", "10", "46"}, true},
		{"normal text", []string{"Femur", "Tibia", "Stapes", "Ulna"}, true},
		{"repetitive short", []string{"aa", "aa", "aa"}, false},
		{"varied short", []string{"ab", "cd", "ef"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DiverseOptions(tc.options))
		})
	}
}
