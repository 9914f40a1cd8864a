package assets

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheetahtrivia/quizreel/internal/quiz"
)

type fakeImages struct {
	err error
}

func (f fakeImages) FindImage(_ context.Context, query string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "/images/" + query + ".jpg", nil
}

type fakeVoices struct {
	err error
}

func (f fakeVoices) Synthesize(_ context.Context, text, _ string) (AudioRef, error) {
	if f.err != nil {
		return AudioRef{}, f.err
	}
	return AudioRef{Path: "/vo/clip.mp3", Duration: float64(len(text)) * 0.05}, nil
}

func testQuestions(n int) []quiz.Question {
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			QuestionNumber:     i + 1,
			QuestionText:       fmt.Sprintf("Question %d?", i+1),
			Options:            []string{"Alpha", "Beta", "Gamma", "Delta"},
			CorrectOptionIndex: 1,
			ImageQuery:         fmt.Sprintf("query-%d", i+1),
		}
	}
	return questions
}

func testResolver(images ImageProvider, voices VoiceProvider) *Resolver {
	return &Resolver{
		Library: DefaultLibrary(),
		Images:  images,
		Voices:  voices,
		Rand:    rand.New(rand.NewSource(7)),
	}
}

func TestResolveFullBundle(t *testing.T) {
	r := testResolver(fakeImages{}, fakeVoices{})
	bundle, err := r.Resolve(context.Background(), testQuestions(3), ResolveOptions{
		Topic:   "anatomy",
		Workers: 2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, bundle.Background)
	assert.NotEmpty(t, bundle.Music)
	assert.NotEmpty(t, bundle.ClockSound)
	assert.NotEmpty(t, bundle.TransitionSound)

	assert.Len(t, bundle.Images, 3)
	assert.Equal(t, "/images/query-1.jpg", bundle.Images[0])
	assert.Len(t, bundle.QuestionVoiceovers, 3)
	assert.Len(t, bundle.AnswerVoiceovers, 3)
}

func TestResolveSkipsUnavailableAssets(t *testing.T) {
	r := testResolver(fakeImages{err: ErrUnavailable}, fakeVoices{err: ErrUnavailable})
	bundle, err := r.Resolve(context.Background(), testQuestions(3), ResolveOptions{Topic: "history"})
	require.NoError(t, err)

	assert.Empty(t, bundle.Images)
	assert.Empty(t, bundle.QuestionVoiceovers)
	assert.Empty(t, bundle.AnswerVoiceovers)
	// reference-data assets never depend on providers
	assert.NotEmpty(t, bundle.Background)
	assert.NotEmpty(t, bundle.Music)
}

func TestResolveAbortsOnProviderFailure(t *testing.T) {
	boom := errors.New("backend down")
	r := testResolver(fakeImages{err: boom}, fakeVoices{})
	_, err := r.Resolve(context.Background(), testQuestions(2), ResolveOptions{Topic: "science"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestResolveWithoutProviders(t *testing.T) {
	r := testResolver(nil, nil)
	bundle, err := r.Resolve(context.Background(), testQuestions(4), ResolveOptions{Topic: "movies"})
	require.NoError(t, err)

	assert.Empty(t, bundle.Images)
	assert.Empty(t, bundle.QuestionVoiceovers)
	assert.NotEmpty(t, bundle.Background)
}

func TestResolveMusicMoodOverride(t *testing.T) {
	r := testResolver(nil, nil)
	bundle, err := r.Resolve(context.Background(), testQuestions(1), ResolveOptions{
		Topic:     "anatomy",
		MusicMood: "fun",
	})
	require.NoError(t, err)
	assert.Contains(t, bundle.Music, "/music/fun-")
}

func TestVoiceoverDurations(t *testing.T) {
	bundle := &Bundle{
		QuestionVoiceovers: map[int]AudioRef{
			0: {Path: "/vo/q0.mp3", Duration: 3.2},
			2: {Path: "/vo/q2.mp3", Duration: 5.1},
		},
	}
	durations := bundle.VoiceoverDurations()
	assert.Equal(t, map[int]float64{0: 3.2, 2: 5.1}, durations)
}
