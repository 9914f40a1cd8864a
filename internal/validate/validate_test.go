package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheetahtrivia/quizreel/internal/assets"
	"github.com/cheetahtrivia/quizreel/internal/composition"
	"github.com/cheetahtrivia/quizreel/internal/config"
	"github.com/cheetahtrivia/quizreel/internal/quiz"
	"github.com/cheetahtrivia/quizreel/internal/timeline"
)

func makeScene(t *testing.T, questionCount int) *composition.Composition {
	t.Helper()
	questions := make([]quiz.Question, questionCount)
	for i := range questions {
		questions[i] = quiz.Question{
			QuestionNumber:     i + 1,
			QuestionText:       fmt.Sprintf("Question %d?", i+1),
			Options:            []string{"Alpha", "Beta", "Gamma", "Delta"},
			CorrectOptionIndex: 0,
		}
	}
	plan, err := timeline.Build(questions, config.DefaultTiming())
	require.NoError(t, err)

	bundle := &assets.Bundle{
		Background: "/backgrounds/generic-1.mp4",
		Music:      "/music/default-1.mp3",
		ClockSound: "/sounds/clock-standard.mp3",
		Images:     map[int]string{},
		QuestionVoiceovers: map[int]assets.AudioRef{
			0: {Path: "/vo/q0.mp3", Duration: 3.5},
		},
		AnswerVoiceovers: map[int]assets.AudioRef{},
	}
	scene, err := composition.Build(questions, plan, bundle, config.DefaultRender())
	require.NoError(t, err)
	return scene
}

func TestCheckPassesValidScene(t *testing.T) {
	report := Check(makeScene(t, 4), DefaultRequirements())
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
}

func TestCheckDurationBounds(t *testing.T) {
	cases := []struct {
		duration float64
		valid    bool
	}{
		{29.999, false},
		{30, true},
		{35, true},
		{40, true},
		{40.001, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%g", tc.duration), func(t *testing.T) {
			scene := makeScene(t, 4)
			scene.Duration = tc.duration
			report := Check(scene, DefaultRequirements())
			assert.Equal(t, tc.valid, report.Valid)
		})
	}
}

func TestCheckQuestionCountBounds(t *testing.T) {
	tooFew := makeScene(t, 2)
	tooFew.Duration = 35 // isolate the question-count rule
	report := Check(tooFew, DefaultRequirements())
	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, "questions", report.Issues[0].Type)

	justEnough := makeScene(t, 3)
	justEnough.Duration = 35
	assert.True(t, Check(justEnough, DefaultRequirements()).Valid)

	atMax := makeScene(t, 6)
	atMax.Duration = 40
	assert.True(t, Check(atMax, DefaultRequirements()).Valid)

	tooMany := makeScene(t, 7)
	tooMany.Duration = 40
	report = Check(tooMany, DefaultRequirements())
	assert.False(t, report.Valid)
}

func TestCheckMissingRequiredElements(t *testing.T) {
	scene := makeScene(t, 4)

	var kept []composition.Layer
	for _, l := range scene.Layers {
		if l.Type == composition.LayerClock {
			continue
		}
		if l.Type == composition.LayerAudio && l.Volume == 0.3 {
			continue
		}
		kept = append(kept, l)
	}
	scene.Layers = kept

	report := Check(scene, DefaultRequirements())
	assert.False(t, report.Valid)

	var missing []string
	for _, issue := range report.Issues {
		if issue.Type == "missing-element" {
			missing = append(missing, issue.Message)
		}
	}
	require.Len(t, missing, 2)
	assert.Contains(t, missing[0], "clock")
	assert.Contains(t, missing[1], "music")
}

func TestCheckUnknownRequiredElement(t *testing.T) {
	req := DefaultRequirements()
	req.RequiredElements = append(req.RequiredElements, "confetti")
	report := Check(makeScene(t, 4), req)
	assert.False(t, report.Valid)
}

func TestCheckReportsAllViolations(t *testing.T) {
	scene := makeScene(t, 2)
	scene.Duration = 50
	scene.Layers = nil

	report := Check(scene, DefaultRequirements())
	assert.False(t, report.Valid)
	// duration + question count + all five required elements
	assert.Len(t, report.Issues, 7)
}

func TestCheckOverlappingTextWarns(t *testing.T) {
	scene := makeScene(t, 4)
	scene.Layers = append(scene.Layers,
		composition.Layer{
			Type:      composition.LayerText,
			ElementID: "stray-1",
			Content:   "A",
			Position:  composition.Position{X: "center", Y: "30%"},
			Span:      timeline.Interval{Start: 2, End: 8},
		},
		composition.Layer{
			Type:      composition.LayerText,
			ElementID: "stray-2",
			Content:   "B",
			Position:  composition.Position{X: "center", Y: "35%"},
			Span:      timeline.Interval{Start: 4, End: 10},
		},
	)

	report := Check(scene, DefaultRequirements())
	assert.True(t, report.Valid, "overlap is advisory only")

	found := false
	for _, w := range report.Warnings {
		if w.Type == "overlapping-text" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckNoOverlapWhenSpansDisjoint(t *testing.T) {
	scene := makeScene(t, 4)
	report := Check(scene, DefaultRequirements())
	for _, w := range report.Warnings {
		assert.NotEqual(t, "overlapping-text", w.Type)
	}
}

func TestCheckVoiceoverWarning(t *testing.T) {
	scene := makeScene(t, 4)

	var kept []composition.Layer
	for _, l := range scene.Layers {
		if l.Type == composition.LayerAudio && l.Volume == 1.0 {
			continue
		}
		kept = append(kept, l)
	}
	scene.Layers = kept

	report := Check(scene, DefaultRequirements())
	assert.True(t, report.Valid)

	found := false
	for _, w := range report.Warnings {
		if w.Type == "missing-voiceover" {
			found = true
		}
	}
	assert.True(t, found)
}
