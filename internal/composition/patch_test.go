package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheetahtrivia/quizreel/internal/animation"
	"github.com/cheetahtrivia/quizreel/internal/config"
	"github.com/cheetahtrivia/quizreel/internal/timeline"
)

func TestApplyAnimationsAssignsMatchingLayers(t *testing.T) {
	questions := makeQuestions(2)
	plan, err := timeline.Build(questions, config.DefaultTiming())
	require.NoError(t, err)
	scene := buildScene(t, questions, minimalBundle())

	sequence := animation.Sequence(questions, plan)
	patched := ApplyAnimations(scene, sequence)

	intro, ok := findByElement(patched, animation.ElementIntroTitle)
	require.True(t, ok)
	require.NotNil(t, intro.Animation)
	assert.Equal(t, animation.KindBounce, intro.Animation.Kind)

	text, ok := findByElement(patched, animation.QuestionTextID(1))
	require.True(t, ok)
	require.NotNil(t, text.Animation)
	assert.Equal(t, animation.KindSlide, text.Animation.Kind)
	assert.Equal(t, "bottom", text.Animation.Direction)

	clock, ok := findByElement(patched, animation.ClockID(2))
	require.True(t, ok)
	require.NotNil(t, clock.Animation)
	assert.Equal(t, animation.KindClock, clock.Animation.Kind)
}

func TestApplyAnimationsRevealReplacesEntrance(t *testing.T) {
	questions := makeQuestions(1)
	questions[0].CorrectOptionIndex = 1
	plan, err := timeline.Build(questions, config.DefaultTiming())
	require.NoError(t, err)
	scene := buildScene(t, questions, minimalBundle())

	patched := ApplyAnimations(scene, animation.Sequence(questions, plan))

	// The correct option gets two instructions; the later reveal wins.
	correct, ok := findByElement(patched, animation.OptionID(1, 1))
	require.True(t, ok)
	require.NotNil(t, correct.Animation)
	assert.Equal(t, animation.KindHighlight, correct.Animation.Kind)

	other, ok := findByElement(patched, animation.OptionID(1, 0))
	require.True(t, ok)
	require.NotNil(t, other.Animation)
	assert.Equal(t, animation.KindSlide, other.Animation.Kind)
}

func TestApplyAnimationsDropsUnmatched(t *testing.T) {
	questions := makeQuestions(1)
	plan, err := timeline.Build(questions, config.DefaultTiming())
	require.NoError(t, err)
	scene := buildScene(t, questions, minimalBundle())

	// The whole-scene transition has no layer to land on.
	patched := ApplyAnimations(scene, animation.Sequence(questions, plan))
	_, ok := findByElement(patched, animation.ElementScene)
	assert.False(t, ok)
	assert.Len(t, patched.Layers, len(scene.Layers))
}

func TestApplyAnimationsDoesNotMutateInput(t *testing.T) {
	questions := makeQuestions(1)
	plan, err := timeline.Build(questions, config.DefaultTiming())
	require.NoError(t, err)
	scene := buildScene(t, questions, minimalBundle())

	_ = ApplyAnimations(scene, animation.Sequence(questions, plan))

	for _, l := range scene.Layers {
		assert.Nil(t, l.Animation)
	}
}

func TestApplyAnimationsDistinctSpecsPerLayer(t *testing.T) {
	scene := &Composition{
		Layers: []Layer{
			{Type: LayerText, ElementID: "shared"},
			{Type: LayerText, ElementID: "shared"},
		},
	}
	patched := ApplyAnimations(scene, []animation.Instruction{
		{Time: 0, ElementID: "shared", Animation: animation.Text(animation.KindFade, 1, animation.Options{})},
	})

	require.NotNil(t, patched.Layers[0].Animation)
	require.NotNil(t, patched.Layers[1].Animation)
	assert.NotSame(t, patched.Layers[0].Animation, patched.Layers[1].Animation)
}
