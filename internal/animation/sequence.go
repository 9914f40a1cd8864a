package animation

import (
	"fmt"
	"sort"

	"github.com/cheetahtrivia/quizreel/internal/quiz"
	"github.com/cheetahtrivia/quizreel/internal/timeline"
)

// Instruction schedules one animation on one element at an absolute time.
type Instruction struct {
	Time      float64 `json:"time"`
	ElementID string  `json:"elementId"`
	Animation Spec    `json:"animation"`
}

// Element ids shared with the composition builder.
const (
	ElementIntroTitle   = "introTitle"
	ElementOutroTitle   = "outroTitle"
	ElementFollowButton = "followButton"
	ElementScene        = "scene"
)

// QuestionNumberID returns the element id for a question-number label.
func QuestionNumberID(questionNumber int) string {
	return fmt.Sprintf("questionNumber-%d", questionNumber)
}

// QuestionTextID returns the element id for a question-text label.
func QuestionTextID(questionNumber int) string {
	return fmt.Sprintf("questionText-%d", questionNumber)
}

// OptionID returns the element id for one answer option.
func OptionID(questionNumber, optionIndex int) string {
	return fmt.Sprintf("option-%d-%d", questionNumber, optionIndex)
}

// ClockID returns the element id for a question's countdown clock.
func ClockID(questionNumber int) string {
	return fmt.Sprintf("clock-%d", questionNumber)
}

// Option stagger within a question: the first option slides in half a
// second after the question appears, each further option 0.15s later.
const (
	questionTextDelay = 0.2
	optionBaseDelay   = 0.5
	optionStagger     = 0.15
)

// Sequence flattens questions and a timeline into the full ordered
// animation schedule for the video: intro title, per-question entrances,
// clock, answer reveal and scene transition, then the outro. The result is
// stably sorted by time, ties keeping insertion order.
func Sequence(questions []quiz.Question, t *timeline.Timeline) []Instruction {
	var seq []Instruction

	seq = append(seq, Instruction{
		Time:      t.Intro.Start,
		ElementID: ElementIntroTitle,
		Animation: Text(KindBounce, 1, Options{}),
	})

	for i, slot := range t.Questions {
		if i >= len(questions) {
			break
		}
		q := questions[i]

		seq = append(seq, Instruction{
			Time:      slot.Question.Start,
			ElementID: QuestionNumberID(q.QuestionNumber),
			Animation: Text(KindBounce, 0.5, Options{}),
		})

		seq = append(seq, Instruction{
			Time:      slot.Question.Start + questionTextDelay,
			ElementID: QuestionTextID(q.QuestionNumber),
			Animation: Text(KindSlide, 0.7, Options{Direction: "bottom"}),
		})

		for optionIndex := range q.Options {
			seq = append(seq, Instruction{
				Time:      slot.Question.Start + optionBaseDelay + float64(optionIndex)*optionStagger,
				ElementID: OptionID(q.QuestionNumber, optionIndex),
				Animation: Text(KindSlide, 0.5, Options{Direction: "left"}),
			})
		}

		seq = append(seq, Instruction{
			Time:      slot.Question.Start,
			ElementID: ClockID(q.QuestionNumber),
			Animation: Clock(slot.Question.Length(), Options{}),
		})

		seq = append(seq, Instruction{
			Time:      slot.Answer.Start,
			ElementID: OptionID(q.QuestionNumber, q.CorrectOptionIndex),
			Animation: Reveal(KindHighlight, 1, Options{}),
		})

		seq = append(seq, Instruction{
			Time:      slot.Transition.Start,
			ElementID: ElementScene,
			Animation: SceneTransition(KindFade, slot.Transition.Length(), Options{}),
		})
	}

	seq = append(seq, Instruction{
		Time:      t.Outro.Start,
		ElementID: ElementOutroTitle,
		Animation: Text(KindFade, 0.5, Options{}),
	})
	seq = append(seq, Instruction{
		Time:      t.Outro.Start + 0.5,
		ElementID: ElementFollowButton,
		Animation: Text(KindBounce, 0.7, Options{}),
	})

	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].Time < seq[j].Time
	})
	return seq
}
