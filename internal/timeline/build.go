package timeline

import (
	"fmt"

	"github.com/cheetahtrivia/quizreel/internal/config"
	"github.com/cheetahtrivia/quizreel/internal/quiz"
)

// Build partitions the video into intro, one fixed-size slot per question
// and an outro. Every slot gets exactly questionTime+answerTime+transitionTime
// seconds regardless of question count, so the configured videoDuration is
// advisory: the outro starts where the last slot ends and TotalDuration is
// the outro end, not the configured value.
func Build(questions []quiz.Question, timing config.Timing) (*Timeline, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("building timeline: %w", &config.InvalidSettingsError{Field: "questions", Value: 0})
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	t := &Timeline{
		Intro:     Interval{Start: 0, End: timing.IntroTime},
		Questions: make([]QuestionSlot, 0, len(questions)),
	}

	current := timing.IntroTime
	for _, q := range questions {
		questionEnd := current + timing.QuestionTime
		answerEnd := questionEnd + timing.AnswerTime
		transitionEnd := answerEnd + timing.TransitionTime

		t.Questions = append(t.Questions, QuestionSlot{
			QuestionNumber: q.QuestionNumber,
			Question:       Interval{Start: current, End: questionEnd},
			Answer:         Interval{Start: questionEnd, End: answerEnd},
			Transition:     Interval{Start: answerEnd, End: transitionEnd},
		})
		current = transitionEnd
	}

	t.Outro = Interval{Start: current, End: current + timing.OutroTime}
	t.TotalDuration = t.Outro.End
	return t, nil
}
