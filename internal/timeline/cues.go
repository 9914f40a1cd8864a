package timeline

import "sort"

// CueType names the phase a cue point belongs to.
type CueType string

const (
	CueIntro      CueType = "intro"
	CueQuestion   CueType = "question"
	CueClock      CueType = "clock"
	CueAnswer     CueType = "answer"
	CueTransition CueType = "transition"
	CueOutro      CueType = "outro"
)

// CueAction marks whether a cue opens or closes its phase.
type CueAction string

const (
	ActionStart CueAction = "start"
	ActionEnd   CueAction = "end"
)

// CuePoint is a discrete timestamped event used to synchronize external
// triggers (sound playback, overlays) with the timeline. QuestionNumber is
// zero for intro and outro cues.
type CuePoint struct {
	Time           float64   `json:"time"`
	Type           CueType   `json:"type"`
	QuestionNumber int       `json:"questionNumber,omitempty"`
	Action         CueAction `json:"action"`
}

// CuePoints flattens a timeline into a time-sorted event list: start/end
// for intro and outro, and per slot start/end for the question, clock,
// answer and transition phases (the clock shares the question's
// timestamps). Ties keep insertion order, so coinciding cues appear as
// question-start, clock-start, question-end, clock-end, answer, transition.
func CuePoints(t *Timeline) []CuePoint {
	cues := make([]CuePoint, 0, 4+8*len(t.Questions))

	cues = append(cues,
		CuePoint{Time: t.Intro.Start, Type: CueIntro, Action: ActionStart},
		CuePoint{Time: t.Intro.End, Type: CueIntro, Action: ActionEnd},
	)

	for _, slot := range t.Questions {
		n := slot.QuestionNumber
		cues = append(cues,
			CuePoint{Time: slot.Question.Start, Type: CueQuestion, QuestionNumber: n, Action: ActionStart},
			CuePoint{Time: slot.Question.Start, Type: CueClock, QuestionNumber: n, Action: ActionStart},
			CuePoint{Time: slot.Question.End, Type: CueQuestion, QuestionNumber: n, Action: ActionEnd},
			CuePoint{Time: slot.Question.End, Type: CueClock, QuestionNumber: n, Action: ActionEnd},
			CuePoint{Time: slot.Answer.Start, Type: CueAnswer, QuestionNumber: n, Action: ActionStart},
			CuePoint{Time: slot.Answer.End, Type: CueAnswer, QuestionNumber: n, Action: ActionEnd},
			CuePoint{Time: slot.Transition.Start, Type: CueTransition, QuestionNumber: n, Action: ActionStart},
			CuePoint{Time: slot.Transition.End, Type: CueTransition, QuestionNumber: n, Action: ActionEnd},
		)
	}

	cues = append(cues,
		CuePoint{Time: t.Outro.Start, Type: CueOutro, Action: ActionStart},
		CuePoint{Time: t.Outro.End, Type: CueOutro, Action: ActionEnd},
	)

	sort.SliceStable(cues, func(i, j int) bool {
		if cues[i].Time != cues[j].Time {
			return cues[i].Time < cues[j].Time
		}
		// Video boundary cues win ties against slot cues; slot cues keep
		// their insertion order.
		return boundaryRank(cues[i].Type) < boundaryRank(cues[j].Type)
	})
	return cues
}

func boundaryRank(t CueType) int {
	if t == CueIntro || t == CueOutro {
		return 0
	}
	return 1
}
