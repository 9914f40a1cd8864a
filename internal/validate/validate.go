package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/cheetahtrivia/quizreel/internal/composition"
)

const questionTextPrefix = "questionText-"
const optionPrefix = "option-"

// overlapToleranceY is how close (in position percent) two concurrently
// visible text layers may sit before they are flagged.
const overlapToleranceY = 10.0

// Requirements are the output thresholds a composition is checked against.
type Requirements struct {
	MinDuration      float64
	MaxDuration      float64
	MinQuestions     int
	MaxQuestions     int
	RequiredElements []string
}

// DefaultRequirements returns the standard short-video thresholds.
func DefaultRequirements() Requirements {
	return Requirements{
		MinDuration:      30,
		MaxDuration:      40,
		MinQuestions:     3,
		MaxQuestions:     6,
		RequiredElements: []string{"questions", "answers", "clock", "background", "music"},
	}
}

// Finding is one validation issue or warning.
type Finding struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Report is the validator's structured result. Valid is false exactly when
// Issues is non-empty; warnings never affect it.
type Report struct {
	Valid    bool      `json:"valid"`
	Issues   []Finding `json:"issues"`
	Warnings []Finding `json:"warnings"`
}

func (r *Report) issue(kind, message string) {
	r.Issues = append(r.Issues, Finding{Type: kind, Message: message})
	r.Valid = false
}

func (r *Report) warn(kind, message string) {
	r.Warnings = append(r.Warnings, Finding{Type: kind, Message: message})
}

// requiredElementChecks maps each requirable element name to the predicate
// a layer must satisfy for the element to count as present.
var requiredElementChecks = map[string]func(composition.Layer) bool{
	"questions": func(l composition.Layer) bool {
		return strings.HasPrefix(l.ElementID, questionTextPrefix)
	},
	"answers": func(l composition.Layer) bool {
		return strings.HasPrefix(l.ElementID, optionPrefix)
	},
	"clock": func(l composition.Layer) bool {
		return l.Type == composition.LayerClock
	},
	"background": func(l composition.Layer) bool {
		return l.Type == composition.LayerBackground
	},
	"music": func(l composition.Layer) bool {
		return l.Type == composition.LayerAudio && l.Volume == 0.3
	},
}

// Check verifies a finished composition against the requirements. Every
// violated rule is reported, not just the first; advisory findings go to
// Warnings and leave Valid untouched.
func Check(c *composition.Composition, req Requirements) Report {
	report := Report{Valid: true}

	if c.Duration < req.MinDuration {
		report.issue("duration", fmt.Sprintf(
			"Video duration (%gs) is less than minimum required (%gs)", c.Duration, req.MinDuration))
	}
	if c.Duration > req.MaxDuration {
		report.issue("duration", fmt.Sprintf(
			"Video duration (%gs) exceeds maximum allowed (%gs)", c.Duration, req.MaxDuration))
	}

	questionCount := 0
	for _, l := range c.Layers {
		if strings.HasPrefix(l.ElementID, questionTextPrefix) {
			questionCount++
		}
	}
	if questionCount < req.MinQuestions {
		report.issue("questions", fmt.Sprintf(
			"Video has too few questions (%d). Minimum required: %d", questionCount, req.MinQuestions))
	}
	if questionCount > req.MaxQuestions {
		report.issue("questions", fmt.Sprintf(
			"Video has too many questions (%d). Maximum allowed: %d", questionCount, req.MaxQuestions))
	}

	for _, element := range req.RequiredElements {
		check, ok := requiredElementChecks[element]
		if !ok {
			report.issue("missing-element", fmt.Sprintf("Unknown required element %q", element))
			continue
		}
		found := false
		for _, l := range c.Layers {
			if check(l) {
				found = true
				break
			}
		}
		if !found {
			report.issue("missing-element", fmt.Sprintf(
				"Required element %q is missing from the composition", element))
		}
	}

	checkTextOverlap(c, &report)
	checkVoiceoverPresence(c, &report)

	return report
}

// checkTextOverlap flags pairs of text layers that are visible at the same
// time and anchored at nearly the same position. All pairs are compared.
func checkTextOverlap(c *composition.Composition, report *Report) {
	var text []composition.Layer
	for _, l := range c.Layers {
		if l.Type == composition.LayerText {
			text = append(text, l)
		}
	}

	for i := 0; i < len(text); i++ {
		for j := i + 1; j < len(text); j++ {
			a, b := text[i], text[j]
			if !a.Span.Overlaps(b.Span) {
				continue
			}
			if a.Position.X != b.Position.X {
				continue
			}
			ya, okA := a.Position.PercentY()
			yb, okB := b.Position.PercentY()
			if !okA || !okB || math.Abs(ya-yb) >= overlapToleranceY {
				continue
			}
			report.warn("overlapping-text", fmt.Sprintf(
				"Text layers %q and %q may overlap", layerName(a), layerName(b)))
		}
	}
}

// checkVoiceoverPresence warns when no full-volume audio layer exists,
// which usually means voiceover synthesis produced nothing.
func checkVoiceoverPresence(c *composition.Composition, report *Report) {
	for _, l := range c.Layers {
		if l.Type == composition.LayerAudio && l.Volume == 1.0 {
			return
		}
	}
	report.warn("missing-voiceover", "No voiceover audio found in composition")
}

func layerName(l composition.Layer) string {
	if l.ElementID != "" {
		return l.ElementID
	}
	return "unnamed"
}
