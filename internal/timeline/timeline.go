package timeline

// Interval is a half-open time range in seconds.
type Interval struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Length returns the interval length in seconds.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Shift returns the interval moved forward by delta seconds.
func (iv Interval) Shift(delta float64) Interval {
	return Interval{Start: iv.Start + delta, End: iv.End + delta}
}

// Overlaps reports whether two intervals share any time.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End <= other.Start || other.End <= iv.Start)
}

// QuestionSlot is the time region allocated to one question: the question
// phase (clock ticking), the answer reveal and the scene transition, in
// that order with no gaps.
type QuestionSlot struct {
	QuestionNumber int      `json:"questionNumber" yaml:"questionNumber"`
	Question       Interval `json:"question" yaml:"question"`
	Answer         Interval `json:"answer" yaml:"answer"`
	Transition     Interval `json:"transition" yaml:"transition"`
}

// Timeline is the complete schedule for one quiz video. It is treated as
// immutable by every downstream stage; Adjust returns a new Timeline
// instead of mutating in place.
type Timeline struct {
	TotalDuration float64        `json:"totalDuration" yaml:"totalDuration"`
	Intro         Interval       `json:"intro" yaml:"intro"`
	Questions     []QuestionSlot `json:"questions" yaml:"questions"`
	Outro         Interval       `json:"outro" yaml:"outro"`
}

// Slot returns the slot for a zero-based question index.
func (t *Timeline) Slot(index int) QuestionSlot {
	return t.Questions[index]
}
