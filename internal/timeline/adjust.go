package timeline

// Adjust reconciles the planned schedule with measured voiceover durations.
// measured maps a zero-based question index to the measured duration in
// seconds; entries are optional. Whenever a measurement exceeds the slot's
// planned question length, the slot's question interval is extended and the
// overshoot is propagated forward: the rest of the slot, every later slot,
// the outro and the total duration all shift by the same delta. Earlier
// slots are never touched.
//
// Adjust returns a new Timeline built field-by-field; the input is not
// mutated.
func Adjust(t *Timeline, measured map[int]float64) *Timeline {
	adjusted := &Timeline{
		TotalDuration: t.TotalDuration,
		Intro:         t.Intro,
		Outro:         t.Outro,
		Questions:     make([]QuestionSlot, len(t.Questions)),
	}
	copy(adjusted.Questions, t.Questions)

	// Slots must be processed in index order so cumulative deltas compose.
	for i := range adjusted.Questions {
		duration, ok := measured[i]
		if !ok {
			continue
		}
		slot := adjusted.Questions[i]
		planned := slot.Question.Length()
		if duration <= planned {
			continue
		}
		delta := duration - planned

		slot.Question.End += delta
		slot.Answer = slot.Answer.Shift(delta)
		slot.Transition = slot.Transition.Shift(delta)
		adjusted.Questions[i] = slot

		for j := i + 1; j < len(adjusted.Questions); j++ {
			later := adjusted.Questions[j]
			later.Question = later.Question.Shift(delta)
			later.Answer = later.Answer.Shift(delta)
			later.Transition = later.Transition.Shift(delta)
			adjusted.Questions[j] = later
		}

		adjusted.Outro = adjusted.Outro.Shift(delta)
		adjusted.TotalDuration += delta
	}

	return adjusted
}
