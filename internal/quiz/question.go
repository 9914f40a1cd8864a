package quiz

// Question is a single prepared quiz question, ready for video generation.
// Options are already shuffled; CorrectOptionIndex points into Options.
type Question struct {
	QuestionNumber     int      `json:"questionNumber"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	ImageQuery         string   `json:"imageQuery"`
	Difficulty         string   `json:"difficulty"`
}

// CorrectOption returns the text of the correct answer.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectOptionIndex]
}

var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

// OptionLetter maps an option index to its display letter (A, B, C, ...).
func OptionLetter(index int) string {
	if index < 0 || index >= len(optionLetters) {
		return ""
	}
	return optionLetters[index]
}
