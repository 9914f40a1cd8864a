package assets

// AudioRef points at a resolved audio asset with its measured duration.
type AudioRef struct {
	Path     string  `yaml:"path" json:"path"`
	Duration float64 `yaml:"duration" json:"duration"`
}

// Bundle collects every resolved asset reference the composition builder
// consumes. Background and Music are required for a valid composition;
// everything else is optional and absent entries simply omit the
// corresponding layer. Maps are keyed by zero-based question index.
type Bundle struct {
	Background string
	Music      string

	Images             map[int]string
	QuestionVoiceovers map[int]AudioRef
	AnswerVoiceovers   map[int]AudioRef

	ClockSound      string
	TransitionSound string
	FollowQR        string
}

// VoiceoverDurations extracts the measured question voiceover durations in
// the shape the timeline adjuster expects.
func (b *Bundle) VoiceoverDurations() map[int]float64 {
	out := make(map[int]float64, len(b.QuestionVoiceovers))
	for i, ref := range b.QuestionVoiceovers {
		out[i] = ref.Duration
	}
	return out
}
