package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Timing controls how the total video duration is partitioned between
// the intro, the per-question phases and the outro. All values are seconds.
type Timing struct {
	VideoDuration  float64 `mapstructure:"videoDuration"`
	IntroTime      float64 `mapstructure:"introTime"`
	OutroTime      float64 `mapstructure:"outroTime"`
	QuestionTime   float64 `mapstructure:"questionTime"`
	AnswerTime     float64 `mapstructure:"answerTime"`
	TransitionTime float64 `mapstructure:"transitionTime"`
}

// Render describes the output the external renderer should produce.
type Render struct {
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	FPS     int    `mapstructure:"fps"`
	Format  string `mapstructure:"format"`
	Quality string `mapstructure:"quality"`
}

// DefaultTiming returns the standard timing for a ~35s quiz video.
func DefaultTiming() Timing {
	return Timing{
		VideoDuration:  35,
		IntroTime:      2,
		OutroTime:      3,
		QuestionTime:   4,
		AnswerTime:     2,
		TransitionTime: 0.5,
	}
}

// DefaultRender returns the portrait short-video render settings.
func DefaultRender() Render {
	return Render{
		Width:   1080,
		Height:  1920,
		FPS:     30,
		Format:  "mp4",
		Quality: "high",
	}
}

// InvalidSettingsError reports a malformed settings value. It names the
// offending field so callers can surface an actionable message.
type InvalidSettingsError struct {
	Field string
	Value any
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid settings: field %q has invalid value %v", e.Field, e.Value)
}

// DecodeTiming merges the recognized keys of opts over the defaults.
// Unrecognized keys are ignored; explicit values win over defaults.
func DecodeTiming(opts map[string]any) (Timing, error) {
	t := DefaultTiming()
	if err := decode(opts, &t); err != nil {
		return Timing{}, err
	}
	if err := t.Validate(); err != nil {
		return Timing{}, err
	}
	return t, nil
}

// DecodeRender merges the recognized keys of opts over the defaults.
// Unrecognized keys are ignored.
func DecodeRender(opts map[string]any) (Render, error) {
	r := DefaultRender()
	if err := decode(opts, &r); err != nil {
		return Render{}, err
	}
	if err := r.Validate(); err != nil {
		return Render{}, err
	}
	return r, nil
}

func decode(opts map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}
	return nil
}

// Validate rejects negative durations before any timeline is built.
func (t Timing) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"videoDuration", t.VideoDuration},
		{"introTime", t.IntroTime},
		{"outroTime", t.OutroTime},
		{"questionTime", t.QuestionTime},
		{"answerTime", t.AnswerTime},
		{"transitionTime", t.TransitionTime},
	}
	for _, f := range fields {
		if f.value < 0 {
			return &InvalidSettingsError{Field: f.name, Value: f.value}
		}
	}
	return nil
}

// Validate rejects non-positive dimensions and frame rates.
func (r Render) Validate() error {
	if r.Width <= 0 {
		return &InvalidSettingsError{Field: "width", Value: r.Width}
	}
	if r.Height <= 0 {
		return &InvalidSettingsError{Field: "height", Value: r.Height}
	}
	if r.FPS <= 0 {
		return &InvalidSettingsError{Field: "fps", Value: r.FPS}
	}
	return nil
}
