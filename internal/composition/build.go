package composition

import (
	"fmt"

	"github.com/cheetahtrivia/quizreel/internal/animation"
	"github.com/cheetahtrivia/quizreel/internal/assets"
	"github.com/cheetahtrivia/quizreel/internal/config"
	"github.com/cheetahtrivia/quizreel/internal/quiz"
	"github.com/cheetahtrivia/quizreel/internal/timeline"
)

const (
	musicVolume     = 0.3
	voiceoverVolume = 1.0

	// Options stack down the lower half of the frame: the first option at
	// 65% height, each following one 10% lower.
	optionBaseY = 65.0
	optionStepY = 10.0
)

// Build turns questions, a timeline and resolved assets into the layered
// scene description for the renderer. Layer presence follows the asset
// bundle: background, music, intro/outro text, per-question text, shapes
// and the clock are always emitted; image and voiceover layers only when
// the bundle has them. Missing optional assets are not an error.
func Build(questions []quiz.Question, t *timeline.Timeline, bundle *assets.Bundle, render config.Render) (*Composition, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("building composition: %w", &config.InvalidSettingsError{Field: "questions", Value: 0})
	}
	if len(questions) != len(t.Questions) {
		return nil, fmt.Errorf("building composition: %d questions but %d timeline slots", len(questions), len(t.Questions))
	}
	if err := render.Validate(); err != nil {
		return nil, err
	}

	c := &Composition{
		Name:     "TikTok Quiz Video",
		Width:    render.Width,
		Height:   render.Height,
		FPS:      render.FPS,
		Duration: t.TotalDuration,
		Format:   render.Format,
		Quality:  render.Quality,
	}

	full := timeline.Interval{Start: 0, End: t.TotalDuration}

	c.Layers = append(c.Layers, Layer{
		Type:   LayerBackground,
		Source: bundle.Background,
		Span:   full,
		ZIndex: 0,
	})
	c.Layers = append(c.Layers, Layer{
		Type:   LayerAudio,
		Source: bundle.Music,
		Span:   full,
		Volume: musicVolume,
		ZIndex: 1,
	})

	c.Layers = append(c.Layers, Layer{
		Type:      LayerText,
		ElementID: animation.ElementIntroTitle,
		Content:   "TEST",
		TextStyle: &TextStyle{
			FontFamily: "Impact",
			FontSize:   120,
			FontWeight: "bold",
			Color:      "#FFFFFF",
			TextShadow: "0 0 10px rgba(0,0,0,0.5)",
		},
		Position: Position{X: "center", Y: "center"},
		Span:     t.Intro,
		ZIndex:   10,
	})

	for i, slot := range t.Questions {
		appendQuestionLayers(c, questions[i], slot, i, bundle)
	}

	c.Layers = append(c.Layers, Layer{
		Type:      LayerText,
		ElementID: animation.ElementOutroTitle,
		Content:   "FOLLOW:",
		TextStyle: &TextStyle{
			FontFamily: "Impact",
			FontSize:   80,
			FontWeight: "bold",
			Color:      "#FFFFFF",
			TextShadow: "0 0 10px rgba(0,0,0,0.5)",
		},
		Position: Position{X: "center", Y: "40%"},
		Span:     t.Outro,
		ZIndex:   10,
	})
	c.Layers = append(c.Layers, Layer{
		Type:      LayerText,
		ElementID: animation.ElementFollowButton,
		Content:   "@CHEETAHTRIVIATRIBE",
		TextStyle: &TextStyle{
			FontFamily: "Arial",
			FontSize:   60,
			FontWeight: "bold",
			Color:      "#FF0050",
			TextShadow: "0 0 10px rgba(0,0,0,0.5)",
			Background: "rgba(255,255,255,0.8)",
		},
		Position: Position{X: "center", Y: "50%"},
		Span:     timeline.Interval{Start: t.Outro.Start + 0.5, End: t.Outro.End},
		ZIndex:   10,
	})

	if bundle.FollowQR != "" {
		c.Layers = append(c.Layers, Layer{
			Type:     LayerImage,
			Source:   bundle.FollowQR,
			Position: Position{X: "center", Y: "70%", Width: "25%", Height: "auto"},
			Span:     t.Outro,
			ZIndex:   5,
		})
	}

	return c, nil
}

func appendQuestionLayers(c *Composition, q quiz.Question, slot timeline.QuestionSlot, index int, bundle *assets.Bundle) {
	visible := timeline.Interval{Start: slot.Question.Start, End: slot.Answer.End}

	c.Layers = append(c.Layers, Layer{
		Type:      LayerText,
		ElementID: animation.QuestionNumberID(q.QuestionNumber),
		Content:   fmt.Sprintf("#%d", q.QuestionNumber),
		TextStyle: &TextStyle{
			FontFamily: "Impact",
			FontSize:   80,
			FontWeight: "bold",
			Color:      "#FFFFFF",
			TextShadow: "0 0 10px rgba(0,0,0,0.5)",
		},
		Position: Position{X: "center", Y: "15%"},
		Span:     visible,
		ZIndex:   10,
	})

	c.Layers = append(c.Layers, Layer{
		Type:      LayerText,
		ElementID: animation.QuestionTextID(q.QuestionNumber),
		Content:   q.QuestionText,
		TextStyle: &TextStyle{
			FontFamily: "Arial",
			FontSize:   60,
			FontWeight: "bold",
			Color:      "#FFFFFF",
			TextShadow: "0 0 10px rgba(0,0,0,0.5)",
			TextAlign:  "center",
			MaxWidth:   "80%",
		},
		Position: Position{X: "center", Y: "30%"},
		Span:     visible,
		ZIndex:   10,
	})

	if source, ok := bundle.Images[index]; ok {
		c.Layers = append(c.Layers, Layer{
			Type:     LayerImage,
			Source:   source,
			Position: Position{X: "center", Y: "50%", Width: "60%", Height: "auto"},
			Span:     visible,
			ZIndex:   5,
		})
	}

	for optionIndex, option := range q.Options {
		appendOptionLayers(c, q, slot, optionIndex, option)
	}

	c.Layers = append(c.Layers, Layer{
		Type:      LayerClock,
		ElementID: animation.ClockID(q.QuestionNumber),
		ClockStyle: &ClockStyle{
			Size:        100,
			Color:       "#FF0000",
			StrokeWidth: 5,
		},
		Position: Position{X: "85%", Y: "15%"},
		Span:     slot.Question,
		ZIndex:   15,
	})

	if bundle.ClockSound != "" {
		c.Layers = append(c.Layers, Layer{
			Type:   LayerAudio,
			Source: bundle.ClockSound,
			Span:   slot.Question,
			Volume: voiceoverVolume,
			ZIndex: 2,
		})
	}
	if vo, ok := bundle.QuestionVoiceovers[index]; ok {
		c.Layers = append(c.Layers, Layer{
			Type:   LayerAudio,
			Source: vo.Path,
			Span:   slot.Question,
			Volume: voiceoverVolume,
			ZIndex: 3,
		})
	}
	if vo, ok := bundle.AnswerVoiceovers[index]; ok {
		c.Layers = append(c.Layers, Layer{
			Type:   LayerAudio,
			Source: vo.Path,
			Span:   slot.Answer,
			Volume: voiceoverVolume,
			ZIndex: 3,
		})
	}
	if bundle.TransitionSound != "" {
		c.Layers = append(c.Layers, Layer{
			Type:   LayerAudio,
			Source: bundle.TransitionSound,
			Span:   slot.Transition,
			Volume: voiceoverVolume,
			ZIndex: 2,
		})
	}
}

func appendOptionLayers(c *Composition, q quiz.Question, slot timeline.QuestionSlot, optionIndex int, option string) {
	visible := timeline.Interval{Start: slot.Question.Start, End: slot.Answer.End}
	correct := optionIndex == q.CorrectOptionIndex
	y := fmt.Sprintf("%g%%", optionBaseY+float64(optionIndex)*optionStepY)

	badgeFill := "#FFFFFF"
	if correct {
		badgeFill = "#FF9500"
	}
	c.Layers = append(c.Layers, Layer{
		Type:      LayerShape,
		Shape:     ShapeCircle,
		ElementID: fmt.Sprintf("optionBg-%d-%d", q.QuestionNumber, optionIndex),
		ShapeStyle: &ShapeStyle{
			Fill:        badgeFill,
			Stroke:      "#000000",
			StrokeWidth: 2,
			Radius:      30,
		},
		Position: Position{X: "25%", Y: y},
		Span:     visible,
		ZIndex:   11,
	})

	c.Layers = append(c.Layers, Layer{
		Type:    LayerText,
		Content: quiz.OptionLetter(optionIndex),
		TextStyle: &TextStyle{
			FontFamily: "Arial",
			FontSize:   40,
			FontWeight: "bold",
			Color:      "#000000",
		},
		Position: Position{X: "25%", Y: y},
		Span:     visible,
		ZIndex:   12,
	})

	c.Layers = append(c.Layers, Layer{
		Type:      LayerText,
		ElementID: animation.OptionID(q.QuestionNumber, optionIndex),
		Content:   option,
		TextStyle: &TextStyle{
			FontFamily: "Arial",
			FontSize:   50,
			FontWeight: "bold",
			Color:      "#FFFFFF",
			TextShadow: "0 0 5px rgba(0,0,0,0.5)",
		},
		Position: Position{X: "55%", Y: y},
		Span:     visible,
		ZIndex:   11,
	})

	if correct {
		c.Layers = append(c.Layers, Layer{
			Type:  LayerShape,
			Shape: ShapeRectangle,
			ShapeStyle: &ShapeStyle{
				Fill:         "rgba(0, 255, 0, 0.3)",
				Stroke:       "#00FF00",
				StrokeWidth:  3,
				Width:        "70%",
				Height:       "8%",
				CornerRadius: 10,
			},
			Position: Position{X: "50%", Y: y},
			Span:     slot.Answer,
			ZIndex:   9,
		})
	}
}
