package composition

import (
	"strconv"
	"strings"

	"github.com/cheetahtrivia/quizreel/internal/animation"
	"github.com/cheetahtrivia/quizreel/internal/timeline"
)

// LayerType identifies what a layer draws (or plays).
type LayerType string

const (
	LayerBackground LayerType = "background"
	LayerAudio      LayerType = "audio"
	LayerText       LayerType = "text"
	LayerImage      LayerType = "image"
	LayerShape      LayerType = "shape"
	LayerClock      LayerType = "clock"
)

// ShapeKind distinguishes the drawable shapes.
type ShapeKind string

const (
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
)

// Position anchors a layer on screen. Values are either the keyword
// "center" or a percentage like "65%"; Width/Height may also be "auto".
type Position struct {
	X      string `json:"x,omitempty" yaml:"x,omitempty"`
	Y      string `json:"y,omitempty" yaml:"y,omitempty"`
	Width  string `json:"width,omitempty" yaml:"width,omitempty"`
	Height string `json:"height,omitempty" yaml:"height,omitempty"`
}

// PercentY parses the vertical anchor as a number, for positions expressed
// as percentages. Returns false for keywords like "center".
func (p Position) PercentY() (float64, bool) {
	return parsePercent(p.Y)
}

func parsePercent(s string) (float64, bool) {
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TextStyle carries the font settings of a text layer.
type TextStyle struct {
	FontFamily string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty"`
	TextShadow string `json:"textShadow,omitempty" yaml:"textShadow,omitempty"`
	TextAlign  string `json:"textAlign,omitempty" yaml:"textAlign,omitempty"`
	MaxWidth   string `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// ShapeStyle carries the fill and stroke of a shape layer.
type ShapeStyle struct {
	Fill         string `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke       string `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	StrokeWidth  int    `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	Radius       int    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Width        string `json:"width,omitempty" yaml:"width,omitempty"`
	Height       string `json:"height,omitempty" yaml:"height,omitempty"`
	CornerRadius int    `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty"`
}

// ClockStyle carries the countdown clock appearance.
type ClockStyle struct {
	Size        int    `json:"size" yaml:"size"`
	Color       string `json:"color" yaml:"color"`
	StrokeWidth int    `json:"strokeWidth" yaml:"strokeWidth"`
}

// Layer is one visual or audio element: a type-tagged payload, a screen
// position, an active interval and a paint-order rank. Layers hold value
// data only; nothing points back into the composition.
type Layer struct {
	Type       LayerType         `json:"type" yaml:"type"`
	ElementID  string            `json:"elementId,omitempty" yaml:"elementId,omitempty"`
	Content    string            `json:"content,omitempty" yaml:"content,omitempty"`
	Source     string            `json:"source,omitempty" yaml:"source,omitempty"`
	Shape      ShapeKind         `json:"shape,omitempty" yaml:"shape,omitempty"`
	TextStyle  *TextStyle        `json:"textStyle,omitempty" yaml:"textStyle,omitempty"`
	ShapeStyle *ShapeStyle       `json:"shapeStyle,omitempty" yaml:"shapeStyle,omitempty"`
	ClockStyle *ClockStyle       `json:"clockStyle,omitempty" yaml:"clockStyle,omitempty"`
	Position   Position          `json:"position,omitempty" yaml:"position,omitempty"`
	Span       timeline.Interval `json:"span" yaml:"span"`
	Volume     float64           `json:"volume,omitempty" yaml:"volume,omitempty"`
	Animation  *animation.Spec   `json:"animation,omitempty" yaml:"animation,omitempty"`
	ZIndex     int               `json:"zIndex" yaml:"zIndex"`
}

// Composition is the full layered scene description handed to the external
// renderer. Duration always equals the total duration of the timeline it
// was built from.
type Composition struct {
	Name     string  `json:"name" yaml:"name"`
	Width    int     `json:"width" yaml:"width"`
	Height   int     `json:"height" yaml:"height"`
	FPS      int     `json:"fps" yaml:"fps"`
	Duration float64 `json:"duration" yaml:"duration"`
	Format   string  `json:"format" yaml:"format"`
	Quality  string  `json:"quality" yaml:"quality"`
	Layers   []Layer `json:"layers" yaml:"layers"`
}
