package animation

// Kind identifies an animation effect. The set is closed: every consumer
// switches over these constants.
type Kind string

const (
	KindFade      Kind = "fade"
	KindSlide     Kind = "slide"
	KindBounce    Kind = "bounce"
	KindPulse     Kind = "pulse"
	KindShake     Kind = "shake"
	KindClock     Kind = "clock"
	KindHighlight Kind = "highlight"
	KindGlow      Kind = "glow"
	KindZoom      Kind = "zoom"
	KindWipe      Kind = "wipe"
	KindDissolve  Kind = "dissolve"
)

// Keyframe is one step of a keyframed effect. Opacity is a pointer so
// transform-only keyframes (pulse, shake) leave opacity untouched.
type Keyframe struct {
	Transform string   `json:"transform,omitempty" yaml:"transform,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// Spec is a fully resolved animation: a kind plus its keyframe or parameter
// payload and timing configuration. Only the fields relevant to the kind
// are populated.
type Spec struct {
	Kind        Kind       `json:"kind" yaml:"kind"`
	Duration    float64    `json:"duration" yaml:"duration"`
	Delay       float64    `json:"delay,omitempty" yaml:"delay,omitempty"`
	Easing      string     `json:"easing,omitempty" yaml:"easing,omitempty"`
	Direction   string     `json:"direction,omitempty" yaml:"direction,omitempty"`
	FillMode    string     `json:"fillMode,omitempty" yaml:"fillMode,omitempty"`
	Iterations  int        `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	Keyframes   []Keyframe `json:"keyframes,omitempty" yaml:"keyframes,omitempty"`
	Color       string     `json:"color,omitempty" yaml:"color,omitempty"`
	Size        int        `json:"size,omitempty" yaml:"size,omitempty"`
	StrokeWidth int        `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	Intensity   float64    `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Scale       float64    `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// Options are the caller-overridable animation settings. Zero values fall
// back to the per-kind defaults; explicit values win.
type Options struct {
	Delay     float64
	Easing    string
	Direction string
	FillMode  string
}

const bounceEasing = "cubic-bezier(0.175, 0.885, 0.32, 1.275)"

func opacity(v float64) *float64 { return &v }

// Text builds a text-element animation of the given kind. Supported kinds
// are fade, slide, bounce, pulse and shake; anything else falls back to
// fade.
func Text(kind Kind, duration float64, opts Options) Spec {
	easing := opts.Easing
	if easing == "" {
		easing = "ease-out"
	}
	fillMode := opts.FillMode
	if fillMode == "" {
		fillMode = "forwards"
	}

	s := Spec{
		Kind:     kind,
		Duration: duration,
		Delay:    opts.Delay,
		Easing:   easing,
		FillMode: fillMode,
	}

	switch kind {
	case KindFade:
		s.Keyframes = []Keyframe{
			{Opacity: opacity(0)},
			{Opacity: opacity(1)},
		}
	case KindSlide:
		direction := opts.Direction
		if direction == "" {
			direction = "bottom"
		}
		s.Direction = direction
		s.Keyframes = []Keyframe{
			{Transform: slideOffscreenTransform(direction), Opacity: opacity(0)},
			{Transform: slideRestTransform(direction), Opacity: opacity(1)},
		}
	case KindBounce:
		s.Easing = bounceEasing
		s.Keyframes = []Keyframe{
			{Transform: "scale(0)", Opacity: opacity(0)},
			{Transform: "scale(1.2)", Opacity: opacity(1)},
			{Transform: "scale(0.9)", Opacity: opacity(1)},
			{Transform: "scale(1)", Opacity: opacity(1)},
		}
	case KindPulse:
		if opts.Easing == "" {
			s.Easing = "ease-in-out"
		}
		s.Iterations = 2
		s.Keyframes = []Keyframe{
			{Transform: "scale(1)"},
			{Transform: "scale(1.1)"},
			{Transform: "scale(1)"},
		}
	case KindShake:
		if opts.Easing == "" {
			s.Easing = "ease-in-out"
		}
		s.Keyframes = []Keyframe{
			{Transform: "translateX(0)"},
			{Transform: "translateX(-10px)"},
			{Transform: "translateX(10px)"},
			{Transform: "translateX(-10px)"},
			{Transform: "translateX(10px)"},
			{Transform: "translateX(-5px)"},
			{Transform: "translateX(5px)"},
			{Transform: "translateX(0)"},
		}
	default:
		return Text(KindFade, duration, opts)
	}
	return s
}

func slideOffscreenTransform(direction string) string {
	switch direction {
	case "left":
		return "translateX(-100%)"
	case "right":
		return "translateX(100%)"
	case "top":
		return "translateY(-100%)"
	default:
		return "translateY(100%)"
	}
}

func slideRestTransform(direction string) string {
	switch direction {
	case "left", "right":
		return "translateX(0)"
	default:
		return "translateY(0)"
	}
}

// Clock builds the countdown clock animation spanning a question phase.
func Clock(duration float64, opts Options) Spec {
	easing := opts.Easing
	if easing == "" {
		easing = "linear"
	}
	return Spec{
		Kind:        KindClock,
		Duration:    duration,
		Delay:       opts.Delay,
		Easing:      easing,
		Color:       "#FF0000",
		Size:        100,
		StrokeWidth: 5,
	}
}

// Reveal builds the correct-answer reveal animation. Supported kinds are
// highlight, glow and zoom; anything else falls back to highlight.
func Reveal(kind Kind, duration float64, opts Options) Spec {
	easing := opts.Easing
	if easing == "" {
		easing = "ease-out"
	}
	s := Spec{
		Kind:     kind,
		Duration: duration,
		Delay:    opts.Delay,
		Easing:   easing,
		Color:    "#00FF00",
	}
	switch kind {
	case KindHighlight:
	case KindGlow:
		s.Intensity = 2
	case KindZoom:
		s.Scale = 1.2
	default:
		s.Kind = KindHighlight
	}
	return s
}

// SceneTransition builds the transition effect between question scenes.
// Supported kinds are fade, wipe, zoom, slide and dissolve; anything else
// falls back to fade.
func SceneTransition(kind Kind, duration float64, opts Options) Spec {
	easing := opts.Easing
	if easing == "" {
		easing = "ease-in-out"
	}
	direction := opts.Direction
	if direction == "" {
		direction = "left"
	}
	s := Spec{
		Kind:     kind,
		Duration: duration,
		Delay:    opts.Delay,
		Easing:   easing,
	}
	switch kind {
	case KindFade, KindDissolve:
	case KindWipe, KindSlide:
		s.Direction = direction
	case KindZoom:
		if direction == "in" {
			s.Scale = 2
		} else {
			s.Scale = 0.5
		}
	default:
		s.Kind = KindFade
	}
	return s
}
