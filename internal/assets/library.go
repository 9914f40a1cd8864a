package assets

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Track is one background music track.
type Track struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Path     string  `yaml:"path"`
	Duration float64 `yaml:"duration"`
}

// Background is one looping background visual.
type Background struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Sound is one short sound effect.
type Sound struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Path     string  `yaml:"path"`
	Duration float64 `yaml:"duration"`
}

// Library is the read-only reference data for asset selection: music by
// mood, backgrounds by topic and the sound-effect catalog. It is injected
// into the pipeline, never held as global state.
type Library struct {
	Music              map[string][]Track      `yaml:"music"`
	MoodsByTopic       map[string][]string     `yaml:"moodsByTopic"`
	TopicBackgrounds   map[string][]Background `yaml:"topicBackgrounds"`
	GenericBackgrounds []Background            `yaml:"genericBackgrounds"`
	ClockSounds        []Sound                 `yaml:"clockSounds"`
	TransitionSounds   []Sound                 `yaml:"transitionSounds"`
	AnswerSounds       []Sound                 `yaml:"answerSounds"`
	BookendSounds      []Sound                 `yaml:"bookendSounds"`
}

// DefaultLibrary returns the built-in asset catalog.
func DefaultLibrary() *Library {
	return &Library{
		Music: map[string][]Track{
			"default": {
				{ID: "default-1", Name: "Quiz Standard", Path: "/music/default-1.mp3", Duration: 35},
				{ID: "default-2", Name: "Quiz Classic", Path: "/music/default-2.mp3", Duration: 35},
				{ID: "default-3", Name: "Quiz Modern", Path: "/music/default-3.mp3", Duration: 35},
			},
			"upbeat": {
				{ID: "upbeat-1", Name: "Energetic Pop", Path: "/music/upbeat-1.mp3", Duration: 35},
				{ID: "upbeat-2", Name: "Happy Beats", Path: "/music/upbeat-2.mp3", Duration: 35},
			},
			"dramatic": {
				{ID: "dramatic-1", Name: "Intense Moment", Path: "/music/dramatic-1.mp3", Duration: 35},
				{ID: "dramatic-2", Name: "Epic Quiz", Path: "/music/dramatic-2.mp3", Duration: 35},
			},
			"suspense": {
				{ID: "suspense-1", Name: "Mystery Quiz", Path: "/music/suspense-1.mp3", Duration: 35},
				{ID: "suspense-2", Name: "Clock Ticking", Path: "/music/suspense-2.mp3", Duration: 35},
			},
			"fun": {
				{ID: "fun-1", Name: "Playful Tune", Path: "/music/fun-1.mp3", Duration: 35},
				{ID: "fun-2", Name: "Quirky Quiz", Path: "/music/fun-2.mp3", Duration: 35},
			},
		},
		MoodsByTopic: map[string][]string{
			"anatomy":      {"dramatic", "suspense"},
			"biology":      {"default", "upbeat"},
			"pharmacology": {"suspense", "dramatic"},
			"history":      {"dramatic", "default"},
			"geography":    {"upbeat", "fun"},
			"science":      {"dramatic", "suspense"},
			"movies":       {"upbeat", "fun"},
			"music":        {"fun", "upbeat"},
		},
		TopicBackgrounds: map[string][]Background{
			"anatomy":      {{ID: "anatomy-bg-1", Name: "Medical Lab", Path: "/backgrounds/anatomy-1.mp4"}, {ID: "anatomy-bg-2", Name: "Human Body", Path: "/backgrounds/anatomy-2.mp4"}},
			"biology":      {{ID: "biology-bg-1", Name: "Cell Structure", Path: "/backgrounds/biology-1.mp4"}, {ID: "biology-bg-2", Name: "Nature", Path: "/backgrounds/biology-2.mp4"}},
			"pharmacology": {{ID: "pharm-bg-1", Name: "Laboratory", Path: "/backgrounds/pharm-1.mp4"}, {ID: "pharm-bg-2", Name: "Pharmacy", Path: "/backgrounds/pharm-2.mp4"}},
			"history":      {{ID: "history-bg-1", Name: "Ancient", Path: "/backgrounds/history-1.mp4"}, {ID: "history-bg-2", Name: "Parchment", Path: "/backgrounds/history-2.mp4"}},
			"geography":    {{ID: "geo-bg-1", Name: "World Map", Path: "/backgrounds/geo-1.mp4"}, {ID: "geo-bg-2", Name: "Globe", Path: "/backgrounds/geo-2.mp4"}},
			"science":      {{ID: "science-bg-1", Name: "Laboratory", Path: "/backgrounds/science-1.mp4"}, {ID: "science-bg-2", Name: "Space", Path: "/backgrounds/science-2.mp4"}},
			"movies":       {{ID: "movies-bg-1", Name: "Cinema", Path: "/backgrounds/movies-1.mp4"}, {ID: "movies-bg-2", Name: "Film Reel", Path: "/backgrounds/movies-2.mp4"}},
			"music":        {{ID: "music-bg-1", Name: "Notes", Path: "/backgrounds/music-1.mp4"}, {ID: "music-bg-2", Name: "Concert", Path: "/backgrounds/music-2.mp4"}},
		},
		GenericBackgrounds: []Background{
			{ID: "generic-bg-1", Name: "Abstract 1", Path: "/backgrounds/generic-1.mp4"},
			{ID: "generic-bg-2", Name: "Abstract 2", Path: "/backgrounds/generic-2.mp4"},
			{ID: "generic-bg-3", Name: "Particles", Path: "/backgrounds/generic-3.mp4"},
			{ID: "generic-bg-4", Name: "Gradient", Path: "/backgrounds/generic-4.mp4"},
			{ID: "generic-bg-5", Name: "Bokeh", Path: "/backgrounds/generic-5.mp4"},
		},
		ClockSounds: []Sound{
			{ID: "clock-standard", Name: "Standard Ticking", Path: "/sounds/clock-standard.mp3", Duration: 4},
			{ID: "clock-fast", Name: "Fast Ticking", Path: "/sounds/clock-fast.mp3", Duration: 4},
			{ID: "clock-dramatic", Name: "Dramatic Ticking", Path: "/sounds/clock-dramatic.mp3", Duration: 4},
		},
		TransitionSounds: []Sound{
			{ID: "transition-slide", Name: "Slide Effect", Path: "/sounds/transition-slide.mp3", Duration: 0.5},
			{ID: "transition-whoosh", Name: "Whoosh Effect", Path: "/sounds/transition-whoosh.mp3", Duration: 0.7},
			{ID: "transition-pop", Name: "Pop Effect", Path: "/sounds/transition-pop.mp3", Duration: 0.3},
		},
		AnswerSounds: []Sound{
			{ID: "answer-correct", Name: "Correct Answer", Path: "/sounds/answer-correct.mp3", Duration: 1.2},
			{ID: "answer-incorrect", Name: "Incorrect Answer", Path: "/sounds/answer-incorrect.mp3", Duration: 1},
		},
		BookendSounds: []Sound{
			{ID: "intro-jingle", Name: "Intro Jingle", Path: "/sounds/intro-jingle.mp3", Duration: 2},
			{ID: "outro-jingle", Name: "Outro Jingle", Path: "/sounds/outro-jingle.mp3", Duration: 2},
		},
	}
}

// LoadLibrary reads an asset catalog from a YAML file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset library: %w", err)
	}
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing asset library: %w", err)
	}
	return &lib, nil
}

// WriteLibrary saves an asset catalog to a YAML file.
func WriteLibrary(lib *Library, path string) error {
	data, err := yaml.Marshal(lib)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MusicByMood returns the tracks for a mood, falling back to default.
func (l *Library) MusicByMood(mood string) []Track {
	if tracks, ok := l.Music[mood]; ok && len(tracks) > 0 {
		return tracks
	}
	return l.Music["default"]
}

// RandomTrack picks a random track for a mood.
func (l *Library) RandomTrack(mood string, r *rand.Rand) Track {
	tracks := l.MusicByMood(mood)
	return tracks[r.Intn(len(tracks))]
}

// RecommendedMoods returns the preferred music moods for a topic.
func (l *Library) RecommendedMoods(topic string) []string {
	if moods, ok := l.MoodsByTopic[topic]; ok && len(moods) > 0 {
		return moods
	}
	return []string{"default", "upbeat"}
}

// RecommendedTrack picks a track matching a topic's first recommended mood.
func (l *Library) RecommendedTrack(topic string, r *rand.Rand) Track {
	return l.RandomTrack(l.RecommendedMoods(topic)[0], r)
}

// BackgroundsForTopic returns the topic's backgrounds, or the generic set.
func (l *Library) BackgroundsForTopic(topic string) []Background {
	if bgs, ok := l.TopicBackgrounds[topic]; ok && len(bgs) > 0 {
		return bgs
	}
	return l.GenericBackgrounds
}

// RandomBackground picks a random background for a topic.
func (l *Library) RandomBackground(topic string, r *rand.Rand) Background {
	options := l.BackgroundsForTopic(topic)
	return options[r.Intn(len(options))]
}

// ClockSound returns the ticking sound for a style (standard, fast,
// dramatic), falling back to the first entry.
func (l *Library) ClockSound(style string) Sound {
	return findSound(l.ClockSounds, "clock-"+style)
}

// TransitionSound returns the transition sound for a type (slide, whoosh,
// pop), falling back to the first entry.
func (l *Library) TransitionSound(kind string) Sound {
	return findSound(l.TransitionSounds, "transition-"+kind)
}

// AnswerSound returns the correct or incorrect answer stinger.
func (l *Library) AnswerSound(correct bool) Sound {
	id := "answer-incorrect"
	if correct {
		id = "answer-correct"
	}
	return findSound(l.AnswerSounds, id)
}

// BookendSound returns the intro or outro jingle.
func (l *Library) BookendSound(kind string) Sound {
	return findSound(l.BookendSounds, kind+"-jingle")
}

func findSound(sounds []Sound, id string) Sound {
	for _, s := range sounds {
		if s.ID == id {
			return s
		}
	}
	if len(sounds) > 0 {
		return sounds[0]
	}
	return Sound{}
}
