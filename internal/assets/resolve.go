package assets

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cheetahtrivia/quizreel/internal/quiz"
)

// ErrUnavailable is the explicit "not available" signal from a provider.
// It is not a failure: the resolver records the asset as absent and the
// composition builder omits the corresponding layer.
var ErrUnavailable = errors.New("asset unavailable")

// ImageProvider resolves an image reference for a search query.
type ImageProvider interface {
	FindImage(ctx context.Context, query string) (string, error)
}

// VoiceProvider synthesizes speech and reports the measured duration.
type VoiceProvider interface {
	Synthesize(ctx context.Context, text, voiceStyle string) (AudioRef, error)
}

// ResolveOptions selects which reference data and providers feed the bundle.
type ResolveOptions struct {
	Topic           string
	VoiceStyle      string
	MusicMood       string // empty means use the topic recommendation
	ClockStyle      string // standard, fast, dramatic
	TransitionStyle string // slide, whoosh, pop
	Workers         int    // concurrent per-question resolutions, min 1
}

// Resolver assembles the asset bundle for a quiz. Image and voiceover
// lookups run concurrently per question; reference-data lookups (music,
// background, sound effects) are local table reads.
type Resolver struct {
	Library *Library
	Images  ImageProvider
	Voices  VoiceProvider
	Rand    *rand.Rand
}

// Resolve fetches every asset for the given questions. Provider results of
// ErrUnavailable leave the slot absent; any other provider error aborts
// resolution. All lookups complete (or resolve to absent) before Resolve
// returns, so the bundle is ready for the synchronous builder.
func (r *Resolver) Resolve(ctx context.Context, questions []quiz.Question, opts ResolveOptions) (*Bundle, error) {
	mood := opts.MusicMood
	if mood == "" {
		mood = r.Library.RecommendedMoods(opts.Topic)[0]
	}
	clockStyle := opts.ClockStyle
	if clockStyle == "" {
		clockStyle = "standard"
	}
	transitionStyle := opts.TransitionStyle
	if transitionStyle == "" {
		transitionStyle = "slide"
	}

	bundle := &Bundle{
		Background:         r.Library.RandomBackground(opts.Topic, r.Rand).Path,
		Music:              r.Library.RandomTrack(mood, r.Rand).Path,
		ClockSound:         r.Library.ClockSound(clockStyle).Path,
		TransitionSound:    r.Library.TransitionSound(transitionStyle).Path,
		Images:             make(map[int]string),
		QuestionVoiceovers: make(map[int]AudioRef),
		AnswerVoiceovers:   make(map[int]AudioRef),
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range questions {
		i, q := i, q
		g.Go(func() error {
			if r.Images != nil && q.ImageQuery != "" {
				path, err := r.Images.FindImage(ctx, q.ImageQuery)
				switch {
				case errors.Is(err, ErrUnavailable):
					// image layer is optional, skip it
				case err != nil:
					return fmt.Errorf("image for question %d: %w", q.QuestionNumber, err)
				default:
					mu.Lock()
					bundle.Images[i] = path
					mu.Unlock()
				}
			}

			if r.Voices == nil {
				return nil
			}

			questionVO, err := r.Voices.Synthesize(ctx, q.QuestionText, opts.VoiceStyle)
			switch {
			case errors.Is(err, ErrUnavailable):
			case err != nil:
				return fmt.Errorf("question voiceover %d: %w", q.QuestionNumber, err)
			default:
				mu.Lock()
				bundle.QuestionVoiceovers[i] = questionVO
				mu.Unlock()
			}

			answerText := fmt.Sprintf("The correct answer is %s", q.CorrectOption())
			answerVO, err := r.Voices.Synthesize(ctx, answerText, opts.VoiceStyle)
			switch {
			case errors.Is(err, ErrUnavailable):
			case err != nil:
				return fmt.Errorf("answer voiceover %d: %w", q.QuestionNumber, err)
			default:
				mu.Lock()
				bundle.AnswerVoiceovers[i] = answerVO
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}
