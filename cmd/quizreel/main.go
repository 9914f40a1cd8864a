package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cheetahtrivia/quizreel/internal/animation"
	"github.com/cheetahtrivia/quizreel/internal/assets"
	"github.com/cheetahtrivia/quizreel/internal/composition"
	"github.com/cheetahtrivia/quizreel/internal/config"
	"github.com/cheetahtrivia/quizreel/internal/quiz"
	"github.com/cheetahtrivia/quizreel/internal/system"
	"github.com/cheetahtrivia/quizreel/internal/timeline"
	"github.com/cheetahtrivia/quizreel/internal/validate"
)

type flags struct {
	topic         string
	questionCount int
	difficulty    string
	voiceStyle    string
	musicMood     string
	handle        string
	bankPath      string
	libraryPath   string
	outputDir     string
	format        string

	videoDuration  float64
	introTime      float64
	outroTime      float64
	questionTime   float64
	answerTime     float64
	transitionTime float64

	width  int
	height int
	fps    int
	seed   int64
}

func main() {
	f := &flags{}

	root := &cobra.Command{
		Use:   "quizreel",
		Short: "Assemble a timed multiple-choice quiz video scene",
		Long: "quizreel builds the timeline, animation schedule and layered scene\n" +
			"description for a short vertical quiz video, then validates the result\n" +
			"and writes a scene file for an external renderer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	root.Flags().StringVar(&f.topic, "topic", quiz.TopicRandom, "quiz topic (random, anatomy, biology, ...)")
	root.Flags().IntVar(&f.questionCount, "questions", 4, "number of questions")
	root.Flags().StringVar(&f.difficulty, "difficulty", "any", "question difficulty: any, easy, medium, hard")
	root.Flags().StringVar(&f.voiceStyle, "voice", "male-energetic", "voiceover style")
	root.Flags().StringVar(&f.musicMood, "music", "", "music mood (default: topic recommendation)")
	root.Flags().StringVar(&f.handle, "handle", "@CHEETAHTRIVIATRIBE", "channel handle for the outro follow QR")
	root.Flags().StringVar(&f.bankPath, "bank", "", "question bank JSON (default: embedded bank)")
	root.Flags().StringVar(&f.libraryPath, "library", "", "asset library YAML (default: built-in catalog)")
	root.Flags().StringVar(&f.outputDir, "out", "output", "output directory for scene files")
	root.Flags().StringVar(&f.format, "scene-format", "json", "scene file format: json or yaml")

	root.Flags().Float64Var(&f.videoDuration, "duration", 35, "nominal video duration (seconds)")
	root.Flags().Float64Var(&f.introTime, "intro", 2, "intro duration (seconds)")
	root.Flags().Float64Var(&f.outroTime, "outro", 3, "outro duration (seconds)")
	root.Flags().Float64Var(&f.questionTime, "question-time", 4, "per-question duration (seconds)")
	root.Flags().Float64Var(&f.answerTime, "answer-time", 2, "answer reveal duration (seconds)")
	root.Flags().Float64Var(&f.transitionTime, "transition-time", 0.5, "transition duration (seconds)")

	root.Flags().IntVar(&f.width, "width", 1080, "output width")
	root.Flags().IntVar(&f.height, "height", 1920, "output height")
	root.Flags().IntVar(&f.fps, "fps", 30, "output frame rate")
	root.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 = time-based)")

	if err := root.Execute(); err != nil {
		log.Fatalf("[-] %v", err)
	}
}

func run(f *flags) error {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	timing, err := config.DecodeTiming(map[string]any{
		"videoDuration":  f.videoDuration,
		"introTime":      f.introTime,
		"outroTime":      f.outroTime,
		"questionTime":   f.questionTime,
		"answerTime":     f.answerTime,
		"transitionTime": f.transitionTime,
	})
	if err != nil {
		return err
	}
	render, err := config.DecodeRender(map[string]any{
		"width":  f.width,
		"height": f.height,
		"fps":    f.fps,
	})
	if err != nil {
		return err
	}

	bank, err := loadBank(f.bankPath)
	if err != nil {
		return err
	}
	library, err := loadLibrary(f.libraryPath)
	if err != nil {
		return err
	}

	questions, err := quiz.Generate(bank, quiz.GenerateOptions{
		Topic:         f.topic,
		QuestionCount: f.questionCount,
		Difficulty:    f.difficulty,
	}, r)
	if err != nil {
		return err
	}

	fmt.Printf("[*] Topic: %s | Questions: %d | Seed: %d\n", f.topic, len(questions), seed)
	if memMB := system.AvailableMemoryMB(); memMB > 0 {
		fmt.Printf("[*] Resolution: %dx%d @ %d FPS | Free memory: %d MB\n", render.Width, render.Height, render.FPS, memMB)
	}

	plan, err := timeline.Build(questions, timing)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.outputDir, 0755); err != nil {
		return err
	}

	resolver := &assets.Resolver{
		Library: library,
		Rand:    r,
	}
	bundle, err := resolver.Resolve(context.Background(), questions, assets.ResolveOptions{
		Topic:      f.topic,
		VoiceStyle: f.voiceStyle,
		MusicMood:  f.musicMood,
		Workers:    system.ResolverWorkers(len(questions)),
	})
	if err != nil {
		return err
	}

	if qrPath, err := assets.GenerateFollowQR(f.handle, 512, f.outputDir); err == nil {
		bundle.FollowQR = qrPath
	} else {
		log.Printf("[!] Follow QR skipped: %v", err)
	}

	// Reconcile the plan against measured voiceover durations, then derive
	// the animation schedule from the final timeline.
	plan = timeline.Adjust(plan, bundle.VoiceoverDurations())
	cues := timeline.CuePoints(plan)
	sequence := animation.Sequence(questions, plan)

	scene, err := composition.Build(questions, plan, bundle, render)
	if err != nil {
		return err
	}
	scene = composition.ApplyAnimations(scene, sequence)

	report := validate.Check(scene, validate.DefaultRequirements())
	printReport(report)

	scenePath := filepath.Join(f.outputDir, "scene."+f.format)
	switch f.format {
	case "yaml":
		err = composition.WriteYAML(scene, scenePath)
	default:
		err = composition.WriteJSON(scene, scenePath)
	}
	if err != nil {
		return err
	}

	fmt.Printf("[*] Layers: %d | Cue points: %d | Animations: %d | Duration: %.2fs\n",
		len(scene.Layers), len(cues), len(sequence), scene.Duration)
	fmt.Printf("[+++] Scene written: %s\n", scenePath)
	if !report.Valid {
		return fmt.Errorf("composition failed validation with %d issue(s)", len(report.Issues))
	}
	return nil
}

func loadBank(path string) (*quiz.Bank, error) {
	if path == "" {
		return quiz.DefaultBank()
	}
	return quiz.LoadBank(path)
}

func loadLibrary(path string) (*assets.Library, error) {
	if path == "" {
		return assets.DefaultLibrary(), nil
	}
	return assets.LoadLibrary(path)
}

func printReport(report validate.Report) {
	if report.Valid {
		fmt.Println("[*] Validation: PASSED")
	} else {
		fmt.Println("[!] Validation: FAILED")
	}
	for _, issue := range report.Issues {
		fmt.Printf("[!]   issue (%s): %s\n", issue.Type, issue.Message)
	}
	for _, warning := range report.Warnings {
		fmt.Printf("[~]   warning (%s): %s\n", warning.Type, warning.Message)
	}
}
