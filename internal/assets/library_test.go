package assets

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func libRand() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

func TestMusicByMoodFallsBackToDefault(t *testing.T) {
	lib := DefaultLibrary()
	tracks := lib.MusicByMood("nonexistent")
	require.NotEmpty(t, tracks)
	assert.Equal(t, lib.Music["default"], tracks)
}

func TestRecommendedMoods(t *testing.T) {
	lib := DefaultLibrary()
	assert.Equal(t, []string{"dramatic", "suspense"}, lib.RecommendedMoods("anatomy"))
	assert.Equal(t, []string{"default", "upbeat"}, lib.RecommendedMoods("random"))
}

func TestRecommendedTrackMatchesFirstMood(t *testing.T) {
	lib := DefaultLibrary()
	for i := 0; i < 20; i++ {
		track := lib.RecommendedTrack("music", libRand())
		assert.Contains(t, track.ID, "fun-")
	}
}

func TestBackgroundsForTopic(t *testing.T) {
	lib := DefaultLibrary()
	assert.Equal(t, lib.TopicBackgrounds["geography"], lib.BackgroundsForTopic("geography"))
	assert.Equal(t, lib.GenericBackgrounds, lib.BackgroundsForTopic("random"))
}

func TestSoundSelection(t *testing.T) {
	lib := DefaultLibrary()
	assert.Equal(t, "clock-fast", lib.ClockSound("fast").ID)
	assert.Equal(t, "clock-standard", lib.ClockSound("nonexistent").ID)
	assert.Equal(t, "transition-whoosh", lib.TransitionSound("whoosh").ID)
	assert.Equal(t, "answer-correct", lib.AnswerSound(true).ID)
	assert.Equal(t, "answer-incorrect", lib.AnswerSound(false).ID)
	assert.Equal(t, "intro-jingle", lib.BookendSound("intro").ID)
	assert.Equal(t, "outro-jingle", lib.BookendSound("outro").ID)
}

func TestLibraryRoundTrip(t *testing.T) {
	lib := DefaultLibrary()
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, WriteLibrary(lib, path))

	loaded, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, lib.Music, loaded.Music)
	assert.Equal(t, lib.ClockSounds, loaded.ClockSounds)
}

func TestGenerateFollowQR(t *testing.T) {
	dir := t.TempDir()
	path, err := GenerateFollowQR("@cheetahtriviatribe", 256, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "follow-cheetahtriviatribe.png"), path)
	assert.FileExists(t, path)
}

func TestGenerateFollowQREmptyHandle(t *testing.T) {
	_, err := GenerateFollowQR("", 256, t.TempDir())
	assert.Error(t, err)
}
