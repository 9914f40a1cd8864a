package composition

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadJSON(t *testing.T) {
	questions := makeQuestions(2)
	scene := buildScene(t, questions, fullBundle(2))

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, WriteJSON(scene, path))

	loaded, err := ReadJSON(path)
	require.NoError(t, err)

	assert.Equal(t, scene.Name, loaded.Name)
	assert.Equal(t, scene.Duration, loaded.Duration)
	require.Len(t, loaded.Layers, len(scene.Layers))
	assert.Equal(t, scene.Layers[0].Type, loaded.Layers[0].Type)
}

func TestWriteYAML(t *testing.T) {
	questions := makeQuestions(1)
	scene := buildScene(t, questions, minimalBundle())

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, WriteYAML(scene, path))
	assert.FileExists(t, path)
}

func TestReadJSONMissingFile(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
