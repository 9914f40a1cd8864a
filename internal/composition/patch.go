package composition

import "github.com/cheetahtrivia/quizreel/internal/animation"

// ApplyAnimations overlays a generated animation sequence onto a
// composition: for every instruction whose element id matches a layer, the
// layer's animation is replaced. Instructions without a matching layer
// (for example the whole-scene transition) are dropped silently. The input
// composition is not modified; a new one is returned.
func ApplyAnimations(c *Composition, sequence []animation.Instruction) *Composition {
	patched := &Composition{
		Name:     c.Name,
		Width:    c.Width,
		Height:   c.Height,
		FPS:      c.FPS,
		Duration: c.Duration,
		Format:   c.Format,
		Quality:  c.Quality,
		Layers:   make([]Layer, len(c.Layers)),
	}
	copy(patched.Layers, c.Layers)

	byElement := make(map[string][]int)
	for i, layer := range patched.Layers {
		if layer.ElementID != "" {
			byElement[layer.ElementID] = append(byElement[layer.ElementID], i)
		}
	}

	for _, instr := range sequence {
		for _, i := range byElement[instr.ElementID] {
			spec := instr.Animation
			patched.Layers[i].Animation = &spec
		}
	}

	return patched
}
