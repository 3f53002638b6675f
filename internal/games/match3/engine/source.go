package engine

import "math/rand"

// IconSource supplies new icons to the engine.
type IconSource interface {
	// Generate returns a new icon. It must never return Empty.
	Generate() Icon

	// Initialize overwrites every cell of g with a freshly generated icon.
	Initialize(g *Grid)
}

// DefaultIconTypes is the icon type count used when none is configured.
const DefaultIconTypes = 6

// RandomSource picks icons uniformly among a fixed number of types.
type RandomSource struct {
	types int
	rng   *rand.Rand
}

// NewRandomSource creates a source over the given number of icon types seeded
// with seed. Same seed, same icon sequence.
func NewRandomSource(types int, seed int64) *RandomSource {
	if types < 1 {
		types = DefaultIconTypes
	}
	return &RandomSource{
		types: types,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Types returns the number of icon types.
func (s *RandomSource) Types() int {
	return s.types
}

// SetTypes changes the number of icon types for future icons.
// Values below 1 are ignored.
func (s *RandomSource) SetTypes(types int) {
	if types >= 1 {
		s.types = types
	}
}

// Generate returns a uniformly random icon.
func (s *RandomSource) Generate() Icon {
	return NewIcon(s.rng.Intn(s.types))
}

// Initialize fills every cell of g.
func (s *RandomSource) Initialize(g *Grid) {
	fillAll(g, s)
}

// SequenceSource replays a fixed list of icon types, cycling when exhausted.
// It makes refills predictable in tests and replays.
type SequenceSource struct {
	types []int
	next  int
}

// NewSequenceSource creates a source that yields the given types in order.
// Negative types are treated as 0 so the source never yields Empty.
func NewSequenceSource(types ...int) *SequenceSource {
	if len(types) == 0 {
		types = []int{0}
	}
	return &SequenceSource{types: types}
}

// Generate returns the next icon of the sequence.
func (s *SequenceSource) Generate() Icon {
	t := s.types[s.next%len(s.types)]
	s.next++
	if t < 0 {
		t = 0
	}
	return NewIcon(t)
}

// Initialize fills every cell of g in row-major order.
func (s *SequenceSource) Initialize(g *Grid) {
	fillAll(g, s)
}

func fillAll(g *Grid, src IconSource) {
	for row := range g.Height() {
		for col := range g.Width() {
			g.Set(row, col, src.Generate())
		}
	}
}
