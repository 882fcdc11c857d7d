// Package scramble generates random move sequences for puzzles.
package scramble

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Puzzle identifies a move grammar.
type Puzzle int

// Supported puzzles.
const (
	Cube3x3 Puzzle = iota
)

// String returns the puzzle's short name.
func (p Puzzle) String() string {
	switch p {
	case Cube3x3:
		return "3x3"
	default:
		return fmt.Sprintf("Puzzle(%d)", int(p))
	}
}

// ParsePuzzle parses a puzzle name as used in configuration.
func ParsePuzzle(name string) (Puzzle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "3x3", "3x3x3", "cube3x3":
		return Cube3x3, nil
	default:
		return 0, fmt.Errorf("unsupported puzzle %q", name)
	}
}

// Cube3x3Length is the number of moves in a 3x3 scramble.
const Cube3x3Length = 20

var (
	cubeFaces     = []string{"R", "L", "U", "D", "F", "B"}
	cubeModifiers = []string{"", "'", "2"}
)

// Scrambler generates scrambles from its own random source. It is not safe
// for concurrent use.
type Scrambler struct {
	rng *rand.Rand
}

// New creates a Scrambler drawing from src. A nil src uses a randomly seeded
// PCG source.
func New(src rand.Source) *Scrambler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Scrambler{rng: rand.New(src)}
}

// Generate returns a scramble for the given puzzle.
func (s *Scrambler) Generate(p Puzzle) string {
	switch p {
	case Cube3x3:
		return s.cube3x3()
	default:
		panic(fmt.Sprintf("scramble: unsupported puzzle %v", p))
	}
}

// cube3x3 draws a face until it differs from the previous one, then an
// independent modifier.
func (s *Scrambler) cube3x3() string {
	moves := make([]string, 0, Cube3x3Length)
	last := ""
	for range Cube3x3Length {
		face := cubeFaces[s.rng.IntN(len(cubeFaces))]
		for face == last {
			face = cubeFaces[s.rng.IntN(len(cubeFaces))]
		}
		modifier := cubeModifiers[s.rng.IntN(len(cubeModifiers))]
		moves = append(moves, face+modifier)
		last = face
	}
	return strings.Join(moves, " ")
}

// Generate returns a scramble for the given puzzle from a freshly seeded
// generator. It is safe for concurrent use.
func Generate(p Puzzle) string {
	return New(nil).Generate(p)
}

// Validate3x3 reports whether scramble follows the 3x3 grammar: exactly
// Cube3x3Length tokens, each a face letter with an optional ' or 2, and no
// face repeated on consecutive moves.
func Validate3x3(scramble string) error {
	tokens := strings.Fields(scramble)
	if len(tokens) != Cube3x3Length {
		return fmt.Errorf("scramble has %d moves, want %d", len(tokens), Cube3x3Length)
	}
	last := ""
	for i, tok := range tokens {
		face, modifier := tok[:1], tok[1:]
		if !slices.Contains(cubeFaces, face) {
			return fmt.Errorf("move %d %q: unknown face", i+1, tok)
		}
		if !slices.Contains(cubeModifiers, modifier) {
			return fmt.Errorf("move %d %q: unknown modifier", i+1, tok)
		}
		if face == last {
			return fmt.Errorf("move %d %q: repeats face %s", i+1, tok, face)
		}
		last = face
	}
	return nil
}
