package mines

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Params is the grid shape a difficulty resolves to.
type Params struct {
	Length, Bombs int
}

var tiers = map[Difficulty]Params{
	Easy:   {Length: 10, Bombs: 15},
	Medium: {Length: 15, Bombs: 50},
	Hard:   {Length: 20, Bombs: 125},
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Params looks the tier up in the fixed table. Unknown tiers are a
// configuration error, never a default.
func (d Difficulty) Params() (Params, error) {
	p, ok := tiers[d]
	if !ok {
		return Params{}, &ConfigError{Reason: fmt.Sprintf("unknown difficulty %d", int(d))}
	}
	return p, nil
}

// ParseDifficulty accepts a tier name or its menu number.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, &ConfigError{Reason: fmt.Sprintf("unknown difficulty %q", s)}
}

func (p Params) Unpack() (length, bombs int) {
	return p.Length, p.Bombs
}

func (p Params) Cells() int {
	return p.Length * p.Length
}

func (p Params) Validate() error {
	switch {
	case p.Length <= 0:
		return &ConfigError{Reason: fmt.Sprintf("board length must be positive, got %d", p.Length)}
	case p.Bombs < 0:
		return &ConfigError{Reason: fmt.Sprintf("bomb count must not be negative, got %d", p.Bombs)}
	case p.Bombs >= p.Cells():
		return &ConfigError{Reason: fmt.Sprintf(
			"not enough space for %d bombs on a %dx%d board", p.Bombs, p.Length, p.Length,
		)}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Length, p.Length, p.Bombs)
}
