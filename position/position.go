package position

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalPositions is the number of squares on the board.
	TotalPositions = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidCoordinate represents a malformed or out of range coordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrNoLineBetweenPoints is returned when two squares do not share a rank, file or diagonal.
	ErrNoLineBetweenPoints = errors.New("no line between points")
)

// allPositions lists every square file by file: a1..a8, b1..b8, ..., h8.
var allPositions = func() [TotalPositions]Pos {
	var ps [TotalPositions]Pos
	i := 0
	for x := Pos(0); x < MaxComponentScalar; x++ {
		for y := Pos(0); y < MaxComponentScalar; y++ {
			ps[i] = NewPos(x, y)
			i++
		}
	}
	return ps
}()

// Pos is a square index in little-endian rank-file order (a1 = 0, h8 = 63).
type Pos int8

// NewPos returns the square on file x and rank y, both zero based.
func NewPos(x, y Pos) Pos {
	return MaxComponentScalar*y + x
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return NewPos(x, y), nil
}

// AllPositions returns all 64 squares in file-major order. Every call returns a fresh slice.
func AllPositions() []Pos {
	ps := allPositions
	return ps[:]
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Valid() bool {
	return 0 <= p && p < TotalPositions
}

// Notation returns the lowercase coordinate, e.g. "e4".
func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.X().NotationComponentX() + p.Y().NotationComponentY()
}

// EncodedCoordinate returns the uppercase coordinate, e.g. "E4".
func (p Pos) EncodedCoordinate() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('A'+p.X())) + p.Y().NotationComponentY()
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// Offset returns the square dx files and dy ranks away, and false when it falls off the board.
func (p Pos) Offset(dx, dy Pos) (Pos, bool) {
	x, y := p.X()+dx, p.Y()+dy
	if x < 0 || MaxComponentScalar <= x || y < 0 || MaxComponentScalar <= y {
		return 0, false
	}
	return NewPos(x, y), true
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}

// Between returns the squares strictly between a and b, ordered file-major.
// a and b must share a rank, file or diagonal unless they are equal.
func Between(a, b Pos) ([]Pos, error) {
	if a == b {
		return nil, nil
	}
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoLineBetweenPoints, a, b)
	}

	// walk from the endpoint that comes first in file-major order
	from, to := a, b
	if b.X() < a.X() || (b.X() == a.X() && b.Y() < a.Y()) {
		from, to = b, a
	}
	stepX, stepY := sign(to.X()-from.X()), sign(to.Y()-from.Y())
	var ps []Pos
	for p, ok := from.Offset(stepX, stepY); ok && p != to; p, ok = p.Offset(stepX, stepY) {
		ps = append(ps, p)
	}
	return ps, nil
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, n)
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, n)
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, n)
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if 'A' <= x && x <= 'Z' {
		x |= 0x20 // lowercase is +32 uppercase
	}
	if x < 'a' || 'a'+byte(MaxComponentScalar) <= x {
		return 0, ErrInvalidCoordinate
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || '1'+byte(MaxComponentScalar) <= y {
		return 0, ErrInvalidCoordinate
	}
	return Pos(y - '1'), nil
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
