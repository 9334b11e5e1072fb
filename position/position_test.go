package position

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Pos(28),
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos(63),
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos(0),
			wantErr:  nil,
		},
		{
			name:     "ok uppercase",
			notation: "E6",
			want:     E6,
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 7",
			notation: "i1",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 8",
			notation: "1b",
			wantErr:  ErrInvalidCoordinate,
		},
		{
			name:     "bad 9",
			notation: "a13",
			wantErr:  ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestEncodedCoordinate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  Pos
		want string
	}{
		{pos: NewPos(0, 0), want: "A1"},
		{pos: NewPos(1, 2), want: "B3"},
		{pos: NewPos(5, 7), want: "F8"},
	}
	for _, tt := range tests {
		if got := tt.pos.EncodedCoordinate(); got != tt.want {
			t.Errorf("unexpected coordinate: got=%s want=%s", got, tt.want)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for _, p := range AllPositions() {
		got, err := NewPosFromNotation(p.Notation())
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", p, err)
		}
		if got != p {
			t.Errorf("unexpected round trip: got=%v want=%v", got, p)
		}
		got, err = NewPosFromNotation(p.EncodedCoordinate())
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", p, err)
		}
		if got != p {
			t.Errorf("unexpected round trip: got=%v want=%v", got, p)
		}
	}
}

func TestAllPositions(t *testing.T) {
	t.Parallel()
	ps := AllPositions()
	if len(ps) != 64 {
		t.Fatalf("unexpected length: got=%d want=64", len(ps))
	}
	if ps[0] != A1 || ps[1] != A2 || ps[7] != A8 || ps[8] != B1 || ps[63] != H8 {
		t.Errorf("unexpected order: %v", ps)
	}

	// callers may not corrupt later iterations
	ps[0] = H8
	if AllPositions()[0] != A1 {
		t.Error("AllPositions returned shared storage")
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		a, b    Pos
		want    []Pos
		wantErr error
	}{
		{
			name: "same square",
			a:    NewPos(1, 2),
			b:    NewPos(1, 2),
			want: nil,
		},
		{
			name: "same file",
			a:    NewPos(1, 3),
			b:    NewPos(1, 7),
			want: []Pos{NewPos(1, 4), NewPos(1, 5), NewPos(1, 6)},
		},
		{
			name: "same file reversed",
			a:    NewPos(1, 7),
			b:    NewPos(1, 3),
			want: []Pos{NewPos(1, 4), NewPos(1, 5), NewPos(1, 6)},
		},
		{
			name: "same rank",
			a:    NewPos(2, 2),
			b:    NewPos(4, 2),
			want: []Pos{NewPos(3, 2)},
		},
		{
			name: "positive diagonal",
			a:    NewPos(1, 3),
			b:    NewPos(3, 5),
			want: []Pos{NewPos(2, 4)},
		},
		{
			name: "negative diagonal",
			a:    NewPos(1, 3),
			b:    NewPos(3, 1),
			want: []Pos{NewPos(2, 2)},
		},
		{
			name: "long diagonal",
			a:    H8,
			b:    A1,
			want: []Pos{B2, C3, D4, E5, F6, G7},
		},
		{
			name: "adjacent",
			a:    E4,
			b:    F5,
			want: nil,
		},
		{
			name:    "no line",
			a:       NewPos(1, 3),
			b:       NewPos(3, 4),
			wantErr: ErrNoLineBetweenPoints,
		},
		{
			name:    "knight jump",
			a:       G1,
			b:       F3,
			wantErr: ErrNoLineBetweenPoints,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Between(tt.a, tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}
