package model

import (
	"errors"
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"A1", Position{X: 0, Y: 7}},
		{"H8", Position{X: 7, Y: 0}},
		{"e2", Position{X: 4, Y: 6}},
		{"d5", Position{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != string([]byte{tt.in[0] &^ 0x20, tt.in[1]}) {
			t.Errorf("round trip of %q gave %q", tt.in, got.String())
		}
	}
}

func TestParsePositionRejectsMalformed(t *testing.T) {
	for _, in := range []string{"A0", "I1", "a9", "", "A", "A10", "11", "AA", " A1"} {
		if _, err := ParsePosition(in); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParsePosition(%q) error = %v, want ErrInvalidPosition", in, err)
		}
	}
}

func TestParseGameType(t *testing.T) {
	for _, in := range []string{"chess", "checkers", "modified_chess"} {
		if _, err := ParseGameType(in); err != nil {
			t.Errorf("ParseGameType(%q): %v", in, err)
		}
	}
	if _, err := ParseGameType("go"); !errors.Is(err, ErrUnknownGameType) {
		t.Errorf("expected ErrUnknownGameType, got %v", err)
	}
}
