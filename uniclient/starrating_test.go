package uniclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueFromPointer(t *testing.T) {
	tests := []struct {
		name  string
		index int
		x     float64
		width float64
		want  float64
	}{
		{"left edge of first star", 0, 0, 24, 0.5},
		{"just left of midpoint", 0, 11.9, 24, 0.5},
		{"midpoint selects the full star", 0, 12, 24, 1},
		{"right half of first star", 0, 18, 24, 1},
		{"left half of third star", 2, 5, 24, 2.5},
		{"right half of third star", 2, 20, 24, 3},
		{"left half of last star", 4, 2, 24, 4.5},
		{"right edge of last star", 4, 24, 24, 5},
		{"narrow star left half", 1, 3, 10, 1.5},
		{"narrow star midpoint", 1, 5, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueFromPointer(tt.index, tt.x, tt.width))
		})
	}
}

func TestStarRating_ClickCommitsAndNotifies(t *testing.T) {
	var reported float64
	s := NewStarRating(0, func(v float64) { reported = v })

	s.Click(3, 5, 24)

	assert.Equal(t, 3.5, s.Rating())
	assert.Equal(t, 3.5, reported)
}

func TestStarRating_HoverPreviewDoesNotCommit(t *testing.T) {
	s := NewStarRating(2, nil)

	s.Hover(4, 20, 24)
	assert.Equal(t, 5.0, s.Display())
	assert.Equal(t, 2.0, s.Rating())

	s.Leave()
	assert.Equal(t, 2.0, s.Display())
}

func TestStarRating_ClickClearsHover(t *testing.T) {
	s := NewStarRating(0, nil)

	s.Hover(4, 20, 24)
	s.Click(1, 2, 24)

	assert.Equal(t, 1.5, s.Display())
}

func TestStarRating_ReadOnlyIgnoresInput(t *testing.T) {
	s := NewReadOnlyStarRating(4)

	s.Click(0, 2, 24)
	s.Hover(4, 20, 24)

	assert.Equal(t, 4.0, s.Rating())
	assert.Equal(t, 4.0, s.Display())
}

func TestStarRating_Label(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   string
	}{
		{"zero rating has no label", 0, ""},
		{"half star", 0.5, "0.5"},
		{"whole number", 4, "4.0"},
		{"fractional aggregate", 4.3, "4.3"},
		{"maximum", 5, "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewReadOnlyStarRating(tt.rating)
			assert.Equal(t, tt.want, s.Label())
		})
	}
}
