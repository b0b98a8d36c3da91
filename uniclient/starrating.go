package uniclient

import "fmt"

// StarCount is the number of stars in the rating control
const StarCount = 5

// ValueFromPointer converts a pointer position inside one star's bounding box
// into a rating value with half-star precision. index is the zero-based star
// index, x is the pointer offset from the star's left edge, and width is the
// star's width. A pointer strictly left of the midpoint selects the half
// star; the midpoint itself and everything right of it select the full star.
func ValueFromPointer(index int, x, width float64) float64 {
	if x < width/2 {
		return float64(index) + 0.5
	}
	return float64(index) + 1
}

// StarRating models a five-star rating control with half-star precision.
// Hovering tracks a preview value without touching the committed rating;
// a click commits the value and invokes the change callback. A read-only
// control ignores all input.
type StarRating struct {
	rating   float64
	hover    float64
	readOnly bool
	onChange func(float64)
}

// NewStarRating creates an interactive control with the given initial rating
func NewStarRating(rating float64, onChange func(float64)) *StarRating {
	return &StarRating{
		rating:   rating,
		onChange: onChange,
	}
}

// NewReadOnlyStarRating creates a display-only control
func NewReadOnlyStarRating(rating float64) *StarRating {
	return &StarRating{
		rating:   rating,
		readOnly: true,
	}
}

// Click commits the value under the pointer and invokes the change callback
func (s *StarRating) Click(index int, x, width float64) {
	if s.readOnly {
		return
	}

	s.rating = ValueFromPointer(index, x, width)
	s.hover = 0
	if s.onChange != nil {
		s.onChange(s.rating)
	}
}

// Hover tracks the preview value under the pointer
func (s *StarRating) Hover(index int, x, width float64) {
	if s.readOnly {
		return
	}

	s.hover = ValueFromPointer(index, x, width)
}

// Leave clears the hover preview
func (s *StarRating) Leave() {
	s.hover = 0
}

// Rating returns the committed rating
func (s *StarRating) Rating() float64 {
	return s.rating
}

// SetRating replaces the committed rating
func (s *StarRating) SetRating(rating float64) {
	s.rating = rating
}

// Display returns the value the stars should render: the hover preview while
// the pointer is over the control, the committed rating otherwise
func (s *StarRating) Display() float64 {
	if !s.readOnly && s.hover > 0 {
		return s.hover
	}
	return s.rating
}

// Label returns the numeric label next to the stars, or an empty string when
// there is no rating to show
func (s *StarRating) Label() string {
	if s.rating == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", s.rating)
}
