package models

// Course represents a guidance course with its server-computed rating aggregate
type Course struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

// Video represents one video in a course
type Video struct {
	ID              int     `json:"id"`
	CourseID        int     `json:"course_id"`
	Title           string  `json:"title"`
	ProviderRef     string  `json:"provider_ref"`
	DurationSeconds int     `json:"duration_seconds"`
	AverageRating   float64 `json:"average_rating"`
	RatingCount     int     `json:"rating_count"`
}

// RatingAggregate is the server-computed average rating and count
// for a video or course, authoritative over any locally blended value
type RatingAggregate struct {
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

// RatingResult carries the fresh aggregates returned after a rating submission
type RatingResult struct {
	Video  RatingAggregate `json:"video"`
	Course RatingAggregate `json:"course"`
}

// RateVideoResponse is the wire envelope for the rate endpoint
type RateVideoResponse struct {
	Success bool             `json:"success"`
	Video   *RatingAggregate `json:"video,omitempty"`
	Course  *RatingAggregate `json:"course,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// StatusResponse is the generic {status, message} envelope used by the
// booking endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
