package models

import "time"

// VideoRating represents one student's rating of a video
type VideoRating struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	VideoID   int       `json:"video_id"`
	Rating    float64   `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

// RateVideoPayload is the request body for the rate endpoint
type RateVideoPayload struct {
	StudentID int     `json:"student_id"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
}
