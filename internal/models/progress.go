package models

import "time"

// VideoProgress represents one student's watch progress for a video
type VideoProgress struct {
	ID             int       `json:"id"`
	StudentID      int       `json:"student_id"`
	VideoID        int       `json:"video_id"`
	WatchedSeconds int       `json:"watched_seconds"`
	Completed      bool      `json:"completed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecordProgressPayload is the request body for the progress endpoint
type RecordProgressPayload struct {
	StudentID      int  `json:"student_id"`
	WatchedSeconds int  `json:"watched_seconds"`
	Completed      bool `json:"completed"`
}
