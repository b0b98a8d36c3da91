package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

// ErrInvalidWatchedSeconds is returned for a negative watched_seconds value
var ErrInvalidWatchedSeconds = errors.New("watched_seconds must not be negative")

// VideoRepository defines methods for video data access
type VideoRepository interface {
	// GetByIDInCourse retrieves a video by ID, checking it belongs to the course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "videoID" is the ID of the video.
	//
	// Returns the video and an error if any.
	GetByIDInCourse(ctx context.Context, courseID, videoID int) (*models.Video, error)
	// UpdateAggregates stores the denormalized rating aggregate on the video row
	UpdateAggregates(ctx context.Context, videoID int, agg models.RatingAggregate) error
}

// ProgressRepository defines methods for video progress data access
type ProgressRepository interface {
	// Upsert inserts or updates a student's progress for a video
	Upsert(ctx context.Context, progress *models.VideoProgress) error
	// HasCompleted checks whether the student has a completed progress row for the video
	HasCompleted(ctx context.Context, studentID, videoID int) (bool, error)
}

type progressService struct {
	videoRepo    VideoRepository
	progressRepo ProgressRepository
}

// NewProgressService creates a new video progress service
func NewProgressService(videoRepo VideoRepository, progressRepo ProgressRepository) *progressService {
	return &progressService{
		videoRepo:    videoRepo,
		progressRepo: progressRepo,
	}
}

// RecordProgress persists one watch-progress event for a video in a course
func (s *progressService) RecordProgress(ctx context.Context, studentID, courseID, videoID, watchedSeconds int, completed bool) error {
	if watchedSeconds < 0 {
		return ErrInvalidWatchedSeconds
	}

	video, err := s.videoRepo.GetByIDInCourse(ctx, courseID, videoID)
	if err != nil {
		return fmt.Errorf("failed to get video: %w", err)
	}

	// Clamp to the video length; players occasionally over-report
	if video.DurationSeconds > 0 && watchedSeconds > video.DurationSeconds {
		watchedSeconds = video.DurationSeconds
	}

	progress := &models.VideoProgress{
		StudentID:      studentID,
		VideoID:        video.ID,
		WatchedSeconds: watchedSeconds,
		Completed:      completed,
	}

	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return fmt.Errorf("failed to record progress: %w", err)
	}

	return nil
}
