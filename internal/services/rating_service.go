package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/uniroute/backend/internal/models"
	"go.uber.org/zap"
)

// Rating business errors surfaced to the client verbatim
var (
	ErrInvalidRating       = errors.New("rating must be between 0.5 and 5 in half-star steps")
	ErrProgressNotRecorded = errors.New("watch progress must be recorded before rating")
)

// RatingRepository defines methods for video rating data access
type RatingRepository interface {
	// Upsert inserts or replaces a student's rating for a video
	Upsert(ctx context.Context, rating *models.VideoRating) error
	// AggregateForVideo computes the average rating and count for a video
	AggregateForVideo(ctx context.Context, videoID int) (models.RatingAggregate, error)
	// AggregateForCourse computes the average rating and count across all of a
	// course's videos
	AggregateForCourse(ctx context.Context, courseID int) (models.RatingAggregate, error)
}

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// UpdateAggregates stores the denormalized rating aggregate on the course row
	UpdateAggregates(ctx context.Context, courseID int, agg models.RatingAggregate) error
}

type ratingService struct {
	videoRepo    VideoRepository
	courseRepo   CourseRepository
	ratingRepo   RatingRepository
	progressRepo ProgressRepository
	logger       *zap.Logger
}

// NewRatingService creates a new video rating service
func NewRatingService(
	videoRepo VideoRepository,
	courseRepo CourseRepository,
	ratingRepo RatingRepository,
	progressRepo ProgressRepository,
	logger *zap.Logger,
) *ratingService {
	return &ratingService{
		videoRepo:    videoRepo,
		courseRepo:   courseRepo,
		ratingRepo:   ratingRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// RateVideo records a student's rating for a video and returns the fresh
// server-computed aggregates for the video and its parent course.
// A rating is only accepted after a completed watch-progress row exists for
// the same student and video.
func (s *ratingService) RateVideo(ctx context.Context, studentID, courseID, videoID int, rating float64, review string) (*models.RatingResult, error) {
	if !isValidRating(rating) {
		return nil, ErrInvalidRating
	}

	video, err := s.videoRepo.GetByIDInCourse(ctx, courseID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	completed, err := s.progressRepo.HasCompleted(ctx, studentID, video.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check progress: %w", err)
	}
	if !completed {
		return nil, ErrProgressNotRecorded
	}

	if err := s.ratingRepo.Upsert(ctx, &models.VideoRating{
		StudentID: studentID,
		VideoID:   video.ID,
		Rating:    rating,
		Review:    review,
	}); err != nil {
		return nil, fmt.Errorf("failed to store rating: %w", err)
	}

	videoAgg, err := s.ratingRepo.AggregateForVideo(ctx, video.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate video ratings: %w", err)
	}

	courseAgg, err := s.ratingRepo.AggregateForCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate course ratings: %w", err)
	}

	// Denormalized aggregates are best-effort; reads fall back to the
	// rating rows either way
	if err := s.videoRepo.UpdateAggregates(ctx, video.ID, videoAgg); err != nil {
		s.logger.Warn("failed to update video aggregates", zap.Int("video_id", video.ID), zap.Error(err))
	}
	if err := s.courseRepo.UpdateAggregates(ctx, courseID, courseAgg); err != nil {
		s.logger.Warn("failed to update course aggregates", zap.Int("course_id", courseID), zap.Error(err))
	}

	return &models.RatingResult{
		Video:  videoAgg,
		Course: courseAgg,
	}, nil
}

// isValidRating reports whether the rating is in (0, 5] on a half-star step
func isValidRating(rating float64) bool {
	if rating <= 0 || rating > 5 {
		return false
	}
	doubled := rating * 2
	return doubled == math.Trunc(doubled)
}
