package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniroute/backend/internal/models"
	"go.uber.org/zap"
)

// mockVideoRepository is a mock implementation of VideoRepository
type mockVideoRepository struct {
	video              *models.Video
	getErr             error
	updateErr          error
	updatedAgg         models.RatingAggregate
	updateCalled       bool
	lastCourseIDLookup int
}

func (m *mockVideoRepository) GetByIDInCourse(ctx context.Context, courseID, videoID int) (*models.Video, error) {
	m.lastCourseIDLookup = courseID
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.video, nil
}

func (m *mockVideoRepository) UpdateAggregates(ctx context.Context, videoID int, agg models.RatingAggregate) error {
	m.updateCalled = true
	m.updatedAgg = agg
	return m.updateErr
}

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	course       *models.Course
	getErr       error
	updateErr    error
	updatedAgg   models.RatingAggregate
	updateCalled bool
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.course, nil
}

func (m *mockCourseRepository) UpdateAggregates(ctx context.Context, courseID int, agg models.RatingAggregate) error {
	m.updateCalled = true
	m.updatedAgg = agg
	return m.updateErr
}

// mockRatingRepository is a mock implementation of RatingRepository
type mockRatingRepository struct {
	upsertErr    error
	upserted     *models.VideoRating
	videoAgg     models.RatingAggregate
	videoAggErr  error
	courseAgg    models.RatingAggregate
	courseAggErr error
}

func (m *mockRatingRepository) Upsert(ctx context.Context, rating *models.VideoRating) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = rating
	return nil
}

func (m *mockRatingRepository) AggregateForVideo(ctx context.Context, videoID int) (models.RatingAggregate, error) {
	return m.videoAgg, m.videoAggErr
}

func (m *mockRatingRepository) AggregateForCourse(ctx context.Context, courseID int) (models.RatingAggregate, error) {
	return m.courseAgg, m.courseAggErr
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	upsertErr    error
	upserted     *models.VideoProgress
	completed    bool
	completedErr error
}

func (m *mockProgressRepository) Upsert(ctx context.Context, progress *models.VideoProgress) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = progress
	return nil
}

func (m *mockProgressRepository) HasCompleted(ctx context.Context, studentID, videoID int) (bool, error) {
	return m.completed, m.completedErr
}

func TestIsValidRating(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   bool
	}{
		{name: "half star", rating: 0.5, want: true},
		{name: "full star", rating: 1, want: true},
		{name: "four and a half", rating: 4.5, want: true},
		{name: "maximum", rating: 5, want: true},
		{name: "zero", rating: 0, want: false},
		{name: "negative", rating: -1, want: false},
		{name: "above maximum", rating: 5.5, want: false},
		{name: "off the half-star grid", rating: 4.3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidRating(tt.rating))
		})
	}
}

func TestRatingService_RateVideoInvalidRating(t *testing.T) {
	videoRepo := &mockVideoRepository{}
	svc := NewRatingService(videoRepo, &mockCourseRepository{}, &mockRatingRepository{}, &mockProgressRepository{}, zap.NewNop())

	result, err := svc.RateVideo(context.Background(), 42, 9, 101, 4.3, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
	assert.Nil(t, result)
	assert.Equal(t, 0, videoRepo.lastCourseIDLookup)
}

func TestRatingService_RateVideoNotFound(t *testing.T) {
	videoRepo := &mockVideoRepository{getErr: errors.New("video not found")}
	svc := NewRatingService(videoRepo, &mockCourseRepository{}, &mockRatingRepository{}, &mockProgressRepository{}, zap.NewNop())

	result, err := svc.RateVideo(context.Background(), 42, 9, 101, 4.5, "")
	assert.Error(t, err)
	assert.Equal(t, "failed to get video: video not found", err.Error())
	assert.Nil(t, result)
}

func TestRatingService_RateVideoWithoutProgress(t *testing.T) {
	videoRepo := &mockVideoRepository{video: &models.Video{ID: 101, CourseID: 9}}
	ratingRepo := &mockRatingRepository{}
	progressRepo := &mockProgressRepository{completed: false}
	svc := NewRatingService(videoRepo, &mockCourseRepository{}, ratingRepo, progressRepo, zap.NewNop())

	result, err := svc.RateVideo(context.Background(), 42, 9, 101, 4.5, "")
	assert.ErrorIs(t, err, ErrProgressNotRecorded)
	assert.Nil(t, result)
	assert.Nil(t, ratingRepo.upserted)
}

func TestRatingService_RateVideoSuccess(t *testing.T) {
	videoRepo := &mockVideoRepository{video: &models.Video{ID: 101, CourseID: 9}}
	courseRepo := &mockCourseRepository{}
	ratingRepo := &mockRatingRepository{
		videoAgg:  models.RatingAggregate{AverageRating: 4.3, RatingCount: 11},
		courseAgg: models.RatingAggregate{AverageRating: 4.1, RatingCount: 58},
	}
	svc := NewRatingService(videoRepo, courseRepo, ratingRepo, &mockProgressRepository{completed: true}, zap.NewNop())

	result, err := svc.RateVideo(context.Background(), 42, 9, 101, 4.5, "very helpful")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, models.RatingAggregate{AverageRating: 4.3, RatingCount: 11}, result.Video)
	assert.Equal(t, models.RatingAggregate{AverageRating: 4.1, RatingCount: 58}, result.Course)

	require.NotNil(t, ratingRepo.upserted)
	assert.Equal(t, 42, ratingRepo.upserted.StudentID)
	assert.Equal(t, 101, ratingRepo.upserted.VideoID)
	assert.Equal(t, 4.5, ratingRepo.upserted.Rating)
	assert.Equal(t, "very helpful", ratingRepo.upserted.Review)

	assert.True(t, videoRepo.updateCalled)
	assert.Equal(t, ratingRepo.videoAgg, videoRepo.updatedAgg)
	assert.True(t, courseRepo.updateCalled)
	assert.Equal(t, ratingRepo.courseAgg, courseRepo.updatedAgg)
}

func TestRatingService_DenormalizedUpdateFailureIsNotFatal(t *testing.T) {
	videoRepo := &mockVideoRepository{
		video:     &models.Video{ID: 101, CourseID: 9},
		updateErr: errors.New("deadlock"),
	}
	courseRepo := &mockCourseRepository{updateErr: errors.New("deadlock")}
	ratingRepo := &mockRatingRepository{
		videoAgg:  models.RatingAggregate{AverageRating: 5, RatingCount: 1},
		courseAgg: models.RatingAggregate{AverageRating: 5, RatingCount: 1},
	}
	svc := NewRatingService(videoRepo, courseRepo, ratingRepo, &mockProgressRepository{completed: true}, zap.NewNop())

	result, err := svc.RateVideo(context.Background(), 42, 9, 101, 5, "")
	assert.NoError(t, err)
	assert.NotNil(t, result)
}
