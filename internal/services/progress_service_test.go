package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniroute/backend/internal/models"
)

func TestProgressService_RecordProgressNegativeSeconds(t *testing.T) {
	videoRepo := &mockVideoRepository{video: &models.Video{ID: 101, CourseID: 9, DurationSeconds: 300}}
	progressRepo := &mockProgressRepository{}
	svc := NewProgressService(videoRepo, progressRepo)

	err := svc.RecordProgress(context.Background(), 42, 9, 101, -1, true)
	assert.ErrorIs(t, err, ErrInvalidWatchedSeconds)
	assert.Nil(t, progressRepo.upserted)
}

func TestProgressService_RecordProgressVideoNotFound(t *testing.T) {
	videoRepo := &mockVideoRepository{getErr: errors.New("video not found")}
	svc := NewProgressService(videoRepo, &mockProgressRepository{})

	err := svc.RecordProgress(context.Background(), 42, 9, 101, 120, false)
	assert.Error(t, err)
	assert.Equal(t, "failed to get video: video not found", err.Error())
}

func TestProgressService_RecordProgress(t *testing.T) {
	tests := []struct {
		name           string
		duration       int
		watchedSeconds int
		wantSeconds    int
	}{
		{
			name:           "within duration",
			duration:       300,
			watchedSeconds: 120,
			wantSeconds:    120,
		},
		{
			name:           "over-reported clamps to duration",
			duration:       300,
			watchedSeconds: 301,
			wantSeconds:    300,
		},
		{
			name:           "unknown duration left as reported",
			duration:       0,
			watchedSeconds: 900,
			wantSeconds:    900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videoRepo := &mockVideoRepository{video: &models.Video{ID: 101, CourseID: 9, DurationSeconds: tt.duration}}
			progressRepo := &mockProgressRepository{}
			svc := NewProgressService(videoRepo, progressRepo)

			err := svc.RecordProgress(context.Background(), 42, 9, 101, tt.watchedSeconds, true)
			require.NoError(t, err)

			require.NotNil(t, progressRepo.upserted)
			assert.Equal(t, 42, progressRepo.upserted.StudentID)
			assert.Equal(t, 101, progressRepo.upserted.VideoID)
			assert.Equal(t, tt.wantSeconds, progressRepo.upserted.WatchedSeconds)
			assert.True(t, progressRepo.upserted.Completed)
		})
	}
}

func TestProgressService_RecordProgressUpsertError(t *testing.T) {
	videoRepo := &mockVideoRepository{video: &models.Video{ID: 101, CourseID: 9, DurationSeconds: 300}}
	progressRepo := &mockProgressRepository{upsertErr: errors.New("connection reset")}
	svc := NewProgressService(videoRepo, progressRepo)

	err := svc.RecordProgress(context.Background(), 42, 9, 101, 120, true)
	assert.Error(t, err)
	assert.Equal(t, "failed to record progress: connection reset", err.Error())
}
