package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniroute/backend/internal/models"
)

func TestProgressRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO video_progress (student_id, video_id, watched_seconds, completed)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			watched_seconds = GREATEST(watched_seconds, VALUES(watched_seconds)),
			completed = completed OR VALUES(completed)
	`)).
		WithArgs(42, 101, 300, true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewProgressRepository(db)
	err = repo.Upsert(context.Background(), &models.VideoProgress{
		StudentID:      42,
		VideoID:        101,
		WatchedSeconds: 300,
		Completed:      true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepository_HasCompleted(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want bool
	}{
		{
			name: "completed row",
			rows: sqlmock.NewRows([]string{"completed"}).AddRow(true),
			want: true,
		},
		{
			name: "incomplete row",
			rows: sqlmock.NewRows([]string{"completed"}).AddRow(false),
			want: false,
		},
		{
			name: "no row",
			rows: sqlmock.NewRows([]string{"completed"}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT completed FROM video_progress
		WHERE student_id = ? AND video_id = ?
		LIMIT 1
	`)).
				WithArgs(42, 101).
				WillReturnRows(tt.rows)

			repo := NewProgressRepository(db)
			completed, err := repo.HasCompleted(context.Background(), 42, 101)
			require.NoError(t, err)
			assert.Equal(t, tt.want, completed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
