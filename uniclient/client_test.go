package uniclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AvailableSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/counsellors/available-slots/7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"available_slots": []map[string]string{
				{"date": "2024-03-15", "start_time": "09:00", "formatted_time": "9:00 AM", "datetime": "2024-03-15T09:00:00Z"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	slots, err := c.AvailableSlots(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, TimeSlot{
		Date:          "2024-03-15",
		StartTime:     "09:00",
		FormattedTime: "9:00 AM",
		Datetime:      "2024-03-15T09:00:00Z",
	}, slots[0])
}

func TestClient_AvailableSlotsBusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "counsellor not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.AvailableSlots(context.Background(), 7)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "counsellor not found", apiErr.Message)
}

func TestClient_CreateSessionRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/counsellors/requests/7", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var payload SessionRequestPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 42, payload.StudentID)
		assert.Equal(t, "online", payload.SessionType)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "session request created"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("test-token"))
	err := c.CreateSessionRequest(context.Background(), 7, SessionRequestPayload{
		StudentID:   42,
		Topic:       "course selection",
		ScheduledAt: "2024-03-15T09:00:00Z",
		SessionType: "online",
		Description: "need help",
	})
	require.NoError(t, err)
}

func TestClient_CreateSessionRequestSlotGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "slot is no longer available"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.CreateSessionRequest(context.Background(), 7, SessionRequestPayload{StudentID: 42})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "slot is no longer available", apiErr.Message)
}

func TestClient_Unauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.RecordProgress(context.Background(), 9, 101, ProgressPayload{StudentID: 42})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClient_RecordProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/9/videos/101/progress", r.URL.Path)

		var payload ProgressPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.True(t, payload.Completed)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.RecordProgress(context.Background(), 9, 101, ProgressPayload{
		StudentID:      42,
		WatchedSeconds: 300,
		Completed:      true,
	})
	require.NoError(t, err)
}

func TestClient_RecordProgressServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": "invalid session"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.RecordProgress(context.Background(), 9, 101, ProgressPayload{StudentID: 42})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid session", apiErr.Message)
}

func TestClient_RateVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/9/videos/101/rate", r.URL.Path)

		var payload RatingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 4.5, payload.Rating)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"video":   map[string]any{"average_rating": 4.3, "rating_count": 11},
			"course":  map[string]any{"average_rating": 4.1, "rating_count": 58},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	aggregates, err := c.RateVideo(context.Background(), 9, 101, RatingPayload{
		StudentID: 42,
		Rating:    4.5,
		Review:    "very helpful",
	})
	require.NoError(t, err)
	assert.Equal(t, Aggregate{AverageRating: 4.3, RatingCount: 11}, aggregates.Video)
	assert.Equal(t, Aggregate{AverageRating: 4.1, RatingCount: 58}, aggregates.Course)
}

func TestClient_RateVideoRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "watch progress must be recorded before rating",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.RateVideo(context.Background(), 9, 101, RatingPayload{StudentID: 42, Rating: 4})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "watch progress must be recorded before rating", apiErr.Message)
}

func TestClient_ListResources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/9/resources", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "course_id": 9, "title": "Scholarship guide", "kind": "link", "url": "https://example.com/guide"},
			{"id": 2, "course_id": 9, "title": "Checklist.pdf", "kind": "file", "file_id": "chk-1", "content_type": "application/pdf"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resources, err := c.ListResources(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, ResourceKindLink, resources[0].Kind)
	assert.Equal(t, ResourceKindFile, resources[1].Kind)
}

func TestClient_DownloadResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources/2/download", r.URL.Path)

		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("pdf bytes"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	body, err := c.DownloadResource(context.Background(), 2)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestClient_DownloadResourceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "resource not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.DownloadResource(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "resource not found", apiErr.Message)
}
