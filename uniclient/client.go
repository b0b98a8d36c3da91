// Package uniclient is the student-facing client SDK for the UniRoute API.
// It wraps the booking, progress and rating endpoints behind typed calls and
// drives the slot booking and video rating workflows.
package uniclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnauthenticated is returned when the server rejects the client's credentials
var ErrUnauthenticated = errors.New("authentication required")

// APIError is a business error reported by the server, carrying the message
// to surface to the user verbatim
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// TimeSlot is one bookable time unit of a counsellor's calendar
type TimeSlot struct {
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	FormattedTime string `json:"formatted_time"`
	Datetime      string `json:"datetime"`
}

// SessionRequestPayload is the body for booking a session
type SessionRequestPayload struct {
	StudentID   int    `json:"student_id"`
	Topic       string `json:"topic"`
	ScheduledAt string `json:"scheduled_at"`
	SessionType string `json:"session_type"`
	Description string `json:"description"`
}

// ProgressPayload is the body for recording watch progress
type ProgressPayload struct {
	StudentID      int  `json:"student_id"`
	WatchedSeconds int  `json:"watched_seconds"`
	Completed      bool `json:"completed"`
}

// RatingPayload is the body for rating a video
type RatingPayload struct {
	StudentID int     `json:"student_id"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
}

// Aggregate is a server-computed average rating and count
type Aggregate struct {
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

// RatingAggregates carries the fresh aggregates returned after a rating
// submission, authoritative over any locally blended value
type RatingAggregates struct {
	Video  Aggregate `json:"video"`
	Course Aggregate `json:"course"`
}

// Resource is a course resource: an external link or a downloadable file
type Resource struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"course_id"`
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	URL         string `json:"url,omitempty"`
	FileID      string `json:"file_id,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

const (
	// ResourceKindLink marks an external link resource
	ResourceKindLink = "link"
	// ResourceKindFile marks a downloadable stored file
	ResourceKindFile = "file"
)

// Client is a typed HTTP client for the UniRoute API
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token sent with every request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a new API client. baseURL must include the /api prefix.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token after a login
func (c *Client) SetToken(token string) {
	c.token = token
}

// statusEnvelope is the {status, message?, error?} wire shape
type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// slotsEnvelope is the available-slots wire shape
type slotsEnvelope struct {
	Status         string     `json:"status"`
	AvailableSlots []TimeSlot `json:"available_slots"`
	Message        string     `json:"message"`
}

// rateEnvelope is the rate endpoint wire shape
type rateEnvelope struct {
	Success bool       `json:"success"`
	Video   *Aggregate `json:"video"`
	Course  *Aggregate `json:"course"`
	Error   string     `json:"error"`
}

// AvailableSlots fetches a counsellor's future unbooked slots
func (c *Client) AvailableSlots(ctx context.Context, counsellorID int) ([]TimeSlot, error) {
	path := fmt.Sprintf("/counsellors/available-slots/%d", counsellorID)

	var env slotsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Status != "success" {
		return nil, &APIError{Message: messageOrFallback(env.Message)}
	}

	return env.AvailableSlots, nil
}

// CreateSessionRequest books a slot with a counsellor
func (c *Client) CreateSessionRequest(ctx context.Context, counsellorID int, payload SessionRequestPayload) error {
	path := fmt.Sprintf("/counsellors/requests/%d", counsellorID)

	var env statusEnvelope
	if err := c.do(ctx, http.MethodPost, path, payload, &env); err != nil {
		return err
	}
	if env.Status != "success" {
		return &APIError{Message: messageOrFallback(env.Message)}
	}

	return nil
}

// RecordProgress records a watch-progress event for a video
func (c *Client) RecordProgress(ctx context.Context, courseID, videoID int, payload ProgressPayload) error {
	path := fmt.Sprintf("/courses/%d/videos/%d/progress", courseID, videoID)

	var env statusEnvelope
	if err := c.do(ctx, http.MethodPost, path, payload, &env); err != nil {
		return err
	}
	if env.Status != "success" || env.Error != "" {
		return &APIError{Message: messageOrFallback(env.Error)}
	}

	return nil
}

// RateVideo submits a rating and returns the server-computed aggregates for
// the video and its parent course
func (c *Client) RateVideo(ctx context.Context, courseID, videoID int, payload RatingPayload) (*RatingAggregates, error) {
	path := fmt.Sprintf("/courses/%d/videos/%d/rate", courseID, videoID)

	var env rateEnvelope
	if err := c.do(ctx, http.MethodPost, path, payload, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Video == nil || env.Course == nil {
		return nil, &APIError{Message: messageOrFallback(env.Error)}
	}

	return &RatingAggregates{Video: *env.Video, Course: *env.Course}, nil
}

// ListResources fetches the resources attached to a course
func (c *Client) ListResources(ctx context.Context, courseID int) ([]Resource, error) {
	path := fmt.Sprintf("/courses/%d/resources", courseID)

	var resources []Resource
	if err := c.do(ctx, http.MethodGet, path, nil, &resources); err != nil {
		return nil, err
	}

	return resources, nil
}

// DownloadResource streams a stored file resource. The caller must close the
// returned reader.
func (c *Client) DownloadResource(ctx context.Context, resourceID int) (io.ReadCloser, error) {
	path := fmt.Sprintf("/resources/%d/download", resourceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		var env map[string]string
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env["error"] != "" {
			return nil, &APIError{Message: env["error"]}
		}
		return nil, &APIError{Message: messageOrFallback("")}
	}

	return resp.Body, nil
}

// do executes one JSON round trip. Business failures inside a 2xx or 4xx/5xx
// JSON body are left to the caller's envelope checks; transport failures and
// auth rejections are mapped here.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthenticated
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// messageOrFallback returns the server-provided message, or the generic
// fallback when the server gave none
func messageOrFallback(message string) string {
	if message != "" {
		return message
	}
	return "Something went wrong. Please try again."
}
