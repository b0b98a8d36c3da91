package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	authMiddleware "github.com/uniroute/backend/internal/auth/middleware"
	"github.com/uniroute/backend/internal/models"
	"github.com/uniroute/backend/internal/services"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for video progress operations
type ProgressService interface {
	// RecordProgress upserts a watch-progress row for a student and video
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the watching student.
	// "courseID" is the ID of the course the video must belong to.
	// "videoID" is the ID of the video.
	// "watchedSeconds" is the number of seconds watched, clamped to the video
	// duration.
	// "completed" marks the video as watched to the end.
	//
	// Returns an error if any.
	RecordProgress(ctx context.Context, studentID, courseID, videoID, watchedSeconds int, completed bool) error
}

// RatingService is the interface that wraps methods for video rating operations
type RatingService interface {
	// RateVideo upserts a rating and returns the recomputed aggregates for the
	// video and its course
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the rating student.
	// "courseID" is the ID of the course the video must belong to.
	// "videoID" is the ID of the video.
	// "rating" is the star value in half-star steps.
	// "review" is optional free text.
	//
	// Returns the fresh aggregates and an error if any.
	RateVideo(ctx context.Context, studentID, courseID, videoID int, rating float64, review string) (*models.RatingResult, error)
}

// ResourceService is the interface that wraps methods for course resource listing
type ResourceService interface {
	// ListResources retrieves the resources attached to a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the resource list and an error if any.
	ListResources(ctx context.Context, courseID int) ([]models.CourseResource, error)
}

// CourseHandler handles HTTP requests for video progress, ratings, and resources
type CourseHandler struct {
	BaseHandler
	progressService ProgressService
	ratingService   RatingService
	resourceService ResourceService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(
	progressService ProgressService,
	ratingService RatingService,
	resourceService ResourceService,
	logger *zap.Logger,
) *CourseHandler {
	return &CourseHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		progressService: progressService,
		ratingService:   ratingService,
		resourceService: resourceService,
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/courses", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/{courseID}/videos/{videoID}/progress", h.RecordProgress)
		r.Post("/{courseID}/videos/{videoID}/rate", h.RateVideo)
		r.Get("/{courseID}/resources", h.ListResources)
	})
}

// courseVideoParams parses the courseID and videoID path parameters
func courseVideoParams(r *http.Request) (int, int, error) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		return 0, 0, errors.New("invalid course ID")
	}
	videoID, err := strconv.Atoi(chi.URLParam(r, "videoID"))
	if err != nil {
		return 0, 0, errors.New("invalid video ID")
	}
	return courseID, videoID, nil
}

// RecordProgress handles POST /courses/{courseID}/videos/{videoID}/progress
// @Summary Record video watch progress
// @Description Upsert the authenticated student's watch progress for a video
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param videoID path int true "Video ID"
// @Param request body models.RecordProgressPayload true "Progress event"
// @Success 200 {object} models.StatusResponse "Progress recorded"
// @Failure 400 {object} models.StatusResponse "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} models.StatusResponse "Video not found"
// @Failure 500 {object} models.StatusResponse "Internal server error"
// @Router /courses/{courseID}/videos/{videoID}/progress [post]
func (h *CourseHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	// Extract studentID from context
	studentID, ok := authMiddleware.GetStudentID(r.Context())
	if !ok {
		h.Logger.Error("student ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "student ID not found in context")
		return
	}

	courseID, videoID, err := courseVideoParams(r)
	if err != nil {
		h.RespondStatusError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.RecordProgressPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.RespondStatusError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.progressService.RecordProgress(r.Context(), studentID, courseID, videoID, payload.WatchedSeconds, payload.Completed)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWatchedSeconds) {
			h.RespondStatusError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to record progress",
			zap.Int("student_id", studentID),
			zap.Int("video_id", videoID),
			zap.Error(err),
		)
		errStatus := http.StatusInternalServerError
		if err.Error() == "video not found" || err.Error() == "failed to get video: video not found" {
			errStatus = http.StatusNotFound
		}
		h.RespondStatusError(w, errStatus, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.StatusResponse{Status: "success"})
}

// RateVideo handles POST /courses/{courseID}/videos/{videoID}/rate
// @Summary Rate a video
// @Description Upsert the authenticated student's rating for a video and return the recomputed aggregates for the video and its course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param videoID path int true "Video ID"
// @Param request body models.RateVideoPayload true "Rating"
// @Success 200 {object} models.RateVideoResponse "Rating stored with fresh aggregates"
// @Failure 400 {object} models.RateVideoResponse "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} models.RateVideoResponse "Video not found"
// @Failure 409 {object} models.RateVideoResponse "Progress not recorded"
// @Failure 500 {object} models.RateVideoResponse "Internal server error"
// @Router /courses/{courseID}/videos/{videoID}/rate [post]
func (h *CourseHandler) RateVideo(w http.ResponseWriter, r *http.Request) {
	// Extract studentID from context
	studentID, ok := authMiddleware.GetStudentID(r.Context())
	if !ok {
		h.Logger.Error("student ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "student ID not found in context")
		return
	}

	courseID, videoID, err := courseVideoParams(r)
	if err != nil {
		h.RespondJSON(w, http.StatusBadRequest, models.RateVideoResponse{Error: err.Error()})
		return
	}

	var payload models.RateVideoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.RespondJSON(w, http.StatusBadRequest, models.RateVideoResponse{Error: "invalid request body"})
		return
	}

	result, err := h.ratingService.RateVideo(r.Context(), studentID, courseID, videoID, payload.Rating, payload.Review)
	if err != nil {
		errStatus := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			errStatus = http.StatusBadRequest
		case errors.Is(err, services.ErrProgressNotRecorded):
			errStatus = http.StatusConflict
		case err.Error() == "video not found" || err.Error() == "failed to get video: video not found":
			errStatus = http.StatusNotFound
		default:
			h.Logger.Error("failed to rate video",
				zap.Int("student_id", studentID),
				zap.Int("video_id", videoID),
				zap.Error(err),
			)
		}
		h.RespondJSON(w, errStatus, models.RateVideoResponse{Error: err.Error()})
		return
	}

	h.RespondJSON(w, http.StatusOK, models.RateVideoResponse{
		Success: true,
		Video:   &result.Video,
		Course:  &result.Course,
	})
}

// ListResources handles GET /courses/{courseID}/resources
// @Summary List course resources
// @Description Get the external links and downloadable files attached to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {array} models.CourseResource "Resource list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseID}/resources [get]
func (h *CourseHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	resources, err := h.resourceService.ListResources(r.Context(), courseID)
	if err != nil {
		h.Logger.Error("failed to list resources", zap.Int("course_id", courseID), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, resources)
}
