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
	"github.com/uniroute/backend/internal/repositories"
	"github.com/uniroute/backend/internal/services"
	"go.uber.org/zap"
)

// SlotService is the interface that wraps methods for counsellor slot operations
type SlotService interface {
	// GetAvailableSlots retrieves a counsellor's future unbooked slots ordered
	// by datetime
	//
	// "ctx" is the context for the request.
	// "counsellorID" is the ID of the counsellor.
	//
	// Returns the slot list and an error if any.
	GetAvailableSlots(ctx context.Context, counsellorID int) ([]models.TimeSlotResponse, error)
}

// BookingService is the interface that wraps methods for session booking operations
type BookingService interface {
	// CreateSessionRequest validates the payload, claims the chosen slot and
	// creates a pending session request
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the booking student.
	// "counsellorID" is the ID of the counsellor.
	// "payload" contains topic, scheduled_at, session_type and description.
	//
	// Returns a validation sentinel, repositories.ErrSlotUnavailable when the
	// slot is already booked, or another error if any.
	CreateSessionRequest(ctx context.Context, studentID, counsellorID int, payload *models.CreateSessionRequestPayload) error
}

// CounsellorHandler handles HTTP requests for counsellor slot and booking operations
type CounsellorHandler struct {
	BaseHandler
	slotService    SlotService
	bookingService BookingService
}

// NewCounsellorHandler creates a new counsellor handler
func NewCounsellorHandler(slotService SlotService, bookingService BookingService, logger *zap.Logger) *CounsellorHandler {
	return &CounsellorHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		slotService:    slotService,
		bookingService: bookingService,
	}
}

// RegisterRoutes registers all counsellor handler routes
func (h *CounsellorHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/counsellors", func(r chi.Router) {
		r.Get("/available-slots/{counsellorID}", h.GetAvailableSlots)
		r.With(authMiddleware).Post("/requests/{counsellorID}", h.CreateSessionRequest)
	})
}

// GetAvailableSlots handles GET /counsellors/available-slots/{counsellorID}
// @Summary Get a counsellor's available slots
// @Description Get the flat list of future unbooked slots for a counsellor, ordered by datetime
// @Tags counsellors
// @Accept json
// @Produce json
// @Param counsellorID path int true "Counsellor ID"
// @Success 200 {object} models.AvailableSlotsResponse "Available slots"
// @Failure 400 {object} models.StatusResponse "Bad request"
// @Failure 404 {object} models.StatusResponse "Counsellor not found"
// @Failure 500 {object} models.StatusResponse "Internal server error"
// @Router /counsellors/available-slots/{counsellorID} [get]
func (h *CounsellorHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	counsellorID, err := strconv.Atoi(chi.URLParam(r, "counsellorID"))
	if err != nil {
		h.RespondStatusMessage(w, http.StatusBadRequest, "error", "invalid counsellor ID")
		return
	}

	slots, err := h.slotService.GetAvailableSlots(r.Context(), counsellorID)
	if err != nil {
		h.Logger.Error("failed to get available slots", zap.Int("counsellor_id", counsellorID), zap.Error(err))
		errStatus := http.StatusInternalServerError
		if err.Error() == "counsellor not found" {
			errStatus = http.StatusNotFound
		}
		h.RespondStatusMessage(w, errStatus, "error", err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.AvailableSlotsResponse{
		Status:         "success",
		AvailableSlots: slots,
	})
}

// CreateSessionRequest handles POST /counsellors/requests/{counsellorID}
// @Summary Book a counselling session
// @Description Claim an available slot and create a pending session request for the authenticated student
// @Tags counsellors
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param counsellorID path int true "Counsellor ID"
// @Param request body models.CreateSessionRequestPayload true "Session request"
// @Success 201 {object} models.StatusResponse "Session request created"
// @Failure 400 {object} models.StatusResponse "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} models.StatusResponse "Slot no longer available"
// @Failure 500 {object} models.StatusResponse "Internal server error"
// @Router /counsellors/requests/{counsellorID} [post]
func (h *CounsellorHandler) CreateSessionRequest(w http.ResponseWriter, r *http.Request) {
	// Extract studentID from context
	studentID, ok := authMiddleware.GetStudentID(r.Context())
	if !ok {
		h.Logger.Error("student ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "student ID not found in context")
		return
	}

	counsellorID, err := strconv.Atoi(chi.URLParam(r, "counsellorID"))
	if err != nil {
		h.RespondStatusMessage(w, http.StatusBadRequest, "error", "invalid counsellor ID")
		return
	}

	var payload models.CreateSessionRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.RespondStatusMessage(w, http.StatusBadRequest, "error", "invalid request body")
		return
	}

	err = h.bookingService.CreateSessionRequest(r.Context(), studentID, counsellorID, &payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTopicRequired),
			errors.Is(err, services.ErrDescriptionRequired),
			errors.Is(err, services.ErrInvalidScheduledAt):
			h.RespondStatusMessage(w, http.StatusBadRequest, "error", err.Error())
		case errors.Is(err, repositories.ErrSlotUnavailable),
			errors.Is(err, services.ErrBookingInFlight):
			h.RespondStatusMessage(w, http.StatusConflict, "error", err.Error())
		default:
			h.Logger.Error("failed to create session request",
				zap.Int("student_id", studentID),
				zap.Int("counsellor_id", counsellorID),
				zap.Error(err),
			)
			h.RespondStatusMessage(w, http.StatusInternalServerError, "error", "failed to create session request")
		}
		return
	}

	h.RespondStatusMessage(w, http.StatusCreated, "success", "session request created")
}
