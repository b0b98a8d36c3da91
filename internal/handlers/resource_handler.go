package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/uniroute/backend/internal/models"
	"go.uber.org/zap"
)

// ResourceDownloadService is the interface that wraps methods for resource file streaming
type ResourceDownloadService interface {
	// OpenFile opens a downloadable file resource for streaming
	//
	// "ctx" is the context for the request.
	// "resourceID" is the ID of the resource.
	//
	// Returns the resource metadata, a reader over the file contents, and an
	// error if any. The caller must close the reader.
	OpenFile(ctx context.Context, resourceID int) (*models.CourseResource, io.ReadCloser, error)
}

// ResourceHandler handles HTTP requests for resource file downloads
type ResourceHandler struct {
	BaseHandler
	resourceService ResourceDownloadService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService ResourceDownloadService, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		resourceService: resourceService,
	}
}

// RegisterRoutes registers all resource handler routes
func (h *ResourceHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/resources", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/{resourceID}/download", h.DownloadResource)
	})
}

// DownloadResource handles GET /resources/{resourceID}/download
// @Summary Download a resource file
// @Description Stream a stored file resource as an attachment
// @Tags resources
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param resourceID path int true "Resource ID"
// @Success 200 {file} binary "File contents"
// @Failure 400 {object} map[string]string "Resource is not downloadable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{resourceID}/download [get]
func (h *ResourceHandler) DownloadResource(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.Atoi(chi.URLParam(r, "resourceID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid resource ID")
		return
	}

	resource, reader, err := h.resourceService.OpenFile(r.Context(), resourceID)
	if err != nil {
		h.Logger.Error("failed to open resource", zap.Int("resource_id", resourceID), zap.Error(err))
		errStatus := http.StatusInternalServerError
		switch {
		case err.Error() == "resource not found" || err.Error() == "failed to get resource: resource not found":
			errStatus = http.StatusNotFound
		case err.Error() == "resource is not downloadable":
			errStatus = http.StatusBadRequest
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}
	defer reader.Close()

	contentType := resource.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resource.Title))

	if _, err := io.Copy(w, reader); err != nil {
		h.Logger.Error("failed to stream resource", zap.Int("resource_id", resourceID), zap.Error(err))
	}
}
