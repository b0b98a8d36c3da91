package services

import (
	"context"
	"fmt"
	"io"

	"github.com/uniroute/backend/internal/models"
)

// ResourceRepository defines methods for course resource data access
type ResourceRepository interface {
	// ListByCourse retrieves all resources attached to a course
	ListByCourse(ctx context.Context, courseID int) ([]models.CourseResource, error)
	// GetByID retrieves a single resource by ID
	GetByID(ctx context.Context, id int) (*models.CourseResource, error)
}

// FileStorage defines the file access the resource service needs
type FileStorage interface {
	// Open opens a stored resource file for reading
	Open(fileID string) (io.ReadCloser, error)
}

type resourceService struct {
	resourceRepo ResourceRepository
	storage      FileStorage
}

// NewResourceService creates a new course resource service
func NewResourceService(resourceRepo ResourceRepository, storage FileStorage) *resourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		storage:      storage,
	}
}

// ListResources retrieves all resources attached to a course
func (s *resourceService) ListResources(ctx context.Context, courseID int) ([]models.CourseResource, error) {
	resources, err := s.resourceRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	return resources, nil
}

// OpenFile opens the stored file behind a downloadable resource.
// Link-kind resources have no file and are rejected.
func (s *resourceService) OpenFile(ctx context.Context, resourceID int) (*models.CourseResource, io.ReadCloser, error) {
	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get resource: %w", err)
	}

	if res.Kind != models.ResourceKindFile {
		return nil, nil, fmt.Errorf("resource is not downloadable")
	}

	reader, err := s.storage.Open(res.FileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open resource file: %w", err)
	}

	return res, reader, nil
}
