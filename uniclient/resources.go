package uniclient

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ResourceAPI is the slice of the API client the resource browser needs
type ResourceAPI interface {
	// ListResources fetches the resources attached to a course
	ListResources(ctx context.Context, courseID int) ([]Resource, error)
	// DownloadResource streams a stored file resource
	DownloadResource(ctx context.Context, resourceID int) (io.ReadCloser, error)
}

// ResourceOpener performs the one-shot side effects of opening a resource:
// launching an external link or saving a downloaded file
type ResourceOpener interface {
	// OpenURL opens an external link in a new browsing context
	OpenURL(url string) error
	// SaveFile persists a downloaded file under the given name
	SaveFile(name string, r io.Reader) error
}

// ResourceBrowser lists a course's resources and opens them: links are handed
// to the opener directly, files are streamed down and saved. Opening is a
// one-shot side effect with no tracked state.
type ResourceBrowser struct {
	client   ResourceAPI
	opener   ResourceOpener
	notifier Notifier
	logger   *zap.Logger
}

// NewResourceBrowser creates a resource browser
func NewResourceBrowser(client ResourceAPI, opener ResourceOpener, notifier Notifier, logger *zap.Logger) *ResourceBrowser {
	return &ResourceBrowser{
		client:   client,
		opener:   opener,
		notifier: notifier,
		logger:   logger,
	}
}

// Load fetches the resource list for a course
func (b *ResourceBrowser) Load(ctx context.Context, courseID int) ([]Resource, error) {
	resources, err := b.client.ListResources(ctx, courseID)
	if err != nil {
		b.logger.Error("failed to load resources", zap.Int("course_id", courseID), zap.Error(err))
		b.notifier.Notify(Notification{Level: LevelError, Message: "Failed to load course resources"})
		return nil, err
	}
	return resources, nil
}

// Open opens one resource: external links go to the opener, stored files are
// downloaded and saved under the resource title
func (b *ResourceBrowser) Open(ctx context.Context, resource Resource) error {
	switch resource.Kind {
	case ResourceKindLink:
		if err := b.opener.OpenURL(resource.URL); err != nil {
			b.logger.Error("failed to open resource link", zap.Int("resource_id", resource.ID), zap.Error(err))
			b.notifier.Notify(Notification{Level: LevelError, Message: "Failed to open the resource"})
			return err
		}
		return nil

	case ResourceKindFile:
		body, err := b.client.DownloadResource(ctx, resource.ID)
		if err != nil {
			b.logger.Error("failed to download resource", zap.Int("resource_id", resource.ID), zap.Error(err))
			b.notifier.Notify(Notification{Level: LevelError, Message: "Failed to download the resource"})
			return err
		}
		defer body.Close()

		if err := b.opener.SaveFile(resource.Title, body); err != nil {
			b.logger.Error("failed to save resource", zap.Int("resource_id", resource.ID), zap.Error(err))
			b.notifier.Notify(Notification{Level: LevelError, Message: "Failed to save the resource"})
			return err
		}
		return nil

	default:
		return fmt.Errorf("unknown resource kind %q", resource.Kind)
	}
}
