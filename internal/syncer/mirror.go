package syncer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/config"
)

//go:generate mockgen -source=mirror.go -destination=../mocks/mirror.go -package=mocks -mock_names=MirrorClient=MockMirrorClient

// MirrorClient talks to the off-chain enrollment mirror
type MirrorClient interface {
	// EnrollmentCount returns the mirror's enrollment count for a course
	EnrollmentCount(ctx context.Context, courseSlug string) (int64, error)

	// PushEnrollment asks the mirror to record an enrollment for the
	// address. The mirror treats repeated pushes for the same pair as
	// no-ops.
	PushEnrollment(ctx context.Context, courseSlug, address string) error
}

type mirrorClient struct {
	http    adapter.HTTPClient
	baseURL string
}

// NewMirrorClient creates a client for the configured mirror endpoint
func NewMirrorClient(cfg config.SyncConfig, httpClient adapter.HTTPClient) MirrorClient {
	return &mirrorClient{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.MirrorBaseURL, "/"),
	}
}

type countResponse struct {
	Count int64 `json:"count"`
}

func (c *mirrorClient) EnrollmentCount(ctx context.Context, courseSlug string) (int64, error) {
	endpoint := fmt.Sprintf("%s/api/courses/%s/enrollment-count", c.baseURL, url.PathEscape(courseSlug))

	var resp countResponse
	if err := c.http.GetJSON(ctx, endpoint, &resp); err != nil {
		return 0, fmt.Errorf("failed to read enrollment count for %s: %w", courseSlug, err)
	}
	return resp.Count, nil
}

type pushRequest struct {
	Address string `json:"address"`
}

func (c *mirrorClient) PushEnrollment(ctx context.Context, courseSlug, address string) error {
	endpoint := fmt.Sprintf("%s/api/courses/%s/sync-enrollment", c.baseURL, url.PathEscape(courseSlug))

	if _, err := c.http.PostJSON(ctx, endpoint, pushRequest{Address: address}); err != nil {
		return fmt.Errorf("failed to push enrollment for %s: %w", courseSlug, err)
	}
	return nil
}
