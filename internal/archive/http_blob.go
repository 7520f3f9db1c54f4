package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPBlobStore uploads blobs to an HTTP blob service (Vercel-Blob-shaped
// API: PUT to the pathname with a bearer token, JSON response with the
// public URL).
type HTTPBlobStore struct {
	client *resty.Client
}

// NewHTTPBlobStore builds a blob client for the given service base URL and
// access token.
func NewHTTPBlobStore(baseURL, token string) *HTTPBlobStore {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", token)).
		SetTimeout(15 * time.Second)

	return &HTTPBlobStore{client: client}
}

type putResponse struct {
	URL string `json:"url"`
}

func (s *HTTPBlobStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	var result putResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetResult(&result).
		Put("/" + name)
	if err != nil {
		return "", fmt.Errorf("blob upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("blob upload failed: %s: %s", resp.Status(), resp.String())
	}
	if result.URL == "" {
		return "", fmt.Errorf("blob service returned no URL for %s", name)
	}
	return result.URL, nil
}
