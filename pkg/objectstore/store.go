// Package objectstore talks to a Supabase-style storage REST API. Uploaded
// photos are public; the returned URL is what gets persisted on submission
// rows.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/backend/pkg/httpclient"
)

type Config struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Bucket  string        `mapstructure:"bucket"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ObjectStore interface {
	Upload(ctx context.Context, data []byte, folder string, contentType string) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

type objectStore struct {
	client httpclient.HTTPClient
	config Config
}

func NewObjectStore(cfg Config, client httpclient.HTTPClient) ObjectStore {
	return &objectStore{config: cfg, client: client}
}

func (s *objectStore) Upload(ctx context.Context, data []byte, folder string, contentType string) (string, error) {
	name := fmt.Sprintf("%s/%s_%s.jpg",
		folder,
		time.Now().UTC().Format("20060102_150405"),
		uuid.NewString()[:8])

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.config.URL, s.config.Bucket, name)

	headers := s.headers()
	headers["Content-Type"] = contentType

	resp, err := s.client.Post(ctx, url, bytes.NewReader(data), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 && resp.StatusCode != 201 {
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.config.URL, s.config.Bucket, name)

	return publicURL, nil
}

func (s *objectStore) Delete(ctx context.Context, objectPath string) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.config.URL, s.config.Bucket, objectPath)

	resp, err := s.client.Delete(ctx, url, s.headers())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("%w: status %d", ErrDeleteFailed, resp.StatusCode)
	}

	return nil
}

func (s *objectStore) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + s.config.Key,
		"apikey":        s.config.Key,
	}
}
