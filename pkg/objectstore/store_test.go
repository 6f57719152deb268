package objectstore_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/pkg/mocks"
	"github.com/tidewatch/backend/pkg/objectstore"
)

func TestObjectStore_Upload(t *testing.T) {
	cfg := objectstore.Config{
		URL:     "https://storage.test",
		Key:     "service-key",
		Bucket:  "photos",
		Timeout: 30 * time.Second,
	}

	data := []byte{0xff, 0xd8, 0xff}

	t.Run("uploads and returns public URL", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		store := objectstore.NewObjectStore(cfg, mockClient)

		response := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"Key":"photos/sightings/x.jpg"}`)),
		}

		mockClient.On("Post", context.Background(),
			mock.MatchedBy(func(url string) bool {
				return strings.HasPrefix(url, "https://storage.test/storage/v1/object/photos/sightings/")
			}),
			mock.Anything,
			mock.MatchedBy(func(headers map[string]string) bool {
				return headers["Authorization"] == "Bearer service-key" &&
					headers["apikey"] == "service-key" &&
					headers["Content-Type"] == "image/jpeg"
			})).Return(response, nil)

		url, err := store.Upload(context.Background(), data, "sightings", "image/jpeg")

		assert.NoError(t, err)
		assert.Contains(t, url, "https://storage.test/storage/v1/object/public/photos/sightings/")
		assert.True(t, strings.HasSuffix(url, ".jpg"))
		mockClient.AssertExpectations(t)
	})

	t.Run("non-2xx status fails the upload", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		store := objectstore.NewObjectStore(cfg, mockClient)

		response := &http.Response{
			StatusCode: 403,
			Body:       io.NopCloser(strings.NewReader("")),
		}

		mockClient.On("Post", context.Background(), mock.Anything, mock.Anything, mock.Anything).
			Return(response, nil)

		_, err := store.Upload(context.Background(), data, "sightings", "image/jpeg")

		assert.ErrorIs(t, err, objectstore.ErrUploadFailed)
	})

	t.Run("timeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		store := objectstore.NewObjectStore(cfg, mockClient)

		mockClient.On("Post", context.Background(), mock.Anything, mock.Anything, mock.Anything).
			Return(&http.Response{}, context.DeadlineExceeded)

		_, err := store.Upload(context.Background(), data, "sightings", "image/jpeg")

		assert.ErrorIs(t, err, objectstore.ErrTimeout)
	})
}

func TestObjectStore_Delete(t *testing.T) {
	cfg := objectstore.Config{
		URL:    "https://storage.test",
		Key:    "service-key",
		Bucket: "photos",
	}

	t.Run("deletes object", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		store := objectstore.NewObjectStore(cfg, mockClient)

		response := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader("")),
		}

		mockClient.On("Delete", context.Background(),
			"https://storage.test/storage/v1/object/photos/sightings/x.jpg",
			mock.Anything).Return(response, nil)

		err := store.Delete(context.Background(), "sightings/x.jpg")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("missing object fails", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		store := objectstore.NewObjectStore(cfg, mockClient)

		response := &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader("")),
		}

		mockClient.On("Delete", context.Background(), mock.Anything, mock.Anything).
			Return(response, nil)

		err := store.Delete(context.Background(), "sightings/missing.jpg")

		assert.ErrorIs(t, err, objectstore.ErrDeleteFailed)
	})
}
