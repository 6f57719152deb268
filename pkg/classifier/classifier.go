// Package classifier calls an external image-classification endpoint
// (HuggingFace inference style: raw image body in, ranked labels out).
// The model's labels are generic; mapping them onto the creature catalog
// happens in the service layer.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidewatch/backend/pkg/httpclient"
)

type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Classifier interface {
	Classify(ctx context.Context, imageBytes []byte) ([]LabelScore, error)
}

type imageClassifier struct {
	client httpclient.HTTPClient
	config Config
}

func NewClassifier(cfg Config, client httpclient.HTTPClient) Classifier {
	return &imageClassifier{config: cfg, client: client}
}

func (c *imageClassifier) Classify(ctx context.Context, imageBytes []byte) ([]LabelScore, error) {
	if !c.config.Enable || c.config.URL == "" {
		return nil, ErrDisabled
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.config.Token,
		"Content-Type":  "application/octet-stream",
	}

	resp, err := c.client.Post(ctx, c.config.URL, bytes.NewReader(imageBytes), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}

		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, MapStatusToError(resp.StatusCode)
	}

	var labels []LabelScore
	if err := json.NewDecoder(resp.Body).Decode(&labels); err != nil {
		return nil, fmt.Errorf("decoding error: %w", err)
	}

	return labels, nil
}
