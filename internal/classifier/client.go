// Package classifier calls the external image classification service and
// gates verification on its predictions.
package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

// DefaultModelURL is the hosted inference endpoint for the image model.
const DefaultModelURL = "https://api-inference.huggingface.co/models/google/vit-base-patch16-224"

type (
	// ClientMetrics records metrics for classification requests.
	ClientMetrics interface {
		Observe(err error, started time.Time)
	}
)

// Prediction is a single labeled score returned by the classifier, ordered
// by descending confidence.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client calls the hosted inference API. The credential is checked per call,
// not at construction: a missing key must fail the verification attempt with
// a configuration error before any ledger write.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	metrics    ClientMetrics
	logger     *zap.Logger
}

// NewClient constructs a classifier client.
func NewClient(url, apiKey string, timeout time.Duration, metrics ClientMetrics, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultModelURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		apiKey:     apiKey,
		metrics:    metrics,
		logger:     logger.Named("classifier"),
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceError struct {
	Error string `json:"error"`
}

// Classify sends the image and returns the predicted labels, best first.
func (c *Client) Classify(ctx context.Context, image []byte) (preds []Prediction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(err, started)
	}()

	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: classifier API key is not set", model.ErrConfig)
	}

	body, err := json.Marshal(inferenceRequest{Inputs: base64.StdEncoding.EncodeToString(image)})
	if err != nil {
		return nil, fmt.Errorf("encode classification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build classification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrClassifierUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", model.ErrClassifierUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr inferenceError
		if jsonErr := json.Unmarshal(payload, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%w: %s", model.ErrClassifierUnavailable, apiErr.Error)
		}
		return nil, fmt.Errorf("%w: status %d", model.ErrClassifierUnavailable, resp.StatusCode)
	}

	preds, err = decodePredictions(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrClassifierUnavailable, err)
	}
	c.logger.Debug("classification complete", zap.Int("predictions", len(preds)))
	return preds, nil
}

// decodePredictions accepts either a prediction array or a single prediction
// object; anything else is an unknown response shape.
func decodePredictions(payload []byte) ([]Prediction, error) {
	var list []Prediction
	if err := json.Unmarshal(payload, &list); err == nil {
		return list, nil
	}
	var single Prediction
	if err := json.Unmarshal(payload, &single); err == nil && single.Label != "" {
		return []Prediction{single}, nil
	}
	return nil, fmt.Errorf("unexpected response shape")
}
