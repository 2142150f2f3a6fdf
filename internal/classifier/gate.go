package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

// topLabels is how many of the classifier's best predictions the gate checks.
const topLabels = 3

type (
	// LabelClassifier returns predicted labels for an image, best first.
	LabelClassifier interface {
		Classify(ctx context.Context, image []byte) ([]Prediction, error)
	}
	// GateMetrics records label gate rejections.
	GateMetrics interface {
		ObserveMismatch()
	}
)

// Gate accepts or rejects a claimed item type against classifier output.
// Matching is a deliberately lenient case-insensitive substring check in both
// directions, to tolerate vocabulary differences between the model's labels
// and user-entered item types.
type Gate struct {
	classifier LabelClassifier
	metrics    GateMetrics
	logger     *zap.Logger
}

// NewGate builds a Gate.
func NewGate(classifier LabelClassifier, metrics GateMetrics, logger *zap.Logger) *Gate {
	return &Gate{
		classifier: classifier,
		metrics:    metrics,
		logger:     logger.Named("classificationGate"),
	}
}

// Accepts runs the classifier and returns nil when one of the top predicted
// labels matches the claimed type. A mismatch is model.ErrClassificationMismatch;
// classifier failures pass through unchanged.
func (g *Gate) Accepts(ctx context.Context, image []byte, claimedType string) error {
	preds, err := g.classifier.Classify(ctx, image)
	if err != nil {
		return err
	}

	claimed := strings.ToLower(strings.TrimSpace(claimedType))
	limit := len(preds)
	if limit > topLabels {
		limit = topLabels
	}
	for _, pred := range preds[:limit] {
		label := strings.ToLower(pred.Label)
		if label == "" || claimed == "" {
			continue
		}
		if strings.Contains(label, claimed) || strings.Contains(claimed, label) {
			g.logger.Debug("label matched",
				zap.String("claimed", claimedType),
				zap.String("label", pred.Label),
				zap.Float64("score", pred.Score),
			)
			return nil
		}
	}

	g.metrics.ObserveMismatch()
	return fmt.Errorf("%w (claimed %q)", model.ErrClassificationMismatch, claimedType)
}
