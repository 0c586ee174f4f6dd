// Package nlp is the HTTP client for the external text-analysis collaborator.
// The service owns none of the model logic, only the calling contract: text in,
// annotation out, bounded wait, graceful failure.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.NLP.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.NLP.Timeout},
		logger:  logger,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Predictions       []float64  `json:"predictions"`
	Probabilities     []float64  `json:"probabilities"`
	IsDisasterRelated []bool     `json:"is_disaster_related"`
	Keywords          [][]string `json:"keywords"`
}

// Analyze posts the text to the collaborator's /analyze endpoint and maps the
// first result onto a domain annotation. Any transport or decode failure comes
// back as ErrDependency.
func (c *Client) Analyze(ctx context.Context, text string) (*domain.Annotation, error) {
	const op = "nlp.Client.Analyze"

	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("nlp call failed", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrDependency)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("nlp call returned non-200", slog.String("op", op), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrDependency)
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrDependency)
	}
	if len(out.Probabilities) == 0 || len(out.IsDisasterRelated) == 0 {
		return nil, fmt.Errorf("%s: empty result: %w", op, e.ErrDependency)
	}

	ann := &domain.Annotation{
		IsDisasterRelated: out.IsDisasterRelated[0],
		Confidence:        out.Probabilities[0],
		Sentiment:         sentimentFor(out.IsDisasterRelated[0]),
		Urgency:           urgencyFor(out.Probabilities[0]),
	}
	if len(out.Keywords) > 0 {
		ann.Keywords = out.Keywords[0]
	}
	if ann.Keywords == nil {
		ann.Keywords = []string{}
	}

	return ann, nil
}

// Disaster-related text reads as negative sentiment; everything else neutral.
func sentimentFor(disaster bool) string {
	if disaster {
		return "negative"
	}
	return "neutral"
}

func urgencyFor(confidence float64) string {
	if confidence > 0.7 {
		return "high"
	}
	return "medium"
}
