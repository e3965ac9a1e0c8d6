package coach

import (
	"context"
	"errors"
	"time"

	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/provider/gemini"
	"github.com/limbo/lifeos/pkg/logger"
	"go.uber.org/zap"
)

// Fixed texts shown in place of a narrative.
const (
	SimulationMode  = "Simulation Mode: API Key missing. Connect to AI to activate."
	ConnectionError = "Connection Error: The Reality Engine is offline."
	SystemError     = "System Error: Could not retrieve insight."
	NotEnoughData   = "Not enough data points. Log at least 3 days to unlock pattern recognition."
)

const DefaultTimeout = 30 * time.Second

type Backend interface {
	GenerateContent(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// Client turns every backend outcome into displayable text.
type Client struct {
	backend Backend
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(backend Backend, timeout time.Duration, l *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		backend: backend,
		timeout: timeout,
		logger:  logger.OrNop(l),
	}
}

// Generate never fails: errors come back as one of the sentinel texts.
func (c *Client) Generate(ctx context.Context, prompt, systemContext string) string {
	if c.backend == nil {
		metrics.RecordAIRequest("simulation", 0)
		return SimulationMode
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	started := time.Now()
	text, err := c.backend.GenerateContent(ctx, prompt, systemContext)
	elapsed := time.Since(started).Seconds()
	if err == nil {
		metrics.RecordAIRequest("ok", elapsed)
		return text
	}
	switch {
	case errors.Is(err, gemini.ErrMissingAPIKey):
		metrics.RecordAIRequest("simulation", elapsed)
		return SimulationMode
	case errors.Is(err, gemini.ErrMalformedResponse):
		c.logger.Warn("generation returned no text", zap.Error(err))
		metrics.RecordAIRequest("malformed", elapsed)
		return SystemError
	default:
		c.logger.Error("generation request failed", zap.Error(err), zap.Float64("seconds", elapsed))
		metrics.RecordAIRequest("connection", elapsed)
		return ConnectionError
	}
}
