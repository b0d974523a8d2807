// Package gemini implements the semantic.Model capability on top of Gemini
// text embeddings.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/cognicore/trendsift/pkg/trendsift/internalerr"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
)

const (
	// DefaultModel is the embedding model used unless overridden.
	DefaultModel = "text-embedding-004"

	// DefaultTimeout bounds a single embedding call. Model inference is
	// the pipeline's main latency risk, so every call carries a deadline.
	DefaultTimeout = 15 * time.Second
)

// Client calls the Gemini embedding API and caches embeddings per text so
// the O(n²) deduplication loop embeds each digest once.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration

	mu    sync.Mutex
	cache map[string][]float64
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the embedding model name.
func WithModel(name string) Option {
	return func(c *Client) { c.model = name }
}

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a Gemini-backed similarity model.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &Client{
		client:  gc,
		model:   DefaultModel,
		timeout: DefaultTimeout,
		cache:   make(map[string][]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the underlying API client.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Similarity embeds both sequences and returns their cosine similarity.
func (c *Client) Similarity(ctx context.Context, a, b []string) (float64, error) {
	va, err := c.embed(ctx, strings.Join(a, " "))
	if err != nil {
		return 0, err
	}
	vb, err := c.embed(ctx, strings.Join(b, " "))
	if err != nil {
		return 0, err
	}
	return semantic.Cosine(va, vb), nil
}

func (c *Client) embed(ctx context.Context, text string) ([]float64, error) {
	c.mu.Lock()
	cached, ok := c.cache[text]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	em := c.client.EmbeddingModel(c.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("%w: embed %q: %v", internalerr.ErrModelUnavailable, truncate(text, 40), err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("%w: empty embedding response", internalerr.ErrModelUnavailable)
	}

	vec := make([]float64, len(res.Embedding.Values))
	for i, v := range res.Embedding.Values {
		vec[i] = float64(v)
	}

	c.mu.Lock()
	c.cache[text] = vec
	c.mu.Unlock()

	return vec, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
