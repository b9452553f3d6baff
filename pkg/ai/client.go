// Package ai wraps a generative-content model behind the five resume
// operations the application needs, and shields callers from transient
// failures: every public operation returns a real result or a documented
// fallback value, never an error.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"

	"resume-builder/internal/model"
)

// Candidate models tried in order when the configured default is not
// available on the account.
var defaultModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
	"gemini-pro",
}

const (
	defaultRetries      = 2
	defaultInitialDelay = 1500 * time.Millisecond
	defaultMaxDelay     = 60 * time.Second
	defaultBreakerWait  = 30 * time.Minute
)

type Client struct {
	llm llms.Model
	log *zap.Logger

	models       []string
	retries      int
	initialDelay time.Duration
	maxDelay     time.Duration
	breaker      *Breaker

	// sleep is replaced in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error

	mu       sync.Mutex
	modelIdx int
}

type Option func(*Client)

// WithDefaultModel moves name to the front of the candidate list.
func WithDefaultModel(name string) Option {
	return func(c *Client) {
		if name == "" {
			return
		}
		models := []string{name}
		for _, m := range c.models {
			if m != name {
				models = append(models, m)
			}
		}
		c.models = models
	}
}

func WithModels(models ...string) Option {
	return func(c *Client) {
		if len(models) > 0 {
			c.models = models
		}
	}
}

func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

func WithBackoff(initial, max time.Duration) Option {
	return func(c *Client) {
		c.initialDelay = initial
		c.maxDelay = max
	}
}

func WithBreaker(b *Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(llm llms.Model, opts ...Option) *Client {
	c := &Client{
		llm:          llm,
		log:          zap.NewNop(),
		models:       defaultModels,
		retries:      defaultRetries,
		initialDelay: defaultInitialDelay,
		maxDelay:     defaultMaxDelay,
	}
	c.sleep = func(ctx context.Context, d time.Duration) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, o := range opts {
		o(c)
	}
	if c.breaker == nil {
		c.breaker = NewBreaker(defaultBreakerWait, nil, nil)
	}
	return c
}

// Breaker exposes the circuit breaker, mainly so callers can surface the
// blocked-until deadline.
func (c *Client) Breaker() *Breaker { return c.breaker }

// generate runs one model call under the cross-cutting policy: model-name
// fallback (no delay, no retry budget), exponential backoff on rate limits,
// immediate failure on daily quota and unreachable network, circuit breaker
// on exhaustion.
func (c *Client) generate(ctx context.Context, parts []llms.ContentPart, jsonMode bool) (string, error) {
	if !c.breaker.Allow() {
		c.log.Warn("ai call short-circuited", zap.Time("blocked_until", c.breaker.BlockedUntil()))
		return "", ErrBlocked
	}

	delay := c.initialDelay
	retries := c.retries

	c.mu.Lock()
	idx := c.modelIdx
	c.mu.Unlock()

	messages := []llms.MessageContent{{Role: schema.ChatMessageTypeHuman, Parts: parts}}

	for idx < len(c.models) {
		name := c.models[idx]
		opts := []llms.CallOption{llms.WithModel(name)}
		if jsonMode {
			opts = append(opts, llms.WithJSONMode())
		}

		resp, err := c.llm.GenerateContent(ctx, messages, opts...)
		if err == nil {
			if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
				return "", errEmptyResponse
			}
			return resp.Choices[0].Content, nil
		}

		switch classify(err) {
		case failModelUnavailable:
			c.log.Warn("model unavailable, trying next candidate", zap.String("model", name), zap.Error(err))
			idx++
			c.setModelIndex(idx)
			continue

		case failQuotaDaily:
			c.log.Error("daily quota exhausted", zap.String("model", name), zap.Error(err))
			c.breaker.Trip()
			return "", err

		case failQuotaRate:
			if retries == 0 {
				c.log.Error("rate limit persists, giving up", zap.String("model", name), zap.Error(err))
				c.breaker.Trip()
				return "", err
			}
			retries--
			wait := delay
			if hint, ok := retryHint(err); ok && hint > wait {
				wait = hint
			}
			c.log.Warn("rate limited, backing off", zap.String("model", name), zap.Duration("wait", wait))
			if serr := c.sleep(ctx, wait); serr != nil {
				return "", serr
			}
			delay *= 2
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
			continue

		case failNetwork:
			// environmental block, retrying cannot help
			c.log.Error("ai service unreachable", zap.Error(err))
			return "", err

		default:
			c.log.Error("ai call failed", zap.String("model", name), zap.Error(err))
			return "", err
		}
	}

	c.log.Error("candidate model list exhausted")
	c.breaker.Trip()
	c.setModelIndex(0)
	return "", errModelsExhausted
}

func (c *Client) setModelIndex(idx int) {
	c.mu.Lock()
	c.modelIdx = idx
	c.mu.Unlock()
}

// ParseResumeFromBinary sends an uploaded file to the model and maps the
// extracted fields onto the document model. On total failure it returns an
// empty structure, so callers never need a failure branch on this path.
func (c *Client) ParseResumeFromBinary(ctx context.Context, data []byte, mimeType string) model.Resume {
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	parts := []llms.ContentPart{
		llms.BinaryPart(mimeType, data),
		llms.TextPart(parsePrompt),
	}
	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return model.Resume{}.Normalize()
	}
	doc, err := decodeResume(text)
	if err != nil {
		c.log.Warn("resume parse fallback", zap.Error(err))
		return model.Resume{}.Normalize()
	}
	return doc
}

// CheckATSScore analyzes the document and returns a report. On total
// failure it returns the fixed mock report (score 0, rating UNAVAILABLE).
func (c *Client) CheckATSScore(ctx context.Context, r model.Resume) *ATSReport {
	role := r.PersonalInfo.JobTitle
	if role == "" {
		role = "General"
	}
	doc, _ := json.Marshal(r)
	parts := []llms.ContentPart{
		llms.TextPart(fmt.Sprintf(scorePrompt, role)),
		llms.TextPart(string(doc)),
	}
	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return fallbackReport()
	}
	rep, err := decodeReport(text)
	if err != nil {
		c.log.Warn("ats report fallback", zap.Error(err))
		return fallbackReport()
	}
	return rep
}

// OptimizeSummary writes a short professional summary. Fallback is the
// empty string; callers skip empty results.
func (c *Client) OptimizeSummary(ctx context.Context, jobTitle string, skills []string) string {
	prompt := fmt.Sprintf("Create a professional 3-sentence summary for a %s role. Mention: %s.",
		jobTitle, strings.Join(skills, ", "))
	text, err := c.generate(ctx, []llms.ContentPart{llms.TextPart(prompt)}, false)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// GenerateCoverLetter writes a cover letter for the given role. Fallback is
// the empty string.
func (c *Client) GenerateCoverLetter(ctx context.Context, r model.Resume, jobTitle, company, jobDescription string) string {
	doc, _ := json.Marshal(r)
	prompt := fmt.Sprintf("Write a cover letter for %s at %s.", jobTitle, company)
	if jobDescription != "" {
		prompt += "\n\nJob description: " + jobDescription
	}
	prompt += "\n\nResume: " + string(doc)
	text, err := c.generate(ctx, []llms.ContentPart{llms.TextPart(prompt)}, false)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// OptimizeResumeForATS rewrites summary, experience descriptions and skills
// for ATS impact. Failure mode is identity: the input comes back unchanged.
func (c *Client) OptimizeResumeForATS(ctx context.Context, r model.Resume) model.Resume {
	doc, _ := json.Marshal(r)
	parts := []llms.ContentPart{
		llms.TextPart(optimizePrompt),
		llms.TextPart(string(doc)),
	}
	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return r
	}
	opt, err := decodeResume(text)
	if err != nil {
		c.log.Warn("optimize fallback, keeping input", zap.Error(err))
		return r
	}
	return model.MergeOptimized(r, opt)
}
