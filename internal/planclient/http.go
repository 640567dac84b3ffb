package planclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

const (
	generatePath  = "/learn/generate"
	adaptPath     = "/learn/adapt"
	resourcesPath = "/learn/resources"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 4 << 20
)

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPClient talks to the plan generator over JSON/HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the generator at cfg.BaseURL.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("plan generator base URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Generate(ctx context.Context, req learnpath.GenerateRequest) (*learnpath.Plan, error) {
	raw, status, err := c.post(ctx, OpGenerate, generatePath, req)
	if err != nil {
		return nil, err
	}
	return decodePlan(OpGenerate, status, raw)
}

func (c *HTTPClient) Adapt(ctx context.Context, req learnpath.AdaptRequest) (*learnpath.Plan, error) {
	raw, status, err := c.post(ctx, OpAdapt, adaptPath, req)
	if err != nil {
		return nil, err
	}
	return decodePlan(OpAdapt, status, raw)
}

func (c *HTTPClient) Resources(ctx context.Context, req learnpath.ResourceRequest) ([]learnpath.Resource, error) {
	raw, status, err := c.post(ctx, OpResources, resourcesPath, req)
	if err != nil {
		return nil, err
	}
	res, err := learnpath.DecodeResources(raw)
	if err != nil {
		return nil, &learnpath.PlanGenerationError{Op: OpResources, Status: status, Err: err}
	}
	return res, nil
}

func decodePlan(op string, status int, raw []byte) (*learnpath.Plan, error) {
	plan, err := learnpath.DecodePlan(raw)
	if err != nil {
		return nil, &learnpath.PlanGenerationError{Op: op, Status: status, Err: err}
	}
	return plan, nil
}

// post sends body as JSON and returns the raw response of a 2xx reply.
// Anything else is mapped to a *learnpath.PlanGenerationError.
func (c *HTTPClient) post(ctx context.Context, op, path string, body any) ([]byte, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, &learnpath.PlanGenerationError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, &learnpath.PlanGenerationError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &learnpath.PlanGenerationError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, &learnpath.PlanGenerationError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("read response: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, &learnpath.PlanGenerationError{
			Op:     op,
			Status: resp.StatusCode,
			Detail: errorDetail(raw),
		}
	}
	return raw, resp.StatusCode, nil
}

// errorDetail extracts the {detail} field of an error body. Non-string
// details (validation error lists) are returned as compact JSON.
func errorDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 || string(body.Detail) == "null" {
		return learnpath.UnknownErrorDetail
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		if s == "" {
			return learnpath.UnknownErrorDetail
		}
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body.Detail); err != nil {
		return string(body.Detail)
	}
	return buf.String()
}
