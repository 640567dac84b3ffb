package planclient

import (
	"context"
	"sync"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Plan      *learnpath.Plan
	Resources []learnpath.Resource
	Err       error
}

// MockClient is a deterministic Client for testing. It returns canned
// responses in FIFO order, shared across operations, and records requests.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse

	// Gate, when non-nil, blocks every call until a value is received or
	// the context is done. Tests use it to hold a call in flight.
	Gate chan struct{}

	GenerateCalls []learnpath.GenerateRequest
	AdaptCalls    []learnpath.AdaptRequest
	ResourceCalls []learnpath.ResourceRequest
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockClient) Generate(ctx context.Context, req learnpath.GenerateRequest) (*learnpath.Plan, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, req)
	m.mu.Unlock()

	resp, err := m.next(ctx, OpGenerate)
	if err != nil {
		return nil, err
	}
	return resp.Plan, nil
}

func (m *MockClient) Adapt(ctx context.Context, req learnpath.AdaptRequest) (*learnpath.Plan, error) {
	m.mu.Lock()
	m.AdaptCalls = append(m.AdaptCalls, req)
	m.mu.Unlock()

	resp, err := m.next(ctx, OpAdapt)
	if err != nil {
		return nil, err
	}
	return resp.Plan, nil
}

func (m *MockClient) Resources(ctx context.Context, req learnpath.ResourceRequest) ([]learnpath.Resource, error) {
	m.mu.Lock()
	m.ResourceCalls = append(m.ResourceCalls, req)
	m.mu.Unlock()

	resp, err := m.next(ctx, OpResources)
	if err != nil {
		return nil, err
	}
	return resp.Resources, nil
}

// CallCount returns the total number of calls across operations.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GenerateCalls) + len(m.AdaptCalls) + len(m.ResourceCalls)
}

func (m *MockClient) next(ctx context.Context, op string) (MockResponse, error) {
	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return MockResponse{}, &learnpath.PlanGenerationError{Op: op, Err: ctx.Err()}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.responses) == 0 {
		return MockResponse{}, &learnpath.PlanGenerationError{Op: op, Detail: "no canned response"}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return MockResponse{}, resp.Err
	}
	return resp, nil
}
