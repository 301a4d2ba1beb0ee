package llmclient

import (
	"context"
	"sync"
)

// FakeClient is a scripted Client for tests: per-phase canned JSON
// responses, with unscripted phases returning ErrNoAnswer so the
// deterministic fallback path is exercised by default.
type FakeClient struct {
	mu        sync.Mutex
	responses map[Phase]string
	errs      map[Phase]error
	calls     []Phase
}

var _ Client = (*FakeClient)(nil)

// NewFakeClient creates an empty FakeClient (every call falls back).
func NewFakeClient() *FakeClient {
	return &FakeClient{
		responses: make(map[Phase]string),
		errs:      make(map[Phase]error),
	}
}

// Respond scripts a raw JSON response (code fences allowed) for phase.
func (f *FakeClient) Respond(phase Phase, rawJSON string) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[phase] = rawJSON
	return f
}

// FailWith scripts an error for phase.
func (f *FakeClient) FailWith(phase Phase, err error) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[phase] = err
	return f
}

// Calls returns the phases called so far, in order.
func (f *FakeClient) Calls() []Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Phase, len(f.calls))
	copy(out, f.calls)
	return out
}

// Call implements Client.
func (f *FakeClient) Call(ctx context.Context, phase Phase, _ string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	f.calls = append(f.calls, phase)
	err, hasErr := f.errs[phase]
	raw, hasResp := f.responses[phase]
	f.mu.Unlock()

	if hasErr {
		return err
	}
	if !hasResp {
		return ErrNoAnswer
	}
	return parseJSON(raw, out)
}
