package provider

import (
	"context"
	"sync"

	"github.com/ZaguanLabs/gotrans"
)

// MockProvider is a mock backend for testing.
type MockProvider struct {
	Engine   string               // Name reported by the mock (default: "mock")
	Result   *gotrans.Translation // Template result; Text and Engine are overwritten
	Err      error                // Returned instead of a result when set
	mu       sync.Mutex
	calls    int
	lastCall *gotrans.Request
}

// NewMockProvider creates a new mock provider with a default result.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Engine: "mock",
		Result: &gotrans.Translation{
			Paraphrase: gotrans.StringPtr("你好"),
			Explains:   []string{"int. 喂；你好"},
		},
	}
}

// Name returns the configured engine name.
func (m *MockProvider) Name() string {
	return m.Engine
}

// Translate returns a copy of Result for text, or Err.
func (m *MockProvider) Translate(_ context.Context, text, sourceLang, targetLang string) (*gotrans.Translation, error) {
	m.mu.Lock()
	m.calls++
	m.lastCall = &gotrans.Request{Engine: m.Engine, Text: text, SourceLang: sourceLang, TargetLang: targetLang}
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	result := gotrans.Translation{Explains: []string{}}
	if m.Result != nil {
		result = *m.Result
		result.Explains = append([]string{}, m.Result.Explains...)
	}
	result.Text = text
	result.Engine = m.Engine
	return &result, nil
}

// CallCount returns the number of Translate calls.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastRequest returns the arguments of the most recent call, or nil.
func (m *MockProvider) LastRequest() *gotrans.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCall
}

// Verify MockProvider implements Backend
var _ Backend = (*MockProvider)(nil)
