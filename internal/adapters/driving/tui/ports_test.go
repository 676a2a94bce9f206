package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// MockConverterService implements driving.ConverterService for testing.
type MockConverterService struct {
	mu      sync.Mutex
	texts   []string
	modes   []domain.EncodingMode
	updates chan domain.Snapshot
}

func NewMockConverterService() *MockConverterService {
	return &MockConverterService{updates: make(chan domain.Snapshot, 1)}
}

func (m *MockConverterService) Submit(req domain.ConversionRequest) error {
	return m.SetText(req.RawText, req.Provenance)
}

func (m *MockConverterService) SetText(text string, _ domain.Provenance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, text)
	return nil
}

func (m *MockConverterService) SetEncoding(mode domain.EncodingMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes = append(m.modes, mode)
	return nil
}

func (m *MockConverterService) Snapshot() domain.Snapshot       { return domain.Snapshot{} }
func (m *MockConverterService) Updates() <-chan domain.Snapshot { return m.updates }
func (m *MockConverterService) Close() error                    { return nil }

func (m *MockConverterService) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}

// MockShellService implements driving.ShellService for testing.
type MockShellService struct {
	ReadyFunc       func(ctx context.Context) error
	BackFunc        func(ctx context.Context) error
	ToggleMenuFunc  func(ctx context.Context) error
	CloseMenuFunc   func(ctx context.Context) error
	ShowAboutFunc   func(ctx context.Context) error
	ShowSupportFunc func(ctx context.Context) error
	ShareFunc       func(ctx context.Context) error
	RateFunc        func(ctx context.Context) error

	ThemeValue domain.Theme
	MinRows    int
}

func (m *MockShellService) Ready(ctx context.Context) error {
	if m.ReadyFunc != nil {
		return m.ReadyFunc(ctx)
	}
	return nil
}

func (m *MockShellService) Theme() domain.Theme {
	if m.ThemeValue == "" {
		return domain.ThemeLight
	}
	return m.ThemeValue
}

func (m *MockShellService) AppConfig() domain.AppConfig {
	return domain.DefaultAppConfig()
}

func (m *MockShellService) TextAreaMinRows() int {
	if m.MinRows == 0 {
		return domain.TextAreaMinRows(0)
	}
	return m.MinRows
}

func (m *MockShellService) Back(ctx context.Context) error {
	if m.BackFunc != nil {
		return m.BackFunc(ctx)
	}
	return nil
}

func (m *MockShellService) ToggleMenu(ctx context.Context) error {
	if m.ToggleMenuFunc != nil {
		return m.ToggleMenuFunc(ctx)
	}
	return nil
}

func (m *MockShellService) CloseMenu(ctx context.Context) error {
	if m.CloseMenuFunc != nil {
		return m.CloseMenuFunc(ctx)
	}
	return nil
}

func (m *MockShellService) ShowAbout(ctx context.Context) error {
	if m.ShowAboutFunc != nil {
		return m.ShowAboutFunc(ctx)
	}
	return nil
}

func (m *MockShellService) ShowSupport(ctx context.Context) error {
	if m.ShowSupportFunc != nil {
		return m.ShowSupportFunc(ctx)
	}
	return nil
}

func (m *MockShellService) Share(ctx context.Context) error {
	if m.ShareFunc != nil {
		return m.ShareFunc(ctx)
	}
	return nil
}

func (m *MockShellService) PromptForRating(ctx context.Context) error {
	if m.RateFunc != nil {
		return m.RateFunc(ctx)
	}
	return nil
}

func (m *MockShellService) HandleIntent(context.Context, *domain.Intent) error    { return nil }
func (m *MockShellService) HandleDeepLink(context.Context, domain.DeepLink) error { return nil }

// Verify interface compliance.
var (
	_ driving.ConverterService = (*MockConverterService)(nil)
	_ driving.ShellService     = (*MockShellService)(nil)
)

func TestNewPorts(t *testing.T) {
	conv := NewMockConverterService()
	shell := &MockShellService{}
	bridge := NewBridge()

	ports := NewPorts(conv, shell, bridge)

	require.NotNil(t, ports)
	assert.Equal(t, conv, ports.Converter)
	assert.Equal(t, shell, ports.Shell)
	assert.Same(t, bridge, ports.Bridge)
	assert.Nil(t, ports.Lifecycle)
	assert.Nil(t, ports.Copy)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"all set", NewPorts(NewMockConverterService(), &MockShellService{}, NewBridge()), nil},
		{"nil ports", nil, ErrInvalidPorts},
		{"missing converter", NewPorts(nil, &MockShellService{}, NewBridge()), ErrMissingConverterService},
		{"missing shell", NewPorts(NewMockConverterService(), nil, NewBridge()), ErrMissingShellService},
		{"missing bridge", NewPorts(NewMockConverterService(), &MockShellService{}, nil), ErrMissingBridge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
