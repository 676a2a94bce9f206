package mcp

import (
	"context"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// mockConverter is a mock implementation of driving.Converter.
type mockConverter struct {
	result   *domain.OneShotResult
	detected domain.DetectedEncoding
	err      error

	gotText string
	gotMode domain.EncodingMode
}

func (m *mockConverter) Convert(
	_ context.Context,
	text string,
	mode domain.EncodingMode,
) (*domain.OneShotResult, error) {
	m.gotText = text
	m.gotMode = mode
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockConverter) Detect(_ context.Context, text string) (domain.DetectedEncoding, error) {
	m.gotText = text
	return m.detected, m.err
}

// mockRuleSource is a mock implementation of RuleSource.
type mockRuleSource struct {
	tables map[domain.RuleName]string
	err    error
}

func (m *mockRuleSource) Load(rule domain.RuleName) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []byte(m.tables[rule]), nil
}

// mockEventHistory returns the newest of a fixed event list.
type mockEventHistory struct {
	events []domain.AnalyticsEvent
}

func (m *mockEventHistory) Last(n int) []domain.AnalyticsEvent {
	if n > len(m.events) {
		n = len(m.events)
	}
	return m.events[len(m.events)-n:]
}

// Ensure mocks implement interfaces.
var (
	_ driving.Converter   = (*mockConverter)(nil)
	_ RuleSource          = (*mockRuleSource)(nil)
	_ driven.EventHistory = (*mockEventHistory)(nil)
)
