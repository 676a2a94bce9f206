package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Text string `json:"text" jsonschema:"the Myanmar text to convert"`
	From string `json:"from,omitempty" jsonschema:"source encoding: auto (default), zg or uni"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Output     string `json:"output"`
	Rule       string `json:"rule"`
	Replaced   bool   `json:"replaced"`
	DurationMs int64  `json:"duration_ms"`
	Detected   string `json:"detected"`
}

// DetectInput is the input schema for the detect tool.
type DetectInput struct {
	Text string `json:"text" jsonschema:"the text to inspect"`
}

// DetectOutput is the output schema for the detect tool.
type DetectOutput struct {
	Encoding string `json:"encoding"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert Myanmar text between Zawgyi and Unicode. With from=auto the encoding is detected.",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect",
		Description: "Report whether Myanmar text is Zawgyi (zg), Unicode (uni) or neither (none)",
	}, s.handleDetect)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	if err := s.allow(); err != nil {
		return nil, ConvertOutput{}, err
	}

	from := input.From
	if from == "" {
		from = string(domain.EncodingAuto)
	}
	mode, err := domain.ParseEncodingMode(from)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	res, err := s.ports.Converter.Convert(ctx, input.Text, mode)
	if err != nil {
		return nil, ConvertOutput{}, fmt.Errorf("converting: %w", err)
	}

	return nil, ConvertOutput{
		Output:     res.OutputText,
		Rule:       res.RuleApplied.String(),
		Replaced:   res.WasReplaced,
		DurationMs: res.DurationMs(),
		Detected:   res.Detected.String(),
	}, nil
}

// handleDetect handles the detect tool invocation.
func (s *Server) handleDetect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DetectInput,
) (*mcp.CallToolResult, DetectOutput, error) {
	if err := s.allow(); err != nil {
		return nil, DetectOutput{}, err
	}

	detected, err := s.ports.Converter.Detect(ctx, input.Text)
	if err != nil {
		return nil, DetectOutput{}, fmt.Errorf("detecting: %w", err)
	}
	return nil, DetectOutput{Encoding: detected.String()}, nil
}
