package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for zuc resources.
	uriScheme = "zuc://"

	// recentEventsLimit caps the zuc://analytics/recent listing.
	recentEventsLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "about",
		Name:        "about",
		Description: "Application name, version and links",
		MIMEType:    "application/json",
	}, s.handleAboutResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "Loaded transliteration rule tables",
		MIMEType:    "application/json",
	}, s.handleRulesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "analytics/recent",
		Name:        "recent-events",
		Description: "Analytics events tracked while the server runs, oldest first",
		MIMEType:    "application/json",
	}, s.handleRecentEventsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "rules/{rule}",
		Name:        "rule-table",
		Description: "Source of a transliteration rule table (zg2uni or uni2zg)",
		MIMEType:    "application/yaml",
	}, s.handleRuleResource)
}

// handleAboutResource returns application metadata.
func (s *Server) handleAboutResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cfg := domain.DefaultAppConfig()
	if s.ports.App != nil {
		cfg = *s.ports.App
	}

	type aboutInfo struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Description  string            `json:"description"`
		Website      string            `json:"website"`
		Privacy      string            `json:"privacy"`
		Encodings    []string          `json:"encodings"`
		EncodingDesc map[string]string `json:"encoding_descriptions"`
	}

	modes := domain.AllEncodingModes()
	encodings := make([]string, 0, len(modes))
	descs := make(map[string]string, len(modes))
	for _, m := range modes {
		encodings = append(encodings, m.String())
		descs[m.String()] = m.Description()
	}

	return jsonResource(req, aboutInfo{
		Name:         cfg.AppName,
		Version:      cfg.AppVersion,
		Description:  cfg.AppDescription,
		Website:      domain.DeepLinkBase,
		Privacy:      cfg.PrivacyURL,
		Encodings:    encodings,
		EncodingDesc: descs,
	})
}

// handleRulesResource lists the loaded rule tables.
func (s *Server) handleRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type ruleInfo struct {
		Name string `json:"name"`
		URI  string `json:"uri"`
	}

	out := make([]ruleInfo, 0, len(s.ports.RuleNames))
	for _, r := range s.ports.RuleNames {
		out = append(out, ruleInfo{Name: r.String(), URI: uriScheme + "rules/" + r.String()})
	}
	return jsonResource(req, out)
}

// handleRecentEventsResource returns the newest tracked events.
func (s *Server) handleRecentEventsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type eventInfo struct {
		ID         string         `json:"id"`
		SessionID  string         `json:"session_id"`
		Name       string         `json:"name"`
		Properties map[string]any `json:"properties,omitempty"`
		Time       time.Time      `json:"time"`
	}

	out := []eventInfo{}
	if s.ports.Events != nil {
		for _, ev := range s.ports.Events.Last(recentEventsLimit) {
			out = append(out, eventInfo{
				ID:         ev.ID,
				SessionID:  ev.SessionID,
				Name:       ev.Name,
				Properties: ev.Properties,
				Time:       ev.Time,
			})
		}
	}
	return jsonResource(req, out)
}

func jsonResource(req *mcp.ReadResourceRequest, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", req.Params.URI, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRuleResource returns the source of one rule table.
func (s *Server) handleRuleResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Rules == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rule, err := domain.ParseRuleName(extractRuleName(req.Params.URI))
	if err != nil || rule == domain.RuleNone {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := s.ports.Rules.Load(rule)
	if err != nil {
		return nil, fmt.Errorf("loading rule table: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/yaml",
			Text:     string(data),
		}},
	}, nil
}

// extractRuleName extracts the rule from a URI like zuc://rules/{rule}.
func extractRuleName(uri string) string {
	const prefix = uriScheme + "rules/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
