// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Exposes active workout, recent history, and templates.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// irontrack://active - the in-progress workout
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "irontrack://active",
		Name:        "Active Workout",
		Description: "The in-progress workout, if any",
		MIMEType:    "application/json",
	}, s.handleActiveResource)

	// irontrack://history/recent - last 10 completed workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "irontrack://history/recent",
		Name:        "Recent Workouts",
		Description: "The last 10 completed workouts",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// irontrack://templates - the user's workout templates
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "irontrack://templates",
		Name:        "Workout Templates",
		Description: "The user's workout templates",
		MIMEType:    "application/json",
	}, s.handleTemplatesResource)
}

// Resource handlers

func (s *Server) handleActiveResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var payload any = map[string]any{"message": "No workout in progress."}
	if w := s.session.ActiveWorkout(); w != nil {
		payload = w
	}
	return jsonResource("irontrack://active", payload)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts := s.session.Workouts()
	if len(workouts) > 10 {
		workouts = workouts[:10]
	}
	return jsonResource("irontrack://history/recent", workouts)
}

func (s *Server) handleTemplatesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("irontrack://templates", s.session.Templates())
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
