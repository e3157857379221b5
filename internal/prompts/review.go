// Package prompts implements MCP prompt handlers for specnav.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the spec-review MCP prompt.
// It instructs the AI to walk a spec document's checklist state.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("spec-review",
		mcp.WithPromptDescription(
			"Review a spec document's task checklist: what's done, what's "+
				"in progress, and what to pick up next.",
		),
		mcp.WithArgument("path",
			mcp.ArgumentDescription("Workspace-relative path to the spec document"),
		),
	)
}

// Handle processes the spec-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path := ""
	if args := req.Params.Arguments; args != nil {
		path = args["path"]
	}
	if path == "" {
		path = "the configured default document"
	}

	return &mcp.GetPromptResult{
		Description: "Spec Checklist Review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `spec_status` for " + path + " and then `spec_outline` " +
						"with view=implementations.\n\n" +
						"Then:\n" +
						"1. Summarize overall completion and call out subsections that are lagging\n" +
						"2. List the in-progress items — those are likely where work stopped\n" +
						"3. Suggest the next pending item to pick up, with its subsection for context\n" +
						"4. If everything is complete, say so and suggest recording a snapshot",
				),
			},
		},
	}, nil
}
