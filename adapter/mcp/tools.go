// Package mcp exposes the analytics operations as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/application/queries"
	"github.com/tasklens/tasklens/internal/analytics/domain"
	"github.com/tasklens/tasklens/internal/app"
)

// ToolDependencies provides handlers and context for MCP tools.
type ToolDependencies struct {
	Container *app.Container
}

type queryTaskDataInput struct {
	Query  string `json:"query" jsonschema:"required"`
	UserID string `json:"user_id,omitempty"`
}

type monthlySummaryInput struct {
	MonthOffset int    `json:"month_offset,omitempty"` // 0 = current month, 1 = last month
	UserID      string `json:"user_id,omitempty"`
}

type recentTasksInput struct {
	Days   int    `json:"days,omitempty"` // Defaults to 60
	UserID string `json:"user_id,omitempty"`
}

// RegisterTools registers the analytics tools on the server.
func RegisterTools(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return errors.New("server is required")
	}
	c := deps.Container
	if c == nil {
		return errors.New("container is required")
	}

	srv.Tool("query_task_data").
		Description("Answer natural language questions about the user's task data").
		Handler(func(ctx context.Context, input queryTaskDataInput) (string, error) {
			if input.Query == "" {
				return "", errors.New("query is required")
			}
			userID, err := resolveUserID(c, input.UserID)
			if err != nil {
				return "", err
			}

			return c.QueryTaskDataHandler.Handle(ctx, queries.QueryTaskDataQuery{
				UserID: userID,
				Query:  input.Query,
			}), nil
		})

	srv.Tool("get_monthly_summary").
		Description("Get a monthly summary of the user's tasks as JSON").
		Handler(func(ctx context.Context, input monthlySummaryInput) (string, error) {
			userID, err := resolveUserID(c, input.UserID)
			if err != nil {
				return "", err
			}

			summary := c.GetMonthlySummaryHandler.Handle(ctx, queries.GetMonthlySummaryQuery{
				UserID:      userID,
				MonthOffset: input.MonthOffset,
			})

			payload, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return "", fmt.Errorf("marshal summary: %w", err)
			}
			return string(payload), nil
		})

	srv.Tool("list_recent_tasks").
		Description("List the user's tasks from the recent window, newest first").
		Handler(func(ctx context.Context, input recentTasksInput) ([]domain.TaskRecord, error) {
			userID, err := resolveUserID(c, input.UserID)
			if err != nil {
				return nil, err
			}

			return c.ListRecentTasksHandler.Handle(ctx, queries.ListRecentTasksQuery{
				UserID: userID,
				Days:   input.Days,
			})
		})

	return nil
}

func resolveUserID(c *app.Container, raw string) (uuid.UUID, error) {
	if raw == "" {
		return c.CurrentUserID, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id: %w", err)
	}
	return id, nil
}
