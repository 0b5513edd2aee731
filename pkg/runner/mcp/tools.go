package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
)

const dateHelp = "Date as YYYY-MM-DD, M/D, today, tomorrow, yesterday or an offset like +3d. Defaults to today."

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListDayTool(srv, svc)
	registerListWeekTool(srv, svc)
	registerMonthCountTool(srv, svc)
	registerAdvanceAnchorTool(srv, svc)
	registerSubmitActivityTool(srv, svc)
	registerUpdateActivityTool(srv, svc)
	registerDeleteActivityTool(srv, svc)
	registerGetActivityTool(srv, svc)
	registerLookupCategoryTool(srv, svc)
	registerListCategoriesTool(srv, svc)
}

func registerListDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_day",
		mcp.WithDescription("List the activities scheduled on one day, ordered by time."),
		mcp.WithString("date", mcp.Description(dateHelp)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ListDay(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(day)
	})
}

func registerListWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_week",
		mcp.WithDescription("List the Monday to Sunday week containing a date, grouped by day."),
		mcp.WithString("date", mcp.Description(dateHelp)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days, err := svc.ListWeek(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		total := 0
		for _, d := range days {
			total += d.Count
		}
		return toJSONResult(map[string]any{
			"days":  days,
			"count": total,
		})
	})
}

func registerMonthCountTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_count",
		mcp.WithDescription("Count the activities in the calendar month containing a date."),
		mcp.WithString("date", mcp.Description(dateHelp)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, count, err := svc.MonthCount(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"month": d.Format("2006-01"),
			"count": count,
		})
	})
}

func registerAdvanceAnchorTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"advance_anchor",
		mcp.WithDescription("Compute the previous or next anchor date for a view. Nothing is changed."),
		mcp.WithString("date", mcp.Description(dateHelp)),
		mcp.WithString("mode",
			mcp.Description("View mode; one day, seven days or one calendar month per step."),
			mcp.Enum("day", "week", "month"),
		),
		mcp.WithString("direction",
			mcp.Required(),
			mcp.Description("Which way to move."),
			mcp.Enum("previous", "next"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		direction, err := request.RequireString("direction")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		d, err := svc.AdvanceAnchor(ctx, request.GetString("date", ""), request.GetString("mode", "day"), direction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"anchor": d.String()})
	})
}

func registerSubmitActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"submit_activity",
		mcp.WithDescription("Validate and add a new activity to the routine."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Activity title.")),
		mcp.WithString("date", mcp.Required(), mcp.Description(dateHelp)),
		mcp.WithString("time", mcp.Required(), mcp.Description("Time of day as HH:MM.")),
		mcp.WithString("categoryId", mcp.Required(), mcp.Description("Category id, see list_categories.")),
		mcp.WithString("description", mcp.Description("Optional free text.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args activity.FormValues
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		result, err := svc.SubmitActivity(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerUpdateActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_activity",
		mcp.WithDescription("Edit an activity. Omitted fields keep their current value."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Activity identifier.")),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("date", mcp.Description("New date. "+dateHelp)),
		mcp.WithString("time", mcp.Description("New time of day as HH:MM.")),
		mcp.WithString("categoryId", mcp.Description("New category id.")),
		mcp.WithString("description", mcp.Description("New description.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID string `json:"id"`
			app.Patch
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		result, err := svc.UpdateActivity(ctx, args.ID, args.Patch)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerDeleteActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_activity",
		mcp.WithDescription("Remove an activity. Deleting an unknown id succeeds without a notice."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Activity identifier to delete.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := svc.DeleteActivity(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerGetActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_activity",
		mcp.WithDescription("Fetch a single activity by identifier."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Activity identifier to fetch.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ActivityByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerLookupCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"lookup_category",
		mcp.WithDescription("Find a category by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Category id.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		c, ok := svc.App.LookupCategory(id)
		return toJSONResult(map[string]any{
			"found":    ok,
			"category": c,
		})
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List every registered category in order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cats := svc.App.ListCategories()
		return toJSONResult(map[string]any{
			"categories": cats,
			"count":      len(cats),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
