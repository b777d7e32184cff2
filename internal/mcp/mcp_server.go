// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the herotier MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Hero Tier List Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	presets := schema.PresetNames()
	tiers := []string{"S", "A", "B", "C", "D"}

	// --- 1. Tool: get_tier_list ---
	s.AddTool(mcp.NewTool("get_tier_list",
		mcp.WithDescription("Score every hero with a weighting and bucket them into S, A, B, C and D tiers."),
		mcp.WithString("preset", mcp.Description("Weighting preset. Defaults to the configured preset."), mcp.Enum(presets...)),
		mcp.WithString("weights", mcp.Description("Weight overrides such as 'economy:4,tempo:2'.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of heroes listed.")),
	), h.handleGetTierList)

	// --- 2. Tool: get_scores ---
	s.AddTool(mcp.NewTool("get_scores",
		mcp.WithDescription("Rank every hero by weighted score without tiering."),
		mcp.WithString("preset", mcp.Description("Weighting preset."), mcp.Enum(presets...)),
		mcp.WithString("weights", mcp.Description("Weight overrides such as 'economy:4,tempo:2'.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of heroes returned.")),
		mcp.WithBoolean("ascending", mcp.Description("List the lowest scores first.")),
	), h.handleGetScores)

	// --- 3. Tool: compare_tier_lists ---
	s.AddTool(mcp.NewTool("compare_tier_lists",
		mcp.WithDescription("Compare the tier lists of two presets and report how every hero moved."),
		mcp.WithString("base_preset", mcp.Description("Preset on the BEFORE side. Defaults to the configured preset."), mcp.Enum(presets...)),
		mcp.WithString("target_preset", mcp.Description("Preset on the AFTER side."), mcp.Required()),
		mcp.WithString("weights", mcp.Description("Weight overrides applied to the base side.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of movements returned.")),
	), h.handleCompareTierLists)

	// --- 4. Tool: check_heroes ---
	s.AddTool(mcp.NewTool("check_heroes",
		mcp.WithDescription("Check whether named heroes reach a minimum tier."),
		mcp.WithString("heroes", mcp.Description("Comma-separated hero names."), mcp.Required()),
		mcp.WithString("min_tier", mcp.Description("Lowest passing tier. Defaults to B."), mcp.Enum(tiers...)),
		mcp.WithString("preset", mcp.Description("Weighting preset."), mcp.Enum(presets...)),
	), h.handleCheckHeroes)

	// --- 5. Tool: list_presets ---
	s.AddTool(mcp.NewTool("list_presets",
		mcp.WithDescription("List the built-in weighting presets with their weights."),
	), h.handleListPresets)

	return s
}

// StartMCPServer starts the herotier MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
