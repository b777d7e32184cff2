package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// configFor clones the base config and applies the common tool arguments.
func (h *toolHandler) configFor(request mcp.CallToolRequest, presetArg string) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateWeights(cfg, request.GetString(presetArg, ""), request.GetString("weights", "")); err != nil {
		return nil, err
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = min(l, contract.MaxResultLimit)
	}
	return cfg, nil
}

// jsonResult marshals data into a text tool result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTierList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request, "preset")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, _, err := core.GetTierListResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("tier list failed: %v", err)), nil
	}

	heroes := result.TierList.Flatten()
	if cfg.ResultLimit > 0 && len(heroes) > cfg.ResultLimit {
		heroes = heroes[:cfg.ResultLimit]
	}
	return jsonResult(map[string]any{
		"preset":     result.Preset,
		"weights":    result.Weights,
		"stats":      result.TierList.Stats,
		"thresholds": result.TierList.Thresholds,
		"heroes":     heroes,
	})
}

func (h *toolHandler) handleGetScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request, "preset")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	cfg.Ascending = request.GetBool("ascending", false)

	result, _, err := core.GetScoreResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleCompareTierLists(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request, "base_preset")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}

	target := request.GetString("target_preset", "")
	if target == "" {
		return mcp.NewToolResultError("invalid comparison parameters: target_preset is required"), nil
	}
	preset, err := schema.GetPreset(target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}
	cfg.TargetPreset = preset.Name

	result, _, err := core.GetCompareResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleCheckHeroes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request, "preset")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid check parameters: %v", err)), nil
	}
	if t := request.GetString("min_tier", ""); t != "" {
		tier, err := schema.ParseTier(t)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid check parameters: %v", err)), nil
		}
		cfg.MinTier = tier
	}

	var heroes []string
	for name := range strings.SplitSeq(request.GetString("heroes", ""), ",") {
		if name = strings.TrimSpace(name); name != "" {
			heroes = append(heroes, name)
		}
	}

	result, _, err := core.GetCheckResults(core.WithSuppressHeader(ctx), cfg, h.mgr, heroes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleListPresets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type presetInfo struct {
		schema.Preset
		WeightsByKey map[string]float64 `json:"weights_by_key"`
	}
	out := make([]presetInfo, len(schema.Presets))
	for i, p := range schema.Presets {
		out[i] = presetInfo{Preset: p, WeightsByKey: p.Weights.ToMap()}
	}
	return jsonResult(out)
}
