package core

import (
	"fmt"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/persist"
	"github.com/huangsam/herotier/schema"
)

// resolveWeighting returns the weighting of a run. Without a profile this is the
// config weighting. With one, the stored weights sit between the preset and the
// overrides from the settings file, config file and flags.
func resolveWeighting(cfg *contract.Config, mgr contract.StoreManager) (schema.Weighting, error) {
	if cfg.Profile == "" {
		return cfg.Weighting.Clone(), nil
	}

	var store contract.ProfileStore
	if mgr != nil {
		store = mgr.GetProfileStore()
	}
	profile, err := persist.LoadProfile(store, cfg.Profile)
	if err != nil {
		return nil, err
	}

	preset, err := schema.GetPreset(cfg.Preset)
	if err != nil {
		return nil, err
	}
	weighting, err := schema.ApplyWeights(preset.Weights, profile.Weights)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile.Name, err)
	}
	return schema.ApplyWeights(weighting, cfg.Overrides)
}
