package core

import (
	"fmt"
	"time"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// recordRun writes a tier list run and every hero outcome to the history store.
// It returns the run ID, or 0 when nothing was recorded.
func recordRun(cfg *contract.Config, mgr contract.StoreManager, start time.Time, weighting schema.Weighting, tl schema.TierList) int64 {
	if mgr == nil {
		return 0
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return 0
	}

	configParams := map[string]any{
		"preset":  cfg.Preset,
		"profile": cfg.Profile,
		"roster":  cfg.RosterFile,
		"weights": weighting.ToMap(),
		"limit":   cfg.ResultLimit,
	}
	runID, err := store.BeginRun(start, cfg.Preset, configParams)
	if err != nil {
		logTrackingError("BeginRun", err)
		return 0
	}
	if runID == 0 {
		return 0
	}

	for _, h := range tl.Flatten() {
		result := schema.HeroResult{HeroName: h.Name, Score: h.Score, Tier: h.Tier, Rank: h.Rank}
		if err := store.RecordHeroResult(runID, result); err != nil {
			logTrackingError("RecordHeroResult "+h.Name, err)
		}
	}

	if err := store.EndRun(runID, time.Now(), tl.Len(), tl.Stats); err != nil {
		logTrackingError("EndRun", err)
	}
	return runID
}

// logTrackingError logs history tracking errors to stderr without disrupting the run.
func logTrackingError(operation string, err error) {
	contract.LogWarn(fmt.Sprintf("History tracking failed for %s", operation), err)
}
