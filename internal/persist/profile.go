package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// ProfileVersion is the schema version of stored profile blobs.
const ProfileVersion = 1

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// SaveProfile writes a named weighting profile, replacing any previous one.
func SaveProfile(store contract.ProfileStore, profile schema.Profile) error {
	if store == nil {
		return fmt.Errorf("profile store is not initialized")
	}
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	profile.Name = name
	if profile.SavedAt.IsZero() {
		profile.SavedAt = time.Now()
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", name, err)
	}
	if err := store.Set(name, data, ProfileVersion, profile.SavedAt.Unix()); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", name, err)
	}
	return nil
}

// LoadProfile reads a named weighting profile.
func LoadProfile(store contract.ProfileStore, name string) (schema.Profile, error) {
	var profile schema.Profile
	if store == nil {
		return profile, fmt.Errorf("profile store is not initialized")
	}
	name = strings.TrimSpace(name)

	data, version, _, err := store.Get(name)
	if errors.Is(err, sql.ErrNoRows) {
		return profile, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return profile, fmt.Errorf("failed to read profile %s: %w", name, err)
	}
	if version != ProfileVersion {
		return profile, fmt.Errorf("profile %s has unsupported version %d", name, version)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to decode profile %s: %w", name, err)
	}
	return profile, nil
}
