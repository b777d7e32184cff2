// Package persist stores weighting profiles and tier list history in SQL databases.
package persist

import (
	"sync"

	"github.com/huangsam/herotier/internal/contract"
)

// StoreManagerImpl holds the profile and history stores for the process.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	profiles     contract.ProfileStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetProfileStore returns the profile store.
func (mgr *StoreManagerImpl) GetProfileStore() contract.ProfileStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.profiles
}

// GetHistoryStore returns the history store.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
