package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Goals           int    `json:"goals"`
	Books           int    `json:"books"`
	Trips           int    `json:"trips"`
	ActiveWatches   int    `json:"active_watches"`
	GymSessions     int    `json:"gym_sessions"`
	RewardsUnlocked int    `json:"rewards_unlocked"`
	GlobalProgress  int    `json:"global_progress"`
	StoreType       string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storeType := "unknown"
	if s.store != nil {
		storeType = "store"
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	unlocked := 0
	for _, r := range s.rewards {
		if r.Unlocked {
			unlocked++
		}
	}

	return ServiceState{
		Goals:           len(s.snap.Goals),
		Books:           len(s.snap.Books),
		Trips:           len(s.snap.Trips),
		ActiveWatches:   len(s.snap.ActiveWatches),
		GymSessions:     len(s.snap.GymSessions),
		RewardsUnlocked: unlocked,
		GlobalProgress:  GlobalProgress(s.snap),
		StoreType:       storeType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
