package scheduler

import "go.trai.ch/provision/internal/core/domain"

// SetCurrentOS overrides the platform used by the OS gate.
func (s *Scheduler) SetCurrentOS(os domain.OS) {
	s.currentOS = os
}
