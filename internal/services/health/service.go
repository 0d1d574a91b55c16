package health

import (
	"context"
	"time"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Check is one named dependency probe.
type Check struct {
	Name   string
	Pinger Pinger
}

// Service encapsulates health-related checks.
type Service struct {
	Checks  []Check
	Timeout time.Duration
}

// NewService constructs a new health service. Checks with a nil Pinger are skipped.
func NewService(checks ...Check) *Service {
	kept := make([]Check, 0, len(checks))
	for _, c := range checks {
		if c.Pinger != nil {
			kept = append(kept, c)
		}
	}
	return &Service{Checks: kept, Timeout: 2 * time.Second}
}

// Status reports overall health and the state of each dependency.
func (s *Service) Status(ctx context.Context) (bool, map[string]string) {
	deps := make(map[string]string, len(s.Checks))
	ok := true
	for _, c := range s.Checks {
		checkCtx, cancel := context.WithTimeout(ctx, s.Timeout)
		err := c.Pinger.PingContext(checkCtx)
		cancel()
		if err != nil {
			deps[c.Name] = "down"
			ok = false
			continue
		}
		deps[c.Name] = "up"
	}
	return ok, deps
}
