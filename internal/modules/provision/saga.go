package provision

import (
	"context"
	"errors"
	"log"
)

// saga is a compensation stack for a multi-step operation across independent
// stores. After each successful step the caller pushes the action that undoes
// it; on failure unwind runs the stack in reverse order.
type saga struct {
	compensations []func(context.Context) error
}

func (s *saga) push(f func(context.Context) error) {
	s.compensations = append(s.compensations, f)
}

// unwind runs all pushed compensations, newest first. Compensation failures
// are collected rather than stopping the unwind: a half-compensated saga is
// still better than an abandoned one.
func (s *saga) unwind(ctx context.Context) error {
	var errs []error
	for i := len(s.compensations) - 1; i >= 0; i-- {
		if err := s.compensations[i](ctx); err != nil {
			log.Printf("provision: compensation %d failed: %v", i, err)
			errs = append(errs, err)
		}
	}
	s.compensations = nil
	return errors.Join(errs...)
}
