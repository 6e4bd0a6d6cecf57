package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store"
)

// Scope is the set of actor ids a requester is allowed to see. All means no
// restriction. The zero value is fully closed: nothing is visible.
type Scope struct {
	All      bool
	ActorIDs []uuid.UUID
}

// Allows reports whether the scope covers the given actor id
func (s Scope) Allows(id uuid.UUID) bool {
	if s.All {
		return true
	}
	for _, allowed := range s.ActorIDs {
		if allowed == id {
			return true
		}
	}
	return false
}

// Empty reports whether the scope covers nothing at all. Listings short
// circuit to an empty result without a store round trip.
func (s Scope) Empty() bool {
	return !s.All && len(s.ActorIDs) == 0
}

// ComputeScope derives the visibility scope for a requester:
//   - admin sees everything
//   - manager sees itself plus its direct workers (one hop, not transitive)
//   - worker sees only itself
//   - any other or missing role sees nothing (fail closed)
func ComputeScope(ctx context.Context, s store.Store, requester domain.Requester) (Scope, error) {
	switch requester.Role {
	case domain.RoleAdmin:
		return Scope{All: true}, nil
	case domain.RoleManager:
		workerIDs, err := s.GetWorkerIDsByManagerID(ctx, requester.ID)
		if err != nil {
			return Scope{}, fmt.Errorf("failed to compute manager scope: %w", err)
		}
		return Scope{ActorIDs: append([]uuid.UUID{requester.ID}, workerIDs...)}, nil
	case domain.RoleWorker:
		return Scope{ActorIDs: []uuid.UUID{requester.ID}}, nil
	default:
		return Scope{}, nil
	}
}
