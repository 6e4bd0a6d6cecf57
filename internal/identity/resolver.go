package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store"
)

// ResolvedActor is the result of resolving an opaque identifier against the
// actor tables. Kind tags which table the id was found in.
type ResolvedActor struct {
	Kind        domain.ActorKind
	ID          uuid.UUID
	DisplayName string
}

// probe is one (lookup, variant) entry in the resolver's priority list
type probe struct {
	kind   domain.ActorKind
	lookup func(ctx context.Context, id uuid.UUID) (*ResolvedActor, error)
}

// Resolver resolves opaque actor identifiers to a single actor variant by
// probing the actor tables in a fixed priority order: admin, then manager,
// then worker. The first hit wins; the ordering is a compatibility contract.
type Resolver struct {
	probes []probe
}

// NewResolver creates a resolver over the given store
func NewResolver(s store.Store) *Resolver {
	return &Resolver{
		probes: []probe{
			{
				kind: domain.ActorKindAdmin,
				lookup: func(ctx context.Context, id uuid.UUID) (*ResolvedActor, error) {
					admin, err := s.GetAdminByID(ctx, id)
					if err != nil || admin == nil {
						return nil, err
					}
					return &ResolvedActor{
						Kind:        domain.ActorKindAdmin,
						ID:          admin.ID,
						DisplayName: admin.Username,
					}, nil
				},
			},
			{
				kind: domain.ActorKindManager,
				lookup: func(ctx context.Context, id uuid.UUID) (*ResolvedActor, error) {
					manager, err := s.GetManagerByID(ctx, id)
					if err != nil || manager == nil {
						return nil, err
					}
					return &ResolvedActor{
						Kind:        domain.ActorKindManager,
						ID:          manager.ID,
						DisplayName: displayName(manager.FirstName, manager.LastName),
					}, nil
				},
			},
			{
				kind: domain.ActorKindWorker,
				lookup: func(ctx context.Context, id uuid.UUID) (*ResolvedActor, error) {
					worker, err := s.GetWorkerByID(ctx, id)
					if err != nil || worker == nil {
						return nil, err
					}
					return &ResolvedActor{
						Kind:        domain.ActorKindWorker,
						ID:          worker.ID,
						DisplayName: displayName(worker.FirstName, worker.LastName),
					}, nil
				},
			},
		},
	}
}

// Resolve determines which actor variant an opaque identifier belongs to.
// A malformed identifier resolves to domain.ErrActorNotFound rather than a
// format error, so the caller-facing contract stays a single failure mode.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*ResolvedActor, error) {
	id, err := domain.ParseActorID(raw)
	if err != nil {
		return nil, domain.ErrActorNotFound
	}

	for _, p := range r.probes {
		actor, err := p.lookup(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to probe %s store: %w", p.kind, err)
		}
		if actor != nil {
			return actor, nil
		}
	}

	return nil, domain.ErrActorNotFound
}

func displayName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
