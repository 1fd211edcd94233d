// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"packing/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to what command handlers use.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EpisodeRepoFactory provides access to the episode repository within a transaction.
	EpisodeRepoFactory interface {
		EpisodeRepository() ports.EpisodeRepository
	}

	// EpisodeUoW manages transactions for episode operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ep, err := uow.EpisodeRepository().Get(ctx, id)
	//   // ... mutate the episode
	//   err = uow.EpisodeRepository().Update(ctx, ep)
	//
	//   err = uow.Commit(ctx)
	EpisodeUoW interface {
		TxManager
		EpisodeRepoFactory
	}

	// EpisodeUoWFactory creates new episode unit of work instances.
	EpisodeUoWFactory interface {
		Create() EpisodeUoW
	}
)
