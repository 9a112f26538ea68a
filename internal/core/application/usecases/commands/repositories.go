// Package commands contains the business operations that modify order
// state. Implements the Command pattern for the write side of the CQRS
// split: every operation is a validated command struct plus a handler that
// mutates the in-memory order store first and then writes the result
// through to persistence inside a unit of work.
package commands

import (
	"context"

	"menucore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The narrow per-concern composition keeps handlers testable with
// small mocks.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order persistence operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances, one per
	// handled command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
