// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// All mutating handlers run inside a single transaction, so the event log
// entry commits atomically with the state change it describes.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RoleRepoFactory provides access to the role repository within a transaction.
	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	// ValidatorRepoFactory provides access to the validator allow-list within a transaction.
	ValidatorRepoFactory interface {
		ValidatorRepository() ports.ValidatorRepository
	}

	// EventRepoFactory provides access to the event log within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// CatalogUoW manages transactions for product listing operations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		RoleRepoFactory
		EventRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order creation, which reads the
	// product catalog and writes the order store.
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
		EventRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ValidationUoW manages transactions for order validation, which checks
	// the validator allow-list and mutates the order.
	ValidationUoW interface {
		TxManager
		OrderRepoFactory
		ValidatorRepoFactory
		EventRepoFactory
	}

	// ValidationUoWFactory creates new validation unit of work instances.
	ValidationUoWFactory interface {
		Create() ValidationUoW
	}

	// DeliveryUoW manages transactions for the delivery and finalization
	// stages of the order lifecycle.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// AccessUoW manages transactions for role and validator administration.
	AccessUoW interface {
		TxManager
		RoleRepoFactory
		ValidatorRepoFactory
		EventRepoFactory
	}

	// AccessUoWFactory creates new access unit of work instances.
	AccessUoWFactory interface {
		Create() AccessUoW
	}

	// OutboxUoW manages transactions for the event relay, which only
	// touches the event log.
	OutboxUoW interface {
		TxManager
		EventRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
