// Package commands contains business operations that modify marketplace state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"agrilink/internal/core/domain/model/audit"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composite covering the aggregates it
// touches; every composite includes the audit log, since every mutation is
// recorded in the same transaction.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FarmerRepoFactory provides access to the farmer repository within a transaction.
	FarmerRepoFactory interface {
		FarmerRepository() ports.FarmerRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AuditLogRepoFactory provides access to the audit log repository within a transaction.
	AuditLogRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// SessionUoW manages transactions for login/logout operations:
	// farmer lookup plus the audit record.
	SessionUoW interface {
		TxManager
		FarmerRepoFactory
		AuditLogRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// ListingUoW manages transactions for listing creation: the farmer
	// snapshot read, the listing insert, and the audit record.
	ListingUoW interface {
		TxManager
		FarmerRepoFactory
		ListingRepoFactory
		AuditLogRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// PurchaseUoW manages transactions for the purchase operation: listing
	// decrement, order and delivery inserts, and the audit record, all atomic.
	PurchaseUoW interface {
		TxManager
		ListingRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		AuditLogRepoFactory
	}

	// PurchaseUoWFactory creates new purchase unit of work instances.
	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// DeliveryUoW manages transactions for delivery transitions that cascade
	// to the paired order.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		AuditLogRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW manages transactions for payment release: order completion
	// and the farmer balance credit must commit together.
	PaymentUoW interface {
		TxManager
		FarmerRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		AuditLogRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)

// recordAudit appends an audit entry within the caller's transaction.
func recordAudit(ctx context.Context, repo ports.AuditLogRepository, action, details string) error {
	entry, err := audit.NewEntry(kernel.NewUUID(), action, details, time.Now().UTC())
	if err != nil {
		return err
	}
	return repo.Append(ctx, entry)
}
