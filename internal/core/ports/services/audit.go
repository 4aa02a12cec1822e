package services

import (
	"context"
	"time"
)

// Audit event types emitted after each completed mutating operation.
const (
	AuditAssetCreated       = "asset.created"
	AuditCategoryCreated    = "category.created"
	AuditDepreciationPosted = "asset.depreciation_posted"
	AuditAssetDisposed      = "asset.disposed"
	AuditAssetRevalued      = "asset.revalued"
)

// AuditEvent describes a completed ledger operation for the audit collaborator.
type AuditEvent struct {
	EventType  string         `json:"event_type"`
	AssetID    string         `json:"asset_id,omitempty"`
	Actor      string         `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
	Detail     map[string]any `json:"detail,omitempty"`
}

// AuditPublisher delivers audit events to the notification sink. Publishing is
// fire-and-forget: implementations must never block a completed ledger
// operation, and failures are logged, not propagated.
type AuditPublisher interface {
	Publish(ctx context.Context, event AuditEvent) error
}
