package migrations

import (
	"context"
	"fmt"

	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- One flag per (content item, category) pair
			CREATE UNIQUE INDEX IF NOT EXISTS idx_concern_flags_content_category
			ON concern_flags (content_id, category);

			-- Family read path
			CREATE INDEX IF NOT EXISTS idx_concern_flags_family_visible
			ON concern_flags (family_id, detected_at DESC)
			WHERE deliverable = TRUE;

			-- Sweep scan for due holds
			CREATE INDEX IF NOT EXISTS idx_concern_flags_releasable
			ON concern_flags (releasable_after)
			WHERE status = ?;

			-- At most one active blackout per signal
			CREATE UNIQUE INDEX IF NOT EXISTS idx_blackout_records_active_signal
			ON blackout_records (signal_id)
			WHERE status = ?;

			CREATE INDEX IF NOT EXISTS idx_blackout_records_expiry
			ON blackout_records (expires_at)
			WHERE status = ?;

			CREATE INDEX IF NOT EXISTS idx_routing_results_signal
			ON signal_routing_results (signal_id, created_at);

			CREATE INDEX IF NOT EXISTS idx_escalations_signal
			ON signal_escalations (signal_id, created_at);

			CREATE INDEX IF NOT EXISTS idx_authorizations_expiry
			ON signal_access_authorizations (expires_at)
			WHERE used = FALSE;

			CREATE INDEX IF NOT EXISTS idx_suppression_logs_child
			ON distress_suppression_logs (child_id, timestamp DESC);
		`,
			enum.FlagStatusSensitiveHold,
			enum.BlackoutStatusActive,
			enum.BlackoutStatusActive,
		).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create initial indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_concern_flags_content_category;
			DROP INDEX IF EXISTS idx_concern_flags_family_visible;
			DROP INDEX IF EXISTS idx_concern_flags_releasable;
			DROP INDEX IF EXISTS idx_blackout_records_active_signal;
			DROP INDEX IF EXISTS idx_blackout_records_expiry;
			DROP INDEX IF EXISTS idx_routing_results_signal;
			DROP INDEX IF EXISTS idx_escalations_signal;
			DROP INDEX IF EXISTS idx_authorizations_expiry;
			DROP INDEX IF EXISTS idx_suppression_logs_child;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop initial indexes: %w", err)
		}

		return nil
	})
}
