package migrations

import (
	"context"
	"fmt"

	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.ConcernFlag)(nil),
			(*types.FlagThrottleState)(nil),
			(*types.DistressSuppressionLog)(nil),
			(*types.BlackoutRecord)(nil),
			(*types.CrisisPartner)(nil),
			(*types.SignalRoutingResult)(nil),
			(*types.SignalEscalation)(nil),
			(*types.LegalRequest)(nil),
			(*types.SignalAccessAuthorization)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tables := []string{
			"signal_access_authorizations",
			"legal_requests",
			"signal_escalations",
			"signal_routing_results",
			"crisis_partners",
			"blackout_records",
			"distress_suppression_logs",
			"flag_throttle_states",
			"concern_flags",
		}

		for _, table := range tables {
			if _, err := db.NewDropTable().Table(table).IfExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}

		return nil
	})
}
