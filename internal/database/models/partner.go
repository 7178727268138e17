package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harborlight/harborlight/internal/database/dbretry"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// PartnerModel handles database operations for crisis partner reference
// data. Partners are created and updated by operators only and are
// read-mostly at runtime.
type PartnerModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPartner creates a new PartnerModel instance.
func NewPartner(db *bun.DB, logger *zap.Logger) *PartnerModel {
	return &PartnerModel{
		db:     db,
		logger: logger.Named("db_partner"),
	}
}

// Upsert creates or updates a crisis partner. Webhook URLs must use https;
// anything else is rejected before touching the database.
func (m *PartnerModel) Upsert(ctx context.Context, partner *types.CrisisPartner) error {
	if !strings.HasPrefix(partner.WebhookURL, "https://") {
		return types.ErrInsecureWebhookURL
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(partner).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("webhook_url = EXCLUDED.webhook_url").
			Set("api_key_hash = EXCLUDED.api_key_hash").
			Set("active = EXCLUDED.active").
			Set("jurisdictions = EXCLUDED.jurisdictions").
			Set("priority = EXCLUDED.priority").
			Set("capabilities = EXCLUDED.capabilities").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert crisis partner: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a crisis partner by its slug.
func (m *PartnerModel) GetByID(ctx context.Context, id string) (*types.CrisisPartner, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.CrisisPartner, error) {
		partner := new(types.CrisisPartner)

		err := m.db.NewSelect().
			Model(partner).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrPartnerNotFound
			}

			return nil, fmt.Errorf("failed to get crisis partner: %w", err)
		}

		return partner, nil
	})
}

// GetActivePartners returns all active partners ordered by ascending
// priority, ready for jurisdiction matching.
func (m *PartnerModel) GetActivePartners(ctx context.Context) ([]*types.CrisisPartner, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.CrisisPartner, error) {
		var partners []*types.CrisisPartner

		err := m.db.NewSelect().
			Model(&partners).
			Where("active = TRUE").
			Order("priority ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get active partners: %w", err)
		}

		return partners, nil
	})
}
