package database

import (
	"github.com/harborlight/harborlight/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	flag          *models.FlagModel
	suppression   *models.SuppressionModel
	blackout      *models.BlackoutModel
	partner       *models.PartnerModel
	routing       *models.RoutingModel
	escalation    *models.EscalationModel
	legal         *models.LegalModel
	authorization *models.AuthorizationModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		flag:          models.NewFlag(db, logger),
		suppression:   models.NewSuppression(db, logger),
		blackout:      models.NewBlackout(db, logger),
		partner:       models.NewPartner(db, logger),
		routing:       models.NewRouting(db, logger),
		escalation:    models.NewEscalation(db, logger),
		legal:         models.NewLegal(db, logger),
		authorization: models.NewAuthorization(db, logger),
	}
}

// Flag returns the concern flag model repository.
func (r *Repository) Flag() *models.FlagModel {
	return r.flag
}

// Suppression returns the suppression model repository.
func (r *Repository) Suppression() *models.SuppressionModel {
	return r.suppression
}

// Blackout returns the blackout model repository.
func (r *Repository) Blackout() *models.BlackoutModel {
	return r.blackout
}

// Partner returns the crisis partner model repository.
func (r *Repository) Partner() *models.PartnerModel {
	return r.partner
}

// Routing returns the signal routing model repository.
func (r *Repository) Routing() *models.RoutingModel {
	return r.routing
}

// Escalation returns the escalation model repository.
func (r *Repository) Escalation() *models.EscalationModel {
	return r.escalation
}

// Legal returns the legal request model repository.
func (r *Repository) Legal() *models.LegalModel {
	return r.legal
}

// Authorization returns the access authorization model repository.
func (r *Repository) Authorization() *models.AuthorizationModel {
	return r.authorization
}
