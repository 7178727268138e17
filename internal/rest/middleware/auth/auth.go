// Package auth implements caller authentication for the REST API: crisis
// partners with bcrypt-verified pre-shared keys and administrators with
// statically configured keys.
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	partnerIDHeader  = "X-Partner-ID"
	partnerKeyHeader = "X-API-Key"
	adminIDHeader    = "X-Admin-ID"
	adminKeyHeader   = "X-Admin-Key"
)

type partnerCtxKey struct{}

type adminCtxKey struct{}

// PartnerID retrieves the authenticated partner identity from context.
func PartnerID(ctx context.Context) string {
	if id, ok := ctx.Value(partnerCtxKey{}).(string); ok {
		return id
	}

	return ""
}

// AdminID retrieves the authenticated admin identity from context.
func AdminID(ctx context.Context) string {
	if id, ok := ctx.Value(adminCtxKey{}).(string); ok {
		return id
	}

	return ""
}

// PartnerGetter looks up a crisis partner by identity. The database partner
// model satisfies it.
type PartnerGetter interface {
	GetByID(ctx context.Context, id string) (*types.CrisisPartner, error)
}

// Middleware authenticates partner and admin callers.
type Middleware struct {
	partners PartnerGetter
	config   *config.APIConfig
	logger   *zap.Logger
}

// New creates an auth middleware.
func New(partners PartnerGetter, config *config.APIConfig, logger *zap.Logger) *Middleware {
	return &Middleware{
		partners: partners,
		config:   config,
		logger:   logger.Named("auth"),
	}
}

// Partner returns a bunrouter middleware that authenticates a crisis partner
// by its pre-shared API key. Requests without a valid key never reach the
// handler.
func (m *Middleware) Partner(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		partnerID := req.Header.Get(partnerIDHeader)
		apiKey := req.Header.Get(partnerKeyHeader)

		if partnerID == "" || apiKey == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return nil
		}

		partner, err := m.partners.GetByID(req.Context(), partnerID)
		if err != nil || !partner.Active {
			m.logger.Warn("Partner authentication failed",
				zap.String("partnerID", partnerID))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

			return nil
		}

		if bcrypt.CompareHashAndPassword([]byte(partner.APIKeyHash), []byte(apiKey)) != nil {
			m.logger.Warn("Partner API key mismatch",
				zap.String("partnerID", partnerID))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

			return nil
		}

		ctx := context.WithValue(req.Context(), partnerCtxKey{}, partner.ID)

		return next(w, req.WithContext(ctx))
	}
}

// Admin returns a bunrouter middleware that authenticates an administrator
// against the statically configured key set.
func (m *Middleware) Admin(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		adminID := req.Header.Get(adminIDHeader)
		adminKey := req.Header.Get(adminKeyHeader)

		expected, ok := m.config.AdminKeys[adminID]
		if adminID == "" || !ok ||
			subtle.ConstantTimeCompare([]byte(expected), []byte(adminKey)) != 1 {
			m.logger.Warn("Admin authentication failed",
				zap.String("adminID", adminID))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

			return nil
		}

		ctx := context.WithValue(req.Context(), adminCtxKey{}, adminID)

		return next(w, req.WithContext(ctx))
	}
}
