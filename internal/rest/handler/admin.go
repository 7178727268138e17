package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/authorization"
	"github.com/harborlight/harborlight/internal/database"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/escalation"
	"github.com/harborlight/harborlight/internal/rest/convert"
	"github.com/harborlight/harborlight/internal/rest/middleware/auth"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PartnerCacheInvalidator drops the routing layer's cached partner list.
type PartnerCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// AdminHandler serves the administrative endpoints: partner registration,
// access authorizations, escalation reads and sealing, legal requests and
// suppression audit logs.
type AdminHandler struct {
	db             database.Client
	authorizations *authorization.Service
	tracker        *escalation.Tracker
	partnerCache   PartnerCacheInvalidator
	logger         *zap.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(
	db database.Client, authorizations *authorization.Service,
	tracker *escalation.Tracker, partnerCache PartnerCacheInvalidator, logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		db:             db,
		authorizations: authorizations,
		tracker:        tracker,
		partnerCache:   partnerCache,
		logger:         logger,
	}
}

// UpsertPartner registers or updates a crisis partner. The submitted API key
// is bcrypt-hashed before storage; the cached partner list is invalidated so
// routing picks the change up immediately.
func (h *AdminHandler) UpsertPartner(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.UpsertPartnerRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	if body.ID == "" || body.APIKey == "" {
		return writeError(w, http.StatusBadRequest, errPartnerInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.APIKey), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("Failed to hash partner API key", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	now := time.Now()
	partner := &types.CrisisPartner{
		ID:            body.ID,
		Name:          body.Name,
		WebhookURL:    body.WebhookURL,
		APIKeyHash:    string(hash),
		Active:        body.Active,
		Jurisdictions: body.Jurisdictions,
		Priority:      body.Priority,
		Capabilities:  body.Capabilities,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.db.Model().Partner().Upsert(req.Context(), partner); err != nil {
		if errors.Is(err, types.ErrInsecureWebhookURL) {
			return writeError(w, http.StatusBadRequest, err)
		}

		h.logger.Error("Failed to upsert partner", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	h.partnerCache.Invalidate(req.Context())

	return bunrouter.JSON(w, convert.Partner(partner))
}

// GetRoutingResults returns every routing attempt for a signal, oldest
// first.
func (h *AdminHandler) GetRoutingResults(w http.ResponseWriter, req bunrouter.Request) error {
	results, err := h.db.Model().Routing().GetResultsBySignal(req.Context(), req.Param("id"))
	if err != nil {
		h.logger.Error("Failed to get routing results", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.RoutingResults(results))
}

// GetThrottleState reports a child's alert accounting for the requested day.
func (h *AdminHandler) GetThrottleState(w http.ResponseWriter, req bunrouter.Request) error {
	day := req.URL.Query().Get("day")
	if day == "" {
		return writeError(w, http.StatusBadRequest, errMissingDay)
	}

	state, err := h.db.Model().Flag().GetThrottleState(req.Context(), req.Param("childId"), day)
	if err != nil {
		h.logger.Error("Failed to get throttle state", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.ThrottleState(state))
}

// RequestAuthorization files a sealed-signal access request for the calling
// admin.
func (h *AdminHandler) RequestAuthorization(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.RequestAuthorizationRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	authType, err := enum.AuthorizationTypeString(body.AuthorizationType)
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	adminID := auth.AdminID(req.Context())

	grant, err := h.authorizations.Request(
		req.Context(), adminID, body.SignalID, authType, body.Reason, time.Now())
	if err != nil {
		if errors.Is(err, types.ErrAuthorizationReason) {
			return writeError(w, http.StatusBadRequest, err)
		}

		h.logger.Error("Failed to request authorization", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, convert.Authorization(grant))
}

// ApproveAuthorization grants a pending authorization. The approver is the
// calling admin; self-approval is rejected.
func (h *AdminHandler) ApproveAuthorization(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	err = h.authorizations.Approve(req.Context(), id, auth.AdminID(req.Context()))
	if err != nil {
		return h.writeAuthorizationError(w, err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// DenyAuthorization rejects a pending authorization.
func (h *AdminHandler) DenyAuthorization(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	var body restTypes.DenyAuthorizationRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	err = h.authorizations.Deny(req.Context(), id, auth.AdminID(req.Context()), body.Reason)
	if err != nil {
		return h.writeAuthorizationError(w, err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ValidateAuthorization reports whether a grant currently authorizes reading
// the given signal. It always answers 200 with a boolean; an invalid grant
// is not an error condition here.
func (h *AdminHandler) ValidateAuthorization(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	valid, err := h.authorizations.Validate(req.Context(), id, req.URL.Query().Get("signalId"), time.Now())
	if err != nil {
		h.logger.Error("Failed to validate authorization", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, restTypes.ValidateAuthorizationResponse{Valid: valid})
}

// ConsumeAuthorization consumes a grant and returns the signal's escalation
// records, sealed ones included. The grant is spent even if the signal has
// no escalations.
func (h *AdminHandler) ConsumeAuthorization(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	var body restTypes.ConsumeAuthorizationRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	escalations, err := h.authorizations.ConsumeForRead(req.Context(), id, body.SignalID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrAuthorizationNotFound):
			return writeError(w, http.StatusNotFound, err)
		case errors.Is(err, types.ErrAuthorizationUsed),
			errors.Is(err, types.ErrAuthorizationInvalid):
			return writeError(w, http.StatusForbidden, err)
		}

		h.logger.Error("Failed to consume authorization", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.Escalations(escalations))
}

// GetEscalations returns the unsealed escalations for a signal. Sealed
// records never appear here regardless of caller.
func (h *AdminHandler) GetEscalations(w http.ResponseWriter, req bunrouter.Request) error {
	escalations, err := h.tracker.UnsealedBySignal(req.Context(), req.Param("id"))
	if err != nil {
		h.logger.Error("Failed to get escalations", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.Escalations(escalations))
}

// SealEscalation seals an escalation record.
func (h *AdminHandler) SealEscalation(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	err = h.tracker.Seal(req.Context(), id, auth.AdminID(req.Context()), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrEscalationNotFound):
			return writeError(w, http.StatusNotFound, err)
		case errors.Is(err, types.ErrEscalationAlreadySealed):
			return writeError(w, http.StatusConflict, err)
		}

		h.logger.Error("Failed to seal escalation", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// OpenLegalRequest files a legal-process request for sealed data.
func (h *AdminHandler) OpenLegalRequest(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.OpenLegalRequestRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	requestType, err := enum.LegalRequestTypeString(body.RequestType)
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	request, err := h.tracker.OpenLegalRequest(
		req.Context(), requestType, body.RequestingAgency, body.Jurisdiction,
		body.DocumentReference, body.SignalIDs, time.Now())
	if err != nil {
		if errors.Is(err, types.ErrLegalRequestNoSignals) {
			return writeError(w, http.StatusBadRequest, err)
		}

		h.logger.Error("Failed to open legal request", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, convert.LegalRequest(request))
}

// ReviewLegalRequest records the calling admin's review decision.
func (h *AdminHandler) ReviewLegalRequest(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	var body restTypes.ReviewLegalRequestRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	err = h.tracker.ReviewLegalRequest(
		req.Context(), id, auth.AdminID(req.Context()), body.Approved, body.Notes, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrLegalRequestNotFound):
			return writeError(w, http.StatusNotFound, err)
		case errors.Is(err, types.ErrLegalRequestNotPending):
			return writeError(w, http.StatusConflict, err)
		case errors.Is(err, types.ErrReviewerRequired):
			return writeError(w, http.StatusBadRequest, err)
		}

		h.logger.Error("Failed to review legal request", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// FulfillLegalRequest marks an approved legal request fulfilled by the
// calling admin.
func (h *AdminHandler) FulfillLegalRequest(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	err = h.tracker.FulfillLegalRequest(req.Context(), id, auth.AdminID(req.Context()), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrLegalRequestNotFound):
			return writeError(w, http.StatusNotFound, err)
		case errors.Is(err, types.ErrLegalRequestNotApproved):
			return writeError(w, http.StatusConflict, err)
		}

		h.logger.Error("Failed to fulfill legal request", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// GetSuppressionLogs returns a child's suppression audit entries.
func (h *AdminHandler) GetSuppressionLogs(w http.ResponseWriter, req bunrouter.Request) error {
	logs, err := h.db.Model().Suppression().GetLogsByChild(req.Context(), req.Param("childId"))
	if err != nil {
		h.logger.Error("Failed to get suppression logs", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.SuppressionLogs(logs))
}

// writeAuthorizationError maps authorization decision errors to statuses.
func (h *AdminHandler) writeAuthorizationError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, types.ErrAuthorizationNotFound):
		return writeError(w, http.StatusNotFound, err)
	case errors.Is(err, types.ErrSelfApproval):
		return writeError(w, http.StatusForbidden, err)
	case errors.Is(err, types.ErrAuthorizationNotPending):
		return writeError(w, http.StatusConflict, err)
	}

	h.logger.Error("Authorization decision failed", zap.Error(err))

	return writeError(w, http.StatusInternalServerError, errInternal)
}
