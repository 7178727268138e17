package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/blackout"
	"github.com/harborlight/harborlight/internal/database"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/escalation"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/rest/convert"
	"github.com/harborlight/harborlight/internal/rest/middleware/auth"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// PartnerHandler serves the endpoints crisis partners call back on:
// acknowledgment, blackout control and escalation reporting.
type PartnerHandler struct {
	db         database.Client
	blackouts  *blackout.Controller
	suppressor *pipeline.Suppressor
	tracker    *escalation.Tracker
	logger     *zap.Logger
}

// NewPartnerHandler creates a partner handler.
func NewPartnerHandler(
	db database.Client, blackouts *blackout.Controller, suppressor *pipeline.Suppressor,
	tracker *escalation.Tracker, logger *zap.Logger,
) *PartnerHandler {
	return &PartnerHandler{
		db:         db,
		blackouts:  blackouts,
		suppressor: suppressor,
		tracker:    tracker,
		logger:     logger,
	}
}

// Acknowledge records the partner's confirmation for a routed signal.
func (h *PartnerHandler) Acknowledge(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.AcknowledgeRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	partnerID := auth.PartnerID(req.Context())
	signalID := req.Param("id")

	err := h.db.Model().Routing().Acknowledge(
		req.Context(), signalID, partnerID, body.PartnerReferenceID, time.Now())
	if err != nil {
		if errors.Is(err, types.ErrRoutingResultMissing) {
			return writeError(w, http.StatusNotFound, err)
		}

		h.logger.Error("Failed to acknowledge signal", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ExtendBlackout pushes the signal's blackout window forward by an allowed
// increment.
func (h *PartnerHandler) ExtendBlackout(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ExtendBlackoutRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	partnerID := auth.PartnerID(req.Context())
	signalID := req.Param("id")

	record, err := h.blackouts.Extend(
		req.Context(), signalID, partnerID, body.Hours, body.Reason, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrBlackoutNotFound):
			return writeError(w, http.StatusNotFound, err)
		case errors.Is(err, types.ErrInvalidExtensionHours),
			errors.Is(err, types.ErrExtensionReasonRequired):
			return writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, types.ErrBlackoutExpired),
			errors.Is(err, types.ErrMaxCumulativeExtension):
			return writeError(w, http.StatusConflict, err)
		}

		h.logger.Error("Failed to extend blackout", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.Blackout(record))
}

// ReleaseBlackout ends the signal's blackout before expiry.
func (h *PartnerHandler) ReleaseBlackout(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ReleaseBlackoutRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	partnerID := auth.PartnerID(req.Context())
	signalID := req.Param("id")

	record, err := h.blackouts.ReleaseEarly(req.Context(), signalID, partnerID, body.Reason, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrBlackoutNotFound):
			return writeError(w, http.StatusNotFound, err)
		case errors.Is(err, types.ErrReleaseReasonRequired):
			return writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, types.ErrBlackoutNotActive):
			return writeError(w, http.StatusConflict, err)
		}

		h.logger.Error("Failed to release blackout", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.Blackout(record))
}

// ReleaseHold releases a signal's sensitive hold before its window on the
// partner's authority.
func (h *PartnerHandler) ReleaseHold(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ReleaseHoldRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	flagID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	flag, err := h.db.Model().Flag().GetFlag(req.Context(), flagID)
	if err != nil {
		if errors.Is(err, types.ErrFlagNotFound) {
			return writeError(w, http.StatusNotFound, err)
		}

		h.logger.Error("Failed to load flag for hold release", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	partnerID := auth.PartnerID(req.Context())

	err = h.suppressor.ReleaseEarly(req.Context(), flag, partnerID, body.Reason, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrFlagNotHeld):
			return writeError(w, http.StatusConflict, err)
		case errors.Is(err, types.ErrReleaseReasonRequired):
			return writeError(w, http.StatusBadRequest, err)
		}

		h.logger.Error("Failed to release hold", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ReportEscalation records a partner-side escalation of a routed signal.
func (h *PartnerHandler) ReportEscalation(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ReportEscalationRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	escalationType, err := enum.EscalationTypeString(body.EscalationType)
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	partnerID := auth.PartnerID(req.Context())
	signalID := req.Param("id")

	record, err := h.tracker.Report(
		req.Context(), signalID, partnerID, escalationType, body.Jurisdiction, time.Now())
	if err != nil {
		h.logger.Error("Failed to record escalation", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, convert.Escalation(record))
}
