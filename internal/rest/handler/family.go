package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/rest/convert"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// FamilyHandler serves the family-facing read surface. It reads exclusively
// through the visibility query, so held and throttled flags can never leak
// out through this handler.
type FamilyHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewFamilyHandler creates a family handler.
func NewFamilyHandler(db database.Client, logger *zap.Logger) *FamilyHandler {
	return &FamilyHandler{
		db:     db,
		logger: logger,
	}
}

// GetFlags returns the flags currently visible to a family.
func (h *FamilyHandler) GetFlags(w http.ResponseWriter, req bunrouter.Request) error {
	flags, err := h.db.Model().Flag().GetFamilyVisibleFlags(req.Context(), req.Param("familyId"))
	if err != nil {
		h.logger.Error("Failed to get family flags", zap.Error(err))
		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	return bunrouter.JSON(w, convert.Flags(flags))
}

// ReviewFlag closes a pending flag through ordinary parental review. Held
// flags cannot be reviewed; they follow the blackout rules instead.
func (h *FamilyHandler) ReviewFlag(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ReviewFlagRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	flagID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	flag, err := h.db.Model().Flag().GetFlag(req.Context(), flagID)
	if err != nil || flag.FamilyID != req.Param("familyId") {
		if err != nil && !errors.Is(err, types.ErrFlagNotFound) {
			h.logger.Error("Failed to load flag for review", zap.Error(err))
			return writeError(w, http.StatusInternalServerError, errInternal)
		}

		return writeError(w, http.StatusNotFound, types.ErrFlagNotFound)
	}

	if err := h.db.Model().Suppression().CloseByReview(req.Context(), flagID, body.Dismissed); err != nil {
		if errors.Is(err, types.ErrFlagNotPending) {
			return writeError(w, http.StatusConflict, err)
		}

		h.logger.Error("Failed to close flag by review", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
