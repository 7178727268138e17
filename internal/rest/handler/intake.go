package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/routing"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// IntakeHandler accepts detections from the analysis service and runs them
// through the signal pipeline.
type IntakeHandler struct {
	pipeline *pipeline.Pipeline
	logger   *zap.Logger
}

// NewIntakeHandler creates an intake handler.
func NewIntakeHandler(p *pipeline.Pipeline, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{
		pipeline: p,
		logger:   logger,
	}
}

// SubmitSignal runs one detection through the pipeline. Sub-threshold
// detections answer 200 with stored=false; duplicates answer 409.
func (h *IntakeHandler) SubmitSignal(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.SubmitSignalRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	if body.Confidence < 0 || body.Confidence > 100 {
		return writeError(w, http.StatusBadRequest, errConfidenceRange)
	}

	severity, err := enum.FlagSeverityString(body.Severity)
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	level, err := enum.SensitivityLevelString(body.Settings.Level)
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	tier, err := enum.ThrottleTierString(body.Settings.Tier)
	if err != nil {
		return writeError(w, http.StatusBadRequest, err)
	}

	signal := &pipeline.Signal{
		Flag: &types.ConcernFlag{
			ID:         uuid.New(),
			ContentID:  body.ContentID,
			ChildID:    body.ChildID,
			FamilyID:   body.FamilyID,
			Category:   body.Category,
			Severity:   severity,
			Confidence: body.Confidence,
			Reasoning:  body.Reasoning,
			DetectedAt: body.DetectedAt,
		},
		Settings: &pipeline.FamilySettings{
			FamilyID:          body.FamilyID,
			Level:             level,
			CategoryOverrides: body.Settings.CategoryOverrides,
			Tier:              tier,
		},
		Day:             body.Day,
		ChildAge:        body.ChildAge,
		Jurisdiction:    body.Jurisdiction,
		FamilyStructure: body.FamilyStructure,
		Platform:        body.Platform,
		TriggerMethod:   body.TriggerMethod,
		DeviceID:        body.DeviceID,
	}

	outcome, err := h.pipeline.Process(req.Context(), signal, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, types.ErrFlagAlreadyExists):
			return writeError(w, http.StatusConflict, err)
		case errors.Is(err, routing.ErrInvalidJurisdiction),
			errors.Is(err, routing.ErrInvalidChildAge):
			return writeError(w, http.StatusBadRequest, err)
		}

		h.logger.Error("Failed to process signal", zap.Error(err))

		return writeError(w, http.StatusInternalServerError, errInternal)
	}

	response := restTypes.SubmitSignalResponse{
		Stored:    outcome.Stored,
		Delivered: outcome.Delivered,
	}
	if outcome.Stored {
		response.SignalID = signal.Flag.ID.String()
	}

	return bunrouter.JSON(w, response)
}
