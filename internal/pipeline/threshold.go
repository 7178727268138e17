package pipeline

import (
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/setup/config"
)

// FamilySettings carries the per-family tuning the pipeline evaluates flags
// against. It is owned by the profile CRUD side of the product; the pipeline
// only reads it.
type FamilySettings struct {
	FamilyID string
	// Level selects the base confidence threshold.
	Level enum.SensitivityLevel
	// CategoryOverrides maps a concern category to a custom threshold.
	// Values are clamped to the configured floor and ceiling.
	CategoryOverrides map[string]int
	// Tier selects the daily alert limit.
	Tier enum.ThrottleTier
}

// Thresholder decides whether a raw concern flag surfaces at all. Flags
// below the effective threshold are discarded outright; they are a noise
// floor, not a retryable failure, and are never stored.
type Thresholder struct {
	safety *config.Safety
}

// NewThresholder creates a thresholder with the given pipeline constants.
func NewThresholder(safety *config.Safety) *Thresholder {
	return &Thresholder{safety: safety}
}

// EffectiveThreshold returns the confidence a flag in the given category
// must reach for this family. A per-category override wins over the family
// level; overrides are clamped so a family can neither silence a category
// entirely nor force noise through.
func (t *Thresholder) EffectiveThreshold(settings *FamilySettings, category string) int {
	if override, ok := settings.CategoryOverrides[category]; ok {
		if override < t.safety.ThresholdFloor {
			return t.safety.ThresholdFloor
		}

		if override > t.safety.ThresholdCeiling {
			return t.safety.ThresholdCeiling
		}

		return override
	}

	return t.safety.ThresholdForLevel(settings.Level)
}

// ShouldSurface reports whether the flag clears the confidence gate. A flag
// at or above the always-flag ceiling surfaces regardless of family tuning.
func (t *Thresholder) ShouldSurface(flag *types.ConcernFlag, settings *FamilySettings) bool {
	if flag.Confidence >= t.safety.AlwaysFlagThreshold {
		return true
	}

	return flag.Confidence >= t.EffectiveThreshold(settings, flag.Category)
}
