package pipeline_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/setup/config"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveThreshold(t *testing.T) {
	t.Parallel()

	safety := config.DefaultSafety()
	thresholder := pipeline.NewThresholder(&safety)

	tests := []struct {
		name     string
		settings *pipeline.FamilySettings
		category string
		expected int
	}{
		{
			name:     "Sensitive level without override",
			settings: &pipeline.FamilySettings{Level: enum.SensitivityLevelSensitive},
			category: "Bullying",
			expected: 60,
		},
		{
			name:     "Balanced level without override",
			settings: &pipeline.FamilySettings{Level: enum.SensitivityLevelBalanced},
			category: "Bullying",
			expected: 75,
		},
		{
			name:     "Relaxed level without override",
			settings: &pipeline.FamilySettings{Level: enum.SensitivityLevelRelaxed},
			category: "Bullying",
			expected: 90,
		},
		{
			name: "Override wins over level",
			settings: &pipeline.FamilySettings{
				Level:             enum.SensitivityLevelRelaxed,
				CategoryOverrides: map[string]int{"Bullying": 65},
			},
			category: "Bullying",
			expected: 65,
		},
		{
			name: "Override clamped to floor",
			settings: &pipeline.FamilySettings{
				Level:             enum.SensitivityLevelBalanced,
				CategoryOverrides: map[string]int{"Bullying": 10},
			},
			category: "Bullying",
			expected: 50,
		},
		{
			name: "Override clamped to ceiling",
			settings: &pipeline.FamilySettings{
				Level:             enum.SensitivityLevelBalanced,
				CategoryOverrides: map[string]int{"Bullying": 99},
			},
			category: "Bullying",
			expected: 94,
		},
		{
			name: "Override for a different category is ignored",
			settings: &pipeline.FamilySettings{
				Level:             enum.SensitivityLevelBalanced,
				CategoryOverrides: map[string]int{"Profanity": 55},
			},
			category: "Bullying",
			expected: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, thresholder.EffectiveThreshold(tt.settings, tt.category))
		})
	}
}

func TestShouldSurface(t *testing.T) {
	t.Parallel()

	safety := config.DefaultSafety()
	thresholder := pipeline.NewThresholder(&safety)

	settings := &pipeline.FamilySettings{
		Level:             enum.SensitivityLevelRelaxed,
		CategoryOverrides: map[string]int{"Bullying": 94},
	}

	tests := []struct {
		name       string
		category   string
		confidence int
		expected   bool
	}{
		{name: "Below threshold is discarded", category: "Bullying", confidence: 80, expected: false},
		{name: "At threshold surfaces", category: "Bullying", confidence: 94, expected: true},
		{name: "Always-flag ceiling overrides tuning", category: "Bullying", confidence: 95, expected: true},
		{name: "Uncovered category uses level threshold", category: "Profanity", confidence: 90, expected: true},
		{name: "Uncovered category below level threshold", category: "Profanity", confidence: 89, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flag := &types.ConcernFlag{
				ID:         uuid.New(),
				Category:   tt.category,
				Confidence: tt.confidence,
			}
			assert.Equal(t, tt.expected, thresholder.ShouldSurface(flag, settings))
		})
	}
}
