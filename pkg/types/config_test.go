package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "sqlite backend",
			config: Config{Backend: BackendSQLite, DataDir: ".strata-db"},
		},
		{
			name:    "empty backend",
			config:  Config{DataDir: ".strata-db"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "negative budget",
			config:  Config{Backend: BackendSQLite, Budgets: Budgets{BriefMin: -1}},
			wantErr: ErrBudgetNegative,
		},
		{
			name:    "inverted brief range",
			config:  Config{Backend: BackendSQLite, Budgets: Budgets{BriefMin: 900, BriefMax: 300}},
			wantErr: ErrBriefRangeInvert,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudgetsZeroMeansDefault(t *testing.T) {
	var b Budgets
	assert.Equal(t, DefaultManifestCeiling, b.GetManifestCeiling())
	assert.Equal(t, DefaultBriefMin, b.GetBriefMin())
	assert.Equal(t, DefaultBriefMax, b.GetBriefMax())
	assert.Equal(t, DefaultStalenessWindowDays, b.GetStalenessWindowDays())
	assert.Equal(t, DefaultConsolidationThreshold, b.GetConsolidationThreshold())
	assert.Equal(t, DefaultRunesPerToken, b.GetRunesPerToken())
}

func TestBudgetsExplicitValuesWin(t *testing.T) {
	b := Budgets{
		ManifestCeiling:        1500,
		BriefMin:               200,
		BriefMax:               600,
		StalenessWindowDays:    90,
		ConsolidationThreshold: 5,
		RunesPerToken:          3,
	}
	assert.Equal(t, 1500, b.GetManifestCeiling())
	assert.Equal(t, 200, b.GetBriefMin())
	assert.Equal(t, 600, b.GetBriefMax())
	assert.Equal(t, 90, b.GetStalenessWindowDays())
	assert.Equal(t, 5, b.GetConsolidationThreshold())
	assert.Equal(t, 3, b.GetRunesPerToken())
}

func TestBudgetsHalfSetBriefRange(t *testing.T) {
	// A set minimum with an unset maximum must not trip the inversion
	// check even when the minimum exceeds the default maximum.
	b := Budgets{BriefMin: 1000}
	assert.NoError(t, b.Validate())
}
