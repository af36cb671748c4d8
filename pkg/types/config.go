package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string  `json:"backend" yaml:"backend"`
	DataDir string  `json:"data_dir" yaml:"data_dir"`
	Budgets Budgets `json:"budgets" yaml:"budgets"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Budget and threshold defaults. The source design calls these out as
// tunable, so they live in configuration rather than constants.
const (
	DefaultManifestCeiling        = 2000
	DefaultBriefMin               = 300
	DefaultBriefMax               = 800
	DefaultStalenessWindowDays    = 180
	DefaultConsolidationThreshold = 3
	DefaultRunesPerToken          = 4
)

// Budgets carries the token budgets and lifecycle thresholds. Zero values
// mean "use the default"; negative values fail validation.
// Implements: prd010-configuration R2.
type Budgets struct {
	ManifestCeiling        int `json:"manifest_ceiling" yaml:"manifest_ceiling"`
	BriefMin               int `json:"brief_min" yaml:"brief_min"`
	BriefMax               int `json:"brief_max" yaml:"brief_max"`
	StalenessWindowDays    int `json:"staleness_window_days" yaml:"staleness_window_days"`
	ConsolidationThreshold int `json:"consolidation_threshold" yaml:"consolidation_threshold"`
	RunesPerToken          int `json:"runes_per_token" yaml:"runes_per_token"`
}

// Config validation errors (prd010-configuration R1.4).
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrBudgetNegative   = errors.New("budgets must not be negative")
	ErrBriefRangeInvert = errors.New("brief minimum exceeds brief maximum")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return c.Budgets.Validate()
}

// Validate checks the budget values. Zero means default, so only negative
// values and an inverted brief range are rejected.
func (b Budgets) Validate() error {
	for _, v := range []int{
		b.ManifestCeiling, b.BriefMin, b.BriefMax,
		b.StalenessWindowDays, b.ConsolidationThreshold, b.RunesPerToken,
	} {
		if v < 0 {
			return ErrBudgetNegative
		}
	}
	if b.BriefMin != 0 && b.BriefMax != 0 && b.BriefMin > b.BriefMax {
		return ErrBriefRangeInvert
	}
	return nil
}

// GetManifestCeiling returns the manifest token ceiling or its default.
func (b Budgets) GetManifestCeiling() int {
	if b.ManifestCeiling == 0 {
		return DefaultManifestCeiling
	}
	return b.ManifestCeiling
}

// GetBriefMin returns the brief token floor or its default.
func (b Budgets) GetBriefMin() int {
	if b.BriefMin == 0 {
		return DefaultBriefMin
	}
	return b.BriefMin
}

// GetBriefMax returns the brief token ceiling or its default.
func (b Budgets) GetBriefMax() int {
	if b.BriefMax == 0 {
		return DefaultBriefMax
	}
	return b.BriefMax
}

// GetStalenessWindowDays returns the cumulative staleness window or its default.
func (b Budgets) GetStalenessWindowDays() int {
	if b.StalenessWindowDays == 0 {
		return DefaultStalenessWindowDays
	}
	return b.StalenessWindowDays
}

// GetConsolidationThreshold returns the episodic consolidation threshold or
// its default.
func (b Budgets) GetConsolidationThreshold() int {
	if b.ConsolidationThreshold == 0 {
		return DefaultConsolidationThreshold
	}
	return b.ConsolidationThreshold
}

// GetRunesPerToken returns the token estimator divisor or its default.
func (b Budgets) GetRunesPerToken() int {
	if b.RunesPerToken == 0 {
		return DefaultRunesPerToken
	}
	return b.RunesPerToken
}
