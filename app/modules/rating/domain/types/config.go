package ratingtypes

// KPolicy selects how the K-factor is derived from the week a game was
// played. The set is closed; adding a policy means adding a case here.
type KPolicy string

const (
	// KPolicyFixed applies the same K-factor to every week.
	KPolicyFixed KPolicy = "fixed"
	// KPolicyLateSeasonTaper reduces K once conference play tightens, so
	// early-season noise moves ratings more than late-season results.
	KPolicyLateSeasonTaper KPolicy = "late_season_taper"
)

// EngineConfig collects every tunable constant of the rating model in one
// place. Two different MOV caps exist on purpose: game processing saturates
// at 2.5 while analysis surfaces saturate at 2.0, and the drift between call
// sites is an intentional parameter rather than an accident.
type EngineConfig struct {
	KFactor            float64 `yaml:"k_factor"`
	KPolicy            KPolicy `yaml:"k_policy"`
	HomeFieldAdvantage float64 `yaml:"home_field_advantage"`
	ProcessMOVCap      float64 `yaml:"process_mov_cap"`
	AnalysisMOVCap     float64 `yaml:"analysis_mov_cap"`
	MinWeek            int     `yaml:"min_week"`
	MaxWeek            int     `yaml:"max_week"`
	MinSeason          int     `yaml:"min_season"`
	MaxSeason          int     `yaml:"max_season"`

	// TieGoesToHome controls which side is credited when final scores are
	// equal. Graded games do not tie in this sport; the away-side default
	// mirrors long-standing comparison behavior and is kept configurable
	// because it was never a deliberate product rule.
	TieGoesToHome bool `yaml:"tie_goes_to_home"`

	// Score projection constants for forecasts.
	BaselinePoints   float64 `yaml:"baseline_points"`
	PointsPerHundred float64 `yaml:"points_per_hundred"`
	MaxProjectedPts  float64 `yaml:"max_projected_points"`
}

// DefaultEngineConfig returns the production constants.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		KFactor:            32,
		KPolicy:            KPolicyFixed,
		HomeFieldAdvantage: 65,
		ProcessMOVCap:      2.5,
		AnalysisMOVCap:     2.0,
		MinWeek:            0,
		MaxWeek:            19,
		MinSeason:          1869,
		MaxSeason:          2100,
		BaselinePoints:     30,
		PointsPerHundred:   3.5,
		MaxProjectedPts:    150,
	}
}

// KForWeek resolves the K-factor for a game played in the given week.
func (c EngineConfig) KForWeek(week int) float64 {
	switch c.KPolicy {
	case KPolicyLateSeasonTaper:
		if week >= 10 {
			return c.KFactor * 0.75
		}
		return c.KFactor
	default:
		return c.KFactor
	}
}

// WeekInRange reports whether week falls inside the accepted schedule window,
// postseason included.
func (c EngineConfig) WeekInRange(week int) bool {
	return week >= c.MinWeek && week <= c.MaxWeek
}

// SeasonInRange reports whether the season year is plausible.
func (c EngineConfig) SeasonInRange(season int) bool {
	return season >= c.MinSeason && season <= c.MaxSeason
}
