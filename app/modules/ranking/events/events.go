package rankingevents

// Topics published by the ranking module.
const (
	WeeklySnapshotSavedTopic = "ranking.snapshot.saved"
	SeasonResetTopic         = "ranking.season.reset"
)

// WeeklySnapshotSavedPayload announces that a full standings snapshot was
// persisted for one week.
type WeeklySnapshotSavedPayload struct {
	Season int `json:"season"`
	Week   int `json:"week"`
	Teams  int `json:"teams"`
}

// SeasonResetPayload announces that every team's rating state was
// reinitialized from preseason inputs.
type SeasonResetPayload struct {
	Season int `json:"season"`
	Teams  int `json:"teams"`
}
