// types.go
package rankingtypes

// RankingEntry is one row of a standings snapshot, computed fresh from team
// and game state on each request.
type RankingEntry struct {
	Rank     int     `json:"rank"`
	Team     string  `json:"team"`
	Rating   float64 `json:"rating"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	SOS      float64 `json:"sos"`
	SOSRank  int     `json:"sos_rank"`
}

// SnapshotView is one historical point of a team's rating, used for trend
// charts and historical forecasts.
type SnapshotView struct {
	Season int     `json:"season"`
	Week   int     `json:"week"`
	Rank   int     `json:"rank"`
	Rating float64 `json:"rating"`
}
