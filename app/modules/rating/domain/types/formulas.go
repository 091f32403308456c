package ratingtypes

import "math"

// ExpectedScore returns the probability, in (0,1), that a team rated ratingA
// beats a team rated ratingB under the standard logistic model. The function
// is symmetric: ExpectedScore(a, b) + ExpectedScore(b, a) == 1.
func ExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// MOVMultiplier scales a rating swing by margin of victory. Signal from
// blowouts is damped logarithmically and saturates at cap; a differential of
// zero or less is neutral. Monotonically non-decreasing in differential.
func MOVMultiplier(pointDifferential int, movCap float64) float64 {
	if pointDifferential <= 0 {
		return 1.0
	}
	return math.Min(math.Log(float64(pointDifferential)+1), movCap)
}

// TierFactors are the winner and loser multipliers applied to a cross-tier
// result.
type TierFactors struct {
	Winner float64
	Loser  float64
}

type tierPair struct {
	winner Tier
	loser  Tier
}

// conferenceFactors is an explicit table over all tier combinations so the
// model stays auditable. Beating down a tier is discounted for the favorite
// and amplified for the underdog; FCS results are discounted hardest.
var conferenceFactors = map[tierPair]TierFactors{
	{TierPower, TierPower}: {Winner: 1.0, Loser: 1.0},
	{TierG5, TierG5}:       {Winner: 1.0, Loser: 1.0},
	{TierFCS, TierFCS}:     {Winner: 1.0, Loser: 1.0},

	{TierPower, TierG5}: {Winner: 0.9, Loser: 1.1},
	{TierG5, TierPower}: {Winner: 1.1, Loser: 0.9},

	{TierPower, TierFCS}: {Winner: 0.5, Loser: 2.0},
	{TierG5, TierFCS}:    {Winner: 0.5, Loser: 2.0},
	{TierFCS, TierPower}: {Winner: 2.0, Loser: 0.5},
	{TierFCS, TierG5}:    {Winner: 2.0, Loser: 0.5},
}

// ConferenceMultipliers looks up the winner/loser factors for a result
// between the given tiers. Unknown tiers fall back to neutral.
func ConferenceMultipliers(winnerTier, loserTier Tier) TierFactors {
	if f, ok := conferenceFactors[tierPair{winnerTier, loserTier}]; ok {
		return f
	}
	return TierFactors{Winner: 1.0, Loser: 1.0}
}

// ratingBucket is one step of an ordered threshold function: ranks at or
// below Max earn Bonus. Breakpoints are product-defined constants, not
// derived from data.
type ratingBucket struct {
	Max   int
	Bonus float64
}

var recruitingBuckets = []ratingBucket{
	{Max: 5, Bonus: 200},
	{Max: 10, Bonus: 150},
	{Max: 25, Bonus: 100},
	{Max: 50, Bonus: 50},
	{Max: 75, Bonus: 25},
}

// Transfer-portal classes carry half the recruiting weight.
var transferBuckets = []ratingBucket{
	{Max: 5, Bonus: 100},
	{Max: 10, Bonus: 75},
	{Max: 25, Bonus: 50},
	{Max: 50, Bonus: 25},
}

func bucketBonus(rank int, buckets []ratingBucket) float64 {
	if rank <= 0 {
		return 0
	}
	for _, b := range buckets {
		if rank <= b.Max {
			return b.Bonus
		}
	}
	return 0
}

// returningProductionBonus rewards rosters that keep most of last season's
// production: >= 0.80 earns 40, >= 0.60 earns 25, >= 0.40 earns 10.
func returningProductionBonus(fraction float64) float64 {
	switch {
	case fraction >= 0.80:
		return 40
	case fraction >= 0.60:
		return 25
	case fraction >= 0.40:
		return 10
	default:
		return 0
	}
}

// PreseasonComposite derives a team's initial rating from its preseason
// inputs: a tier baseline (1300 for FCS, 1500 otherwise) plus recruiting,
// transfer-portal, and returning-production bonuses. The 999 unranked
// sentinel naturally earns no bonus.
func PreseasonComposite(team *Team) float64 {
	base := 1500.0
	if team.Tier == TierFCS {
		base = 1300.0
	}
	base += bucketBonus(team.RecruitingRank, recruitingBuckets)
	base += bucketBonus(team.TransferRank, transferBuckets)
	base += returningProductionBonus(team.ReturningProduction)
	return base
}
