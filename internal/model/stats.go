package model

// Badge is a threshold-derived achievement marker. Badges carry no persisted
// state; they are recomputed from live counts on every read.
type Badge string

const (
	BadgeFirstSubmission Badge = "First Submission"
	BadgeGreenStarter    Badge = "Green Starter"
	BadgeEcoCollector    Badge = "Eco Collector"
	BadgePlanetGuardian  Badge = "Planet Guardian"
)

// UserStats holds per-address counts rebuilt from ledger scans. Address is
// the lowercased hex form used as the aggregation key.
type UserStats struct {
	Address   string
	Submitted int
	Verified  int
}

// LeaderboardRow is a single display row: a UserStats projection merged with
// seed entries. Self marks the requesting user's own row.
type LeaderboardRow struct {
	Address  string
	Verified int
	Badges   []Badge
	Self     bool
}
