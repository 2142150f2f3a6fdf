package stats

import (
	"errors"
	"sort"
	"strings"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

const leaderboardSize = 5

// Placeholder rows keep the board populated before real activity exists.
// They compete with scanned entries on equal terms.
var seedRows = []model.LeaderboardRow{
	{Address: "0x1111...aaaa", Verified: 25, Badges: []model.Badge{
		model.BadgeFirstSubmission, model.BadgeGreenStarter, model.BadgeEcoCollector, model.BadgePlanetGuardian,
	}},
	{Address: "0x2222...bbbb", Verified: 14, Badges: []model.Badge{
		model.BadgeFirstSubmission, model.BadgeGreenStarter, model.BadgeEcoCollector,
	}},
	{Address: "0x3333...cccc", Verified: 5, Badges: []model.Badge{
		model.BadgeFirstSubmission, model.BadgeGreenStarter,
	}},
	{Address: "0x4444...dddd", Verified: 2, Badges: []model.Badge{
		model.BadgeFirstSubmission,
	}},
}

// Leaderboard is the board projection for one requesting user.
type Leaderboard struct {
	Rows []model.LeaderboardRow
	// Rank is the requester's 1-based position in the full merged board;
	// zero means unranked.
	Rank int
	You  model.UserStats
}

// LeaderboardService projects the aggregate snapshot into display rows.
type LeaderboardService struct {
	source StatsSource
	logger *zap.Logger
}

// NewLeaderboardService builds a LeaderboardService.
func NewLeaderboardService(source StatsSource, logger *zap.Logger) (*LeaderboardService, error) {
	if source == nil {
		return nil, errors.New("stats source is required")
	}
	return &LeaderboardService{
		source: source,
		logger: logger.Named("leaderboard"),
	}, nil
}

// Compute merges the seed rows with the scanned aggregates, sorts the union
// descending by verified count (stable, so ties keep merge order with seeds
// first), and truncates to the top rows. The requester's rank comes from the
// untruncated union. address may be empty for an anonymous request.
func (s *LeaderboardService) Compute(address string) *Leaderboard {
	byAddr, _ := s.source.Snapshot()
	requester := strings.ToLower(address)

	merged := make([]model.LeaderboardRow, 0, len(seedRows)+len(byAddr))
	merged = append(merged, seedRows...)

	scanned := make([]model.UserStats, 0, len(byAddr))
	for _, entry := range byAddr {
		scanned = append(scanned, entry)
	}
	sort.Slice(scanned, func(i, j int) bool { return scanned[i].Address < scanned[j].Address })

	for _, entry := range scanned {
		row := model.LeaderboardRow{
			Address:  entry.Address,
			Verified: entry.Verified,
		}
		if requester != "" && entry.Address == requester {
			row.Self = true
			row.Badges = BadgesFor(entry.Submitted)
		}
		merged = append(merged, row)
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Verified > merged[j].Verified })

	board := &Leaderboard{You: model.UserStats{Address: requester}}
	for i, row := range merged {
		if row.Self {
			board.Rank = i + 1
		}
	}
	if requester != "" {
		if entry, ok := s.source.Lookup(requester); ok {
			board.You = entry
		}
	}

	if len(merged) > leaderboardSize {
		merged = merged[:leaderboardSize]
	}
	board.Rows = merged
	return board
}
