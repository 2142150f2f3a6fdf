package stats

import "github.com/recyclechain/ewaste-backend/internal/model"

// BadgesFor derives the badge set from a submission count. Thresholds are
// cumulative: each tier keeps every badge below it.
func BadgesFor(submitted int) []model.Badge {
	if submitted < 1 {
		return nil
	}

	badges := []model.Badge{model.BadgeFirstSubmission, model.BadgeGreenStarter}
	if submitted >= 5 {
		badges = append(badges, model.BadgeEcoCollector)
	}
	if submitted >= 10 {
		badges = append(badges, model.BadgePlanetGuardian)
	}
	return badges
}
