package services

import "github.com/terraincognita07/refboard/internal/models"

const (
	clickMagnetThreshold = 10
	highRollerThreshold  = 100.0
)

// AchievementMetrics is the snapshot every rule is re-evaluated against.
type AchievementMetrics struct {
	ReferralCodeSet  bool
	FavoriteCount    int
	TotalClicks      int
	TotalLeads       int
	TotalConversions int
	TotalEarnings    float64
}

type SeenLedger interface {
	All() map[string]struct{}
	Add(achievementIDs ...string) error
}

type AchievementService struct {
	seen SeenLedger
}

func NewAchievementService(seen SeenLedger) *AchievementService {
	return &AchievementService{seen: seen}
}

// EvaluateAchievements recomputes unlock state from scratch. Unlocks are
// monotonic for as long as the underlying records persist: the
// predicates only cross their thresholds upward under append-only data.
func EvaluateAchievements(metrics AchievementMetrics) []models.Achievement {
	achievements := make([]models.Achievement, 0, len(models.AllAchievementIDs()))
	for _, id := range models.AllAchievementIDs() {
		achievements = append(achievements, models.Achievement{
			ID:       id,
			Unlocked: achievementUnlocked(id, metrics),
		})
	}
	return achievements
}

func achievementUnlocked(id string, metrics AchievementMetrics) bool {
	switch id {
	case models.AchievementCodeCommander:
		return metrics.ReferralCodeSet
	case models.AchievementPropertyCurator:
		return metrics.FavoriteCount > 0
	case models.AchievementClickMagnet:
		return metrics.TotalClicks >= clickMagnetThreshold
	case models.AchievementLeadLeader:
		return metrics.TotalLeads >= 1
	case models.AchievementConversionKing:
		return metrics.TotalConversions >= 1
	case models.AchievementHighRoller:
		return metrics.TotalEarnings >= highRollerThreshold
	default:
		return false
	}
}

// Refresh evaluates every rule and marks unlocked achievements that are
// absent from the seen ledger, returning them exactly once for
// notification. Clearing the ledger re-arms notifications without
// touching unlock state.
func (service *AchievementService) Refresh(metrics AchievementMetrics) ([]models.Achievement, []string, error) {
	achievements := EvaluateAchievements(metrics)
	seen := service.seen.All()

	newlyUnlocked := make([]string, 0)
	for _, achievement := range achievements {
		if !achievement.Unlocked {
			continue
		}
		if _, alreadySeen := seen[achievement.ID]; alreadySeen {
			continue
		}
		newlyUnlocked = append(newlyUnlocked, achievement.ID)
	}

	if len(newlyUnlocked) > 0 {
		if err := service.seen.Add(newlyUnlocked...); err != nil {
			return achievements, nil, err
		}
	}
	return achievements, newlyUnlocked, nil
}
