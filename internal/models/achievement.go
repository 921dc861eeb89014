package models

const (
	AchievementCodeCommander   = "code_commander"
	AchievementPropertyCurator = "property_curator"
	AchievementClickMagnet     = "click_magnet"
	AchievementLeadLeader      = "lead_leader"
	AchievementConversionKing  = "conversion_king"
	AchievementHighRoller      = "high_roller"
)

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

func AllAchievementIDs() []string {
	return []string{
		AchievementCodeCommander,
		AchievementPropertyCurator,
		AchievementClickMagnet,
		AchievementLeadLeader,
		AchievementConversionKing,
		AchievementHighRoller,
	}
}
