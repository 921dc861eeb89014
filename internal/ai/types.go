package ai

type Message struct {
	Author string `json:"author" validate:"oneof=user ai"`
	Text   string `json:"text"`
}

type PropertyAnalysisReport struct {
	Summary         string `json:"summary"`
	MarketSnapshot  string `json:"marketSnapshot"`
	RiskBreakdown   string `json:"riskBreakdown"`
	GrowthPotential string `json:"growthPotential"`
}

type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type InsightsReport struct {
	PerformanceSummary     string   `json:"performanceSummary"`
	KeyStrengths           []string `json:"keyStrengths"`
	OpportunitiesForGrowth []string `json:"opportunitiesForGrowth"`
	ActionableTips         []string `json:"actionableTips"`
}

type WeekPlan struct {
	Title   string   `json:"title"`
	Actions []string `json:"actions"`
}

type StrategicPlan struct {
	Week1 WeekPlan `json:"week1"`
	Week2 WeekPlan `json:"week2"`
	Week3 WeekPlan `json:"week3"`
	Week4 WeekPlan `json:"week4"`
}

// InsightsSnapshot is the aggregate picture sent to the insights and
// strategic-plan boundaries.
type InsightsSnapshot struct {
	TotalClicks               int
	TotalLeads                int
	TotalConversions          int
	TotalEarnings             float64
	TopPropertyByClicksName   string
	TopPropertyByEarningsName string
}

// TipSnapshot is the metrics package sent to the proactive-tip boundary.
type TipSnapshot struct {
	ReferralCodeSet         bool
	TotalClicks             int
	TotalLeads              int
	TotalConversions        int
	TotalEarnings           float64
	UnconvertedLeadCount    int
	NewestUnconvertedEmail  string
	TopPropertyByClicksName string
	SavedContentCount       int
}
