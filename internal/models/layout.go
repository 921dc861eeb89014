package models

const (
	WidgetGoalProgress     = "goal_progress"
	WidgetConversionFunnel = "conversion_funnel"
	WidgetTopProperties    = "top_properties"
	WidgetAchievements     = "achievements"
	WidgetClicksChart      = "clicks_chart"
	WidgetEarningsChart    = "earnings_chart"
	WidgetLeadsList        = "leads_list"
)

type DashboardWidget struct {
	ID        string `json:"id"`
	IsVisible bool   `json:"isVisible"`
}

// DefaultDashboardLayout returns the canonical widget order with every
// widget visible.
func DefaultDashboardLayout() []DashboardWidget {
	return []DashboardWidget{
		{ID: WidgetGoalProgress, IsVisible: true},
		{ID: WidgetConversionFunnel, IsVisible: true},
		{ID: WidgetTopProperties, IsVisible: true},
		{ID: WidgetAchievements, IsVisible: true},
		{ID: WidgetClicksChart, IsVisible: true},
		{ID: WidgetEarningsChart, IsVisible: true},
		{ID: WidgetLeadsList, IsVisible: true},
	}
}

func KnownWidgetIDs() []string {
	defaults := DefaultDashboardLayout()
	ids := make([]string, 0, len(defaults))
	for _, widget := range defaults {
		ids = append(ids, widget.ID)
	}
	return ids
}
