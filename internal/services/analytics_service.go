package services

import (
	"time"

	"github.com/terraincognita07/refboard/internal/models"
)

const dailySeriesDays = 7

type ClickReader interface {
	All() []models.ClickEvent
}

type PropertyResolver interface {
	ByID(id string) (models.Property, bool)
}

type AnalyticsService struct {
	clicks     ClickReader
	properties PropertyResolver
}

type AnalyticsOverview struct {
	TotalClicks      int                 `json:"totalClicks"`
	ClicksByProperty map[string]int      `json:"clicksByProperty"`
	TopProperty      *models.Property    `json:"topProperty"`
	DailyClicks      []models.DailyClick `json:"dailyClicks"`
}

func NewAnalyticsService(clicks ClickReader, properties PropertyResolver) *AnalyticsService {
	return &AnalyticsService{
		clicks:     clicks,
		properties: properties,
	}
}

func (service *AnalyticsService) BuildOverview(now time.Time) AnalyticsOverview {
	clicks := service.clicks.All()

	counts := CountClicksByProperty(clicks)
	overview := AnalyticsOverview{
		TotalClicks:      len(clicks),
		ClicksByProperty: counts,
		DailyClicks:      DailyClickSeries(clicks, now),
	}

	if topPropertyID := TopPropertyID(counts); topPropertyID != "" {
		if property, found := service.properties.ByID(topPropertyID); found {
			overview.TopProperty = &property
		}
	}
	return overview
}

func CountClicksByProperty(clicks []models.ClickEvent) map[string]int {
	counts := make(map[string]int, len(clicks))
	for _, click := range clicks {
		counts[click.PropertyID]++
	}
	return counts
}

// TopPropertyID picks the property with the most clicks. Ties break to
// the lexicographically smallest property id so the result is stable
// regardless of map iteration order.
func TopPropertyID(counts map[string]int) string {
	topID := ""
	topCount := 0
	for propertyID, count := range counts {
		if count > topCount || (count == topCount && topCount > 0 && propertyID < topID) {
			topID = propertyID
			topCount = count
		}
	}
	return topID
}

// DailyClickSeries buckets clicks into the trailing 7 UTC calendar days
// ending today, oldest first, zero-filling days without activity.
func DailyClickSeries(clicks []models.ClickEvent, now time.Time) []models.DailyClick {
	countsByDate := make(map[string]int, len(clicks))
	for _, click := range clicks {
		countsByDate[utcDateOfMillis(click.Timestamp)]++
	}

	series := make([]models.DailyClick, 0, dailySeriesDays)
	for _, date := range trailingUTCDates(now, dailySeriesDays) {
		series = append(series, models.DailyClick{
			Date:  date,
			Count: countsByDate[date],
		})
	}
	return series
}

func utcDateOfMillis(millis int64) string {
	return time.UnixMilli(millis).UTC().Format("2006-01-02")
}

func trailingUTCDates(now time.Time, days int) []string {
	today := now.UTC().Truncate(24 * time.Hour)
	dates := make([]string, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		dates = append(dates, today.AddDate(0, 0, -offset).Format("2006-01-02"))
	}
	return dates
}
