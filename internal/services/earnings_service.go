package services

import (
	"time"

	"github.com/terraincognita07/refboard/internal/models"
)

// Fixed commission-rate policy applied to investment amounts. Earnings
// are always derived, never stored.
const (
	ReferrerCommissionRate = 0.015
	RefereeCommissionRate  = 0.005
)

type LeadReader interface {
	All() []models.Lead
}

type ConversionReader interface {
	All() []models.Conversion
}

type EarningsService struct {
	clicks      ClickReader
	leads       LeadReader
	conversions ConversionReader
	properties  PropertyResolver
}

type FunnelMetrics struct {
	TotalClicks           int     `json:"totalClicks"`
	TotalLeads            int     `json:"totalLeads"`
	TotalConversions      int     `json:"totalConversions"`
	ClickToLeadRate       float64 `json:"clickToLeadRate"`
	LeadToConversionRate  float64 `json:"leadToConversionRate"`
	ClickToConversionRate float64 `json:"clickToConversionRate"`
}

type EarningsOverview struct {
	TotalEarnings      float64               `json:"totalEarnings"`
	EarningsByProperty map[string]float64    `json:"earningsByProperty"`
	TopProperty        *models.Property      `json:"topProperty"`
	DailyEarnings      []models.DailyEarning `json:"dailyEarnings"`
}

func NewEarningsService(clicks ClickReader, leads LeadReader, conversions ConversionReader, properties PropertyResolver) *EarningsService {
	return &EarningsService{
		clicks:      clicks,
		leads:       leads,
		conversions: conversions,
		properties:  properties,
	}
}

// BuildFunnel derives conversion rates; every rate with a zero
// denominator is 0, never a division fault.
func (service *EarningsService) BuildFunnel() FunnelMetrics {
	totalClicks := len(service.clicks.All())
	totalLeads := len(service.leads.All())
	totalConversions := len(service.conversions.All())

	return FunnelMetrics{
		TotalClicks:           totalClicks,
		TotalLeads:            totalLeads,
		TotalConversions:      totalConversions,
		ClickToLeadRate:       percentage(totalLeads, totalClicks),
		LeadToConversionRate:  percentage(totalConversions, totalLeads),
		ClickToConversionRate: percentage(totalConversions, totalClicks),
	}
}

func (service *EarningsService) BuildOverview(now time.Time) EarningsOverview {
	conversions := service.conversions.All()

	byProperty := EarningsByProperty(conversions)
	overview := EarningsOverview{
		TotalEarnings:      TotalEarnings(conversions),
		EarningsByProperty: byProperty,
		DailyEarnings:      DailyEarningSeries(conversions, now),
	}

	if topPropertyID := TopEarningPropertyID(byProperty); topPropertyID != "" {
		if property, found := service.properties.ByID(topPropertyID); found {
			overview.TopProperty = &property
		}
	}
	return overview
}

func (service *EarningsService) TotalEarnings() float64 {
	return TotalEarnings(service.conversions.All())
}

func ReferrerEarnings(investmentAmount float64) float64 {
	return investmentAmount * ReferrerCommissionRate
}

func RefereeBonus(investmentAmount float64) float64 {
	return investmentAmount * RefereeCommissionRate
}

func TotalEarnings(conversions []models.Conversion) float64 {
	total := 0.0
	for _, conversion := range conversions {
		total += ReferrerEarnings(conversion.InvestmentAmount)
	}
	return total
}

func EarningsByProperty(conversions []models.Conversion) map[string]float64 {
	earnings := make(map[string]float64, len(conversions))
	for _, conversion := range conversions {
		earnings[conversion.PropertyID] += ReferrerEarnings(conversion.InvestmentAmount)
	}
	return earnings
}

// TopEarningPropertyID uses the same deterministic tie-break as the
// click ranking: highest total, then lexicographically smallest id.
func TopEarningPropertyID(earnings map[string]float64) string {
	topID := ""
	topAmount := 0.0
	for propertyID, amount := range earnings {
		if amount > topAmount || (amount == topAmount && topAmount > 0 && propertyID < topID) {
			topID = propertyID
			topAmount = amount
		}
	}
	return topID
}

// DailyEarningSeries buckets conversion earnings into the trailing 7
// UTC calendar days ending today, oldest first, zero-filled.
func DailyEarningSeries(conversions []models.Conversion, now time.Time) []models.DailyEarning {
	amountsByDate := make(map[string]float64, len(conversions))
	for _, conversion := range conversions {
		amountsByDate[utcDateOfMillis(conversion.Timestamp)] += ReferrerEarnings(conversion.InvestmentAmount)
	}

	series := make([]models.DailyEarning, 0, dailySeriesDays)
	for _, date := range trailingUTCDates(now, dailySeriesDays) {
		series = append(series, models.DailyEarning{
			Date:   date,
			Amount: amountsByDate[date],
		})
	}
	return series
}

// GoalProgressPercent reports earnings against the monthly goal,
// clamped to [0, 100]. A zero goal reads as no progress.
func GoalProgressPercent(goal float64, totalEarnings float64) float64 {
	if goal <= 0 {
		return 0
	}
	progress := totalEarnings / goal * 100
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

func percentage(numerator int, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
