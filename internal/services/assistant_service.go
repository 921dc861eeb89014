package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/terraincognita07/refboard/internal/ai"
	"github.com/terraincognita07/refboard/internal/models"
)

const defaultTipCheckInterval = 45 * time.Second

type TipGenerator interface {
	GenerateTip(ctx context.Context, snapshot ai.TipSnapshot, dismissedIDs []string, language string) (models.TipSuggestion, error)
}

type LibraryReader interface {
	All() []models.SavedContent
}

type ReferralCodeReader interface {
	Get() string
}

type DismissedTipLedger interface {
	All() []string
	Contains(tipID string) bool
	Add(tipID string) error
}

// AssistantService periodically asks the AI boundary for one proactive
// tip and holds at most one active tip at a time. Dismissed tip ids are
// never resurfaced.
type AssistantService struct {
	generator    TipGenerator
	clicks       ClickReader
	leads        LeadReader
	conversions  ConversionReader
	library      LibraryReader
	referralCode ReferralCodeReader
	dismissed    DismissedTipLedger
	properties   PropertyResolver
	logger       logrus.FieldLogger

	minInterval time.Duration
	group       singleflight.Group

	mu        sync.Mutex
	current   *models.ProactiveTip
	lastCheck time.Time
}

func NewAssistantService(
	generator TipGenerator,
	clicks ClickReader,
	leads LeadReader,
	conversions ConversionReader,
	library LibraryReader,
	referralCode ReferralCodeReader,
	dismissed DismissedTipLedger,
	properties PropertyResolver,
	minInterval time.Duration,
	logger logrus.FieldLogger,
) *AssistantService {
	if minInterval <= 0 {
		minInterval = defaultTipCheckInterval
	}
	return &AssistantService{
		generator:    generator,
		clicks:       clicks,
		leads:        leads,
		conversions:  conversions,
		library:      library,
		referralCode: referralCode,
		dismissed:    dismissed,
		properties:   properties,
		minInterval:  minInterval,
		logger:       logger,
	}
}

// BuildSnapshot assembles the metrics package the tip boundary reasons
// over. Unconverted leads are leads whose email has no conversion yet.
func (service *AssistantService) BuildSnapshot() ai.TipSnapshot {
	clicks := service.clicks.All()
	leads := service.leads.All()
	conversions := service.conversions.All()

	convertedEmails := make(map[string]struct{}, len(conversions))
	for _, conversion := range conversions {
		convertedEmails[conversion.LeadEmail] = struct{}{}
	}

	unconvertedCount := 0
	newestUnconverted := ""
	for _, lead := range leads {
		if _, converted := convertedEmails[lead.Email]; converted {
			continue
		}
		unconvertedCount++
		if newestUnconverted == "" {
			newestUnconverted = lead.Email
		}
	}

	snapshot := ai.TipSnapshot{
		ReferralCodeSet:        service.referralCode.Get() != "",
		TotalClicks:            len(clicks),
		TotalLeads:             len(leads),
		TotalConversions:       len(conversions),
		TotalEarnings:          TotalEarnings(conversions),
		UnconvertedLeadCount:   unconvertedCount,
		NewestUnconvertedEmail: newestUnconverted,
		SavedContentCount:      len(service.library.All()),
	}

	if topPropertyID := TopPropertyID(CountClicksByProperty(clicks)); topPropertyID != "" {
		if property, found := service.properties.ByID(topPropertyID); found {
			snapshot.TopPropertyByClicksName = property.Name
		}
	}
	return snapshot
}

// Current returns the active tip, or nil when none is showing.
func (service *AssistantService) Current() *models.ProactiveTip {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.current == nil {
		return nil
	}
	tip := *service.current
	return &tip
}

// Dismiss records the tip id so it never comes back, and clears the
// active tip if it matches.
func (service *AssistantService) Dismiss(tipID string) error {
	if err := service.dismissed.Add(tipID); err != nil {
		return err
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	if service.current != nil && service.current.ID == tipID {
		service.current = nil
	}
	return nil
}

// Check asks for a fresh tip unless one is already showing or the last
// check was too recent. Concurrent checks collapse into one upstream
// call.
func (service *AssistantService) Check(ctx context.Context, language string) (*models.ProactiveTip, error) {
	service.mu.Lock()
	if service.current != nil {
		tip := *service.current
		service.mu.Unlock()
		return &tip, nil
	}
	if time.Since(service.lastCheck) < service.minInterval {
		service.mu.Unlock()
		return nil, nil
	}
	service.mu.Unlock()

	result, err, _ := service.group.Do("proactive-tip", func() (any, error) {
		return service.check(ctx, language)
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*models.ProactiveTip), nil
}

func (service *AssistantService) check(ctx context.Context, language string) (*models.ProactiveTip, error) {
	service.mu.Lock()
	service.lastCheck = time.Now()
	service.mu.Unlock()

	suggestion, err := service.generator.GenerateTip(ctx, service.BuildSnapshot(), service.dismissed.All(), language)
	if err != nil {
		return nil, err
	}
	if !suggestion.ShouldShow || suggestion.ID == "" || suggestion.Message == "" {
		return nil, nil
	}
	if service.dismissed.Contains(suggestion.ID) {
		return nil, nil
	}

	action, ok := service.resolveAction(suggestion)
	if !ok {
		service.logger.WithFields(logrus.Fields{
			"tip":    suggestion.ID,
			"action": suggestion.ActionType,
		}).Warn("suppressing tip with unresolvable action")
		return nil, nil
	}

	tip := &models.ProactiveTip{
		ID:      suggestion.ID,
		Message: suggestion.Message,
		Action:  action,
	}

	service.mu.Lock()
	service.current = tip
	service.mu.Unlock()

	published := *tip
	return &published, nil
}

// resolveAction turns the boundary's action hint into a concrete action
// with hydrated payloads. Unresolvable payloads suppress the tip rather
// than surface a broken button.
func (service *AssistantService) resolveAction(suggestion models.TipSuggestion) (models.TipAction, bool) {
	action := models.TipAction{
		Type:  suggestion.ActionType,
		Label: suggestion.ActionLabel,
	}

	switch suggestion.ActionType {
	case models.TipActionNone:
		return action, true
	case models.TipActionNavigate:
		if suggestion.ActionPayloadID == "" {
			return models.TipAction{}, false
		}
		action.View = suggestion.ActionPayloadID
		return action, true
	case models.TipActionComposeEmail:
		for _, lead := range service.leads.All() {
			if lead.Email == suggestion.ActionPayloadID {
				matched := lead
				action.Lead = &matched
				return action, true
			}
		}
		return models.TipAction{}, false
	case models.TipActionGenerateContent:
		if property, found := service.properties.ByID(suggestion.ActionPayloadID); found {
			action.Property = &property
			return action, true
		}
		return models.TipAction{}, false
	default:
		return models.TipAction{}, false
	}
}

// Run checks for tips on a fixed cadence until the context is done.
func (service *AssistantService) Run(ctx context.Context, interval time.Duration, language string) {
	if interval <= 0 {
		interval = defaultTipCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := service.Check(ctx, language); err != nil {
				service.logger.WithError(err).Warn("proactive tip check failed")
			}
		}
	}
}
