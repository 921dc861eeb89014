package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/terraincognita07/refboard/internal/models"
)

func propertyDetailsBlock(property models.Property, prompts promptSet) string {
	return fmt.Sprintf(`%s:
- Name: %s
- Location: %s
- Expected ROI: %.1f%%
- Minimum Investment: $%.0f
- Type: %s
- Bedrooms: %d
- Area: %d %s
- Risk Score: %d/10`,
		prompts.PropertyDetailsLabel,
		property.Name,
		property.Location,
		property.ROI,
		property.MinInvestment,
		property.Type,
		property.Bedrooms,
		property.Area,
		prompts.AreaUnit,
		property.RiskScore,
	)
}

// ContentChatStream opens a streaming marketing-copy conversation about
// one property. The caller owns the conversation history; an empty
// history starts the conversation with the default opening request.
func (client *Client) ContentChatStream(ctx context.Context, property models.Property, referralLink string, language string, messages []Message) (*Stream, error) {
	prompts := promptsFor(language)
	systemInstruction := fmt.Sprintf("%s\n\n%s\n\nReferral link to include: %s",
		prompts.ChatSystemInstruction, propertyDetailsBlock(property, prompts), referralLink)

	if len(messages) == 0 {
		messages = []Message{{Author: "user", Text: prompts.InitialChatMessage}}
	}

	contents := make([]requestContent, 0, len(messages))
	for _, message := range messages {
		role := "user"
		if message.Author == "ai" {
			role = "model"
		}
		contents = append(contents, requestContent{Role: role, Parts: []contentPart{{Text: message.Text}}})
	}

	return client.streamGenerate(ctx, systemInstruction, contents, 0.8, 0.95)
}

// GeneratePropertyImage produces a fresh promotional image for the
// property as a JPEG data URL.
func (client *Client) GeneratePropertyImage(ctx context.Context, property models.Property) (string, error) {
	prompt := fmt.Sprintf(
		"A photorealistic, professional real estate marketing photo of a %s in %s. Bright, aspirational, golden-hour lighting, architectural digest style. No text or watermarks.",
		strings.ToLower(property.Type), property.Location)
	return client.generateImage(ctx, prompt)
}

type hashtagsPayload struct {
	Hashtags []string `json:"hashtags"`
}

// GenerateHashtags suggests hashtags for a drafted social post. Results
// are cached per post so regenerating a draft does not re-bill the same
// suggestion.
func (client *Client) GenerateHashtags(ctx context.Context, postContent string, property models.Property, language string) ([]string, error) {
	cacheKey := language + "|" + property.ID + "|" + postContent
	if cached, ok := client.hashtagCache.Get(cacheKey); ok {
		return cached.([]string), nil
	}

	prompt := fmt.Sprintf(`Based on the following social media post about a real estate investment property, generate a list of 8-12 relevant and effective hashtags.
Include a mix of popular and niche hashtags covering real estate, investing, the location (%s), and luxury lifestyle.

Post:
%s`, property.Location, postContent)

	raw, err := client.generateJSON(ctx, prompt, hashtagsSchema(), 0.7)
	if err != nil {
		return nil, err
	}

	payload := hashtagsPayload{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode hashtag payload: %w", err)
	}
	if len(payload.Hashtags) == 0 {
		return nil, ErrEmptyCompletion
	}

	tags := make([]string, 0, len(payload.Hashtags))
	for _, tag := range payload.Hashtags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}

	client.hashtagCache.Add(cacheKey, tags)
	return tags, nil
}

// AnalyzeProperty produces the four-part investment analysis for one
// catalog property. Analyses are deterministic per property and
// language, so they are cached.
func (client *Client) AnalyzeProperty(ctx context.Context, property models.Property, language string) (PropertyAnalysisReport, error) {
	cacheKey := language + "|" + property.ID
	if cached, ok := client.analysisCache.Get(cacheKey); ok {
		return cached.(PropertyAnalysisReport), nil
	}

	prompts := promptsFor(language)
	prompt := fmt.Sprintf("%s\n\n%s", prompts.AnalysisPrompt, propertyDetailsBlock(property, prompts))

	raw, err := client.generateJSON(ctx, prompt, analysisSchema(), 0.4)
	if err != nil {
		return PropertyAnalysisReport{}, err
	}

	report := PropertyAnalysisReport{}
	if err := json.Unmarshal(raw, &report); err != nil {
		return PropertyAnalysisReport{}, fmt.Errorf("decode analysis payload: %w", err)
	}

	client.analysisCache.Add(cacheKey, report)
	return report, nil
}

// DraftFollowUpEmail writes a follow-up email for a captured lead,
// pitching the referrer's current top property when one exists.
func (client *Client) DraftFollowUpEmail(ctx context.Context, lead models.Lead, topProperty *models.Property, referralLink string, language string) (Email, error) {
	prompts := promptsFor(language)

	builder := strings.Builder{}
	builder.WriteString(prompts.EmailPrompt)
	builder.WriteString(fmt.Sprintf("\n\nLead email: %s", lead.Email))
	if topProperty != nil {
		builder.WriteString("\n\n" + propertyDetailsBlock(*topProperty, prompts))
	}
	builder.WriteString(fmt.Sprintf("\n\nReferral link to include in the body: %s", referralLink))

	raw, err := client.generateJSON(ctx, builder.String(), emailSchema(), 0.6)
	if err != nil {
		return Email{}, err
	}

	email := Email{}
	if err := json.Unmarshal(raw, &email); err != nil {
		return Email{}, fmt.Errorf("decode email payload: %w", err)
	}
	return email, nil
}

// GenerateInsights reviews the referrer's aggregate performance and
// returns a summary with strengths, opportunities, and tips.
func (client *Client) GenerateInsights(ctx context.Context, snapshot InsightsSnapshot, language string) (InsightsReport, error) {
	prompts := promptsFor(language)
	prompt := fmt.Sprintf(`%s

Performance data:
- Total clicks: %d
- Total leads: %d
- Total conversions: %d
- Total earnings: $%.2f
- Top property by clicks: %s
- Top property by earnings: %s`,
		prompts.InsightsPrompt,
		snapshot.TotalClicks,
		snapshot.TotalLeads,
		snapshot.TotalConversions,
		snapshot.TotalEarnings,
		orNone(snapshot.TopPropertyByClicksName),
		orNone(snapshot.TopPropertyByEarningsName),
	)

	raw, err := client.generateJSON(ctx, prompt, insightsSchema(), 0.5)
	if err != nil {
		return InsightsReport{}, err
	}

	report := InsightsReport{}
	if err := json.Unmarshal(raw, &report); err != nil {
		return InsightsReport{}, fmt.Errorf("decode insights payload: %w", err)
	}
	return report, nil
}

// GenerateTip asks the assistant boundary for at most one actionable
// tip. Previously dismissed tip ids are sent along so the model does
// not resurface them.
func (client *Client) GenerateTip(ctx context.Context, snapshot TipSnapshot, dismissedIDs []string, language string) (models.TipSuggestion, error) {
	prompts := promptsFor(language)
	prompt := fmt.Sprintf(`%s

User data:
- Referral code configured: %t
- Total clicks: %d
- Total leads: %d
- Total conversions: %d
- Total earnings: $%.2f
- Unconverted leads: %d
- Newest unconverted lead email: %s
- Top property by clicks: %s
- Saved content pieces: %d

Previously dismissed tip ids (never repeat these): %s`,
		prompts.ProactiveTipPrompt,
		snapshot.ReferralCodeSet,
		snapshot.TotalClicks,
		snapshot.TotalLeads,
		snapshot.TotalConversions,
		snapshot.TotalEarnings,
		snapshot.UnconvertedLeadCount,
		orNone(snapshot.NewestUnconvertedEmail),
		orNone(snapshot.TopPropertyByClicksName),
		snapshot.SavedContentCount,
		orNone(strings.Join(dismissedIDs, ", ")),
	)

	raw, err := client.generateJSON(ctx, prompt, tipSchema(), 0.5)
	if err != nil {
		return models.TipSuggestion{}, err
	}

	suggestion := models.TipSuggestion{}
	if err := json.Unmarshal(raw, &suggestion); err != nil {
		return models.TipSuggestion{}, fmt.Errorf("decode tip payload: %w", err)
	}
	return suggestion, nil
}

// GenerateStrategicPlan builds the four-week plan toward the monthly
// earnings goal.
func (client *Client) GenerateStrategicPlan(ctx context.Context, goal float64, snapshot InsightsSnapshot, language string) (StrategicPlan, error) {
	prompts := promptsFor(language)
	prompt := fmt.Sprintf(`%s

Monthly earnings goal: $%.2f

Current performance:
- Total clicks: %d
- Total leads: %d
- Total conversions: %d
- Total earnings so far: $%.2f
- Top property by clicks: %s
- Top property by earnings: %s`,
		prompts.StrategicPlanPrompt,
		goal,
		snapshot.TotalClicks,
		snapshot.TotalLeads,
		snapshot.TotalConversions,
		snapshot.TotalEarnings,
		orNone(snapshot.TopPropertyByClicksName),
		orNone(snapshot.TopPropertyByEarningsName),
	)

	raw, err := client.generateJSON(ctx, prompt, strategicPlanSchema(), 0.6)
	if err != nil {
		return StrategicPlan{}, err
	}

	plan := StrategicPlan{}
	if err := json.Unmarshal(raw, &plan); err != nil {
		return StrategicPlan{}, fmt.Errorf("decode plan payload: %w", err)
	}
	return plan, nil
}

func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "none"
	}
	return value
}
