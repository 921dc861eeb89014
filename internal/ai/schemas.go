package ai

func stringProperty(description string) map[string]any {
	return map[string]any{"type": "STRING", "description": description}
}

func stringArrayProperty(description string) map[string]any {
	return map[string]any{
		"type":        "ARRAY",
		"items":       map[string]any{"type": "STRING"},
		"description": description,
	}
}

func hashtagsSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"hashtags": stringArrayProperty("Social media hashtags without the '#' symbol."),
		},
		"required": []string{"hashtags"},
	}
}

func analysisSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"summary":         stringProperty("Executive summary of the investment opportunity, 1-2 sentences."),
			"marketSnapshot":  stringProperty("Local market analysis: demand drivers and recent trends, 2-3 sentences."),
			"riskBreakdown":   stringProperty("Qualitative explanation of the risk score, 2-3 sentences."),
			"growthPotential": stringProperty("Forward-looking growth drivers, 2-3 sentences."),
		},
		"required": []string{"summary", "marketSnapshot", "riskBreakdown", "growthPotential"},
	}
}

func emailSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"subject": stringProperty("The subject line of the email."),
			"body":    stringProperty("The full body of the email, with newline paragraph breaks."),
		},
		"required": []string{"subject", "body"},
	}
}

func insightsSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"performanceSummary":     stringProperty("High-level summary of performance."),
			"keyStrengths":           stringArrayProperty("List of key strengths."),
			"opportunitiesForGrowth": stringArrayProperty("List of growth opportunities."),
			"actionableTips":         stringArrayProperty("List of actionable tips."),
		},
		"required": []string{"performanceSummary", "keyStrengths", "opportunitiesForGrowth", "actionableTips"},
	}
}

func tipSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"id":              stringProperty("Unique id for the tip suggestion, e.g. 'set_referral_code'."),
			"shouldShow":      map[string]any{"type": "BOOLEAN", "description": "True only if a relevant tip was found."},
			"message":         stringProperty("The concise, helpful message to show the user."),
			"actionLabel":     stringProperty("Text for the action button."),
			"actionType":      stringProperty("One of: 'compose_email', 'generate_content', 'navigate', 'none'."),
			"actionPayloadId": stringProperty("Id needed for the action (lead email, property id, or view name). Optional."),
		},
		"required": []string{"id", "shouldShow", "message", "actionLabel", "actionType"},
	}
}

func weekPlanSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":   stringProperty("A short, motivational title for the week."),
			"actions": stringArrayProperty("2-3 concrete actions for the week."),
		},
		"required": []string{"title", "actions"},
	}
}

func strategicPlanSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"week1": weekPlanSchema(),
			"week2": weekPlanSchema(),
			"week3": weekPlanSchema(),
			"week4": weekPlanSchema(),
		},
		"required": []string{"week1", "week2", "week3", "week4"},
	}
}
