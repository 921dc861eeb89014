package models

type SavedContent struct {
	ID       string   `json:"id"`
	Property Property `json:"property"`
	Text     string   `json:"text"`
	ImageURL string   `json:"imageUrl"`
	SavedAt  int64    `json:"savedAt"`
}
