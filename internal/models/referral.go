package models

type ClickEvent struct {
	PropertyID string `json:"propertyId"`
	Timestamp  int64  `json:"timestamp"`
}

type Lead struct {
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}

type Conversion struct {
	LeadEmail        string  `json:"leadEmail"`
	PropertyID       string  `json:"propertyId"`
	InvestmentAmount float64 `json:"investmentAmount"`
	Timestamp        int64   `json:"timestamp"`
}

type DailyClick struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DailyEarning struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}
