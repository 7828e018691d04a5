package model

import "github.com/google/uuid"

// DayStyle is the broad marker category of a calendar day.
type DayStyle string

const (
	DayStyleNone  DayStyle = "none"
	DayStyleTypeA DayStyle = "type_a"
	DayStyleTypeB DayStyle = "type_b"
	DayStyleTypeC DayStyle = "type_c"
)

// DayMark describes whether any event falls on Date and which type the first one has.
type DayMark struct {
	Date     string   `json:"date"`
	HasMatch bool     `json:"has_match"`
	Type     string   `json:"type,omitempty"`
	Style    DayStyle `json:"style"`
}

type DayView struct {
	Date   string         `json:"date"`
	Mark   DayMark        `json:"mark"`
	Events []*EventRecord `json:"events"`
}

type MonthView struct {
	YearMonth string    `json:"year_month"`
	Count     int       `json:"count"`
	Days      []DayMark `json:"days"`
}

type UserStats struct {
	UserID uuid.UUID      `json:"user_id"`
	Email  string         `json:"email"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}

type LeaderboardEntry struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Count  int       `json:"count"`
}
