package derive

import (
	"strings"
	"time"

	"go-gin-attendance-log/internal/model"
)

// Styler picks the marker category for a day whose first event has the given type.
type Styler func(eventType string) model.DayStyle

// DefaultStyler marks theatre days as TypeA, opera days as TypeB and everything else as TypeC.
func DefaultStyler(eventType string) model.DayStyle {
	switch strings.ToLower(eventType) {
	case "theatre", "theater":
		return model.DayStyleTypeA
	case "opera":
		return model.DayStyleTypeB
	}
	return model.DayStyleTypeC
}

// CalendarDayStyle marks date using DefaultStyler.
func CalendarDayStyle(events []*model.EventRecord, date string) model.DayMark {
	return CalendarDayStyleWith(events, date, DefaultStyler)
}

// CalendarDayStyleWith marks date from the first record falling on it.
func CalendarDayStyleWith(events []*model.EventRecord, date string, styler Styler) model.DayMark {
	mark := model.DayMark{Date: date, Style: model.DayStyleNone}
	if !model.IsValidDate(date) {
		return mark
	}
	for _, e := range events {
		if e == nil || e.Date != date {
			continue
		}
		mark.HasMatch = true
		mark.Type = e.Type
		if styler != nil {
			mark.Style = styler(e.Type)
		}
		return mark
	}
	return mark
}

// Month marks every day of yearMonth and counts its events. A malformed
// yearMonth yields an empty view.
func Month(events []*model.EventRecord, yearMonth string) model.MonthView {
	view := model.MonthView{YearMonth: yearMonth, Days: []model.DayMark{}}
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil || len(yearMonth) != 7 {
		return view
	}

	byDay := make(map[string]*model.EventRecord)
	for _, e := range events {
		if e == nil || !model.IsValidDate(e.Date) || e.Date[:7] != yearMonth {
			continue
		}
		view.Count++
		if _, ok := byDay[e.Date]; !ok {
			byDay[e.Date] = e
		}
	}

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format(model.DateLayout)
		mark := model.DayMark{Date: date, Style: model.DayStyleNone}
		if e, ok := byDay[date]; ok {
			mark.HasMatch = true
			mark.Type = e.Type
			mark.Style = DefaultStyler(e.Type)
		}
		view.Days = append(view.Days, mark)
	}
	return view
}
