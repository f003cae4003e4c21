// Package dateutil provides the calendar helpers behind the date-keyed
// workout store: ISO date keys, week and month ranges, and localized names.
package dateutil

import "time"

// ISODate is the canonical key format of the workout record map.
const ISODate = "2006-01-02"

// FormatDate renders the date's calendar fields as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}

// ParseDate parses an ISO calendar date. Malformed input yields the zero
// time, which callers treat as the invalid-date sentinel.
func ParseDate(s string) time.Time {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// WeekDates returns the seven dates of the Monday-to-Sunday week
// containing t.
func WeekDates(t time.Time) []string {
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	monday := t.AddDate(0, 0, -back)

	week := make([]string, 7)
	for i := range week {
		week[i] = FormatDate(monday.AddDate(0, 0, i))
	}
	return week
}

// MonthDates returns every calendar day of t's month, first to last.
func MonthDates(t time.Time) []string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	days := first.AddDate(0, 1, -1).Day()

	dates := make([]string, days)
	for i := range dates {
		dates[i] = FormatDate(first.AddDate(0, 0, i))
	}
	return dates
}

// WeekNumber computes an approximate week number from the day of year and
// the weekday of January 1st. Year-boundary edge cases deviate from strict
// ISO-8601 numbering and are accepted as such.
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.YearDay() - 1
	return (pastDays + int(jan1.Weekday()) + 1 + 6) / 7
}

var dayNames = map[string][7]string{
	"ru": {"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var monthNames = map[string][12]string{
	"ru": {
		"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
	},
	"en": {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// DayName returns the short weekday name in the given language. Unknown
// languages fall back to Russian.
func DayName(t time.Time, lang string) string {
	names, ok := dayNames[lang]
	if !ok {
		names = dayNames["ru"]
	}
	return names[int(t.Weekday())]
}

// MonthName returns the month name in the given language.
func MonthName(t time.Time, lang string) string {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames["ru"]
	}
	return names[int(t.Month())-1]
}
