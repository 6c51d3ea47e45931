package utils

import "time"

const DateLayout = "2006-01-02"

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// MonthDays retorna todos os dias do mês informado, em ordem cronológica.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}
