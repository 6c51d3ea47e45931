package feature

import "time"

// Nomes dos dias da semana usados nas tabelas de previsão.
var weekdayNames = [7]string{
	"lunes",
	"martes",
	"miércoles",
	"jueves",
	"viernes",
	"sábado",
	"domingo",
}

// WeekdayIndex retorna o dia da semana com segunda-feira = 0 e
// domingo = 6, convenção usada pelas variáveis do modelo.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// WeekdayName retorna o nome do dia da semana em espanhol.
func WeekdayName(date time.Time) string {
	return weekdayNames[WeekdayIndex(date)]
}

// IsWeekend indica se a data cai em sábado ou domingo.
func IsWeekend(date time.Time) bool {
	return WeekdayIndex(date) >= 5
}

// BlackFriday retorna a data da Black Friday do ano: o dia seguinte à
// quarta quinta-feira de novembro.
func BlackFriday(year int) time.Time {
	first := time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Thursday) - int(first.Weekday()) + 7) % 7
	fourthThursday := first.AddDate(0, 0, offset+21)

	return fourthThursday.AddDate(0, 0, 1)
}

// CyberMonday retorna a data da Cyber Monday do ano: a segunda-feira
// seguinte à Black Friday.
func CyberMonday(year int) time.Time {
	return BlackFriday(year).AddDate(0, 0, 3)
}

// IsBlackFriday indica se a data é a Black Friday do seu ano.
func IsBlackFriday(date time.Time) bool {
	return sameDay(date, BlackFriday(date.Year()))
}

// IsCyberMonday indica se a data é a Cyber Monday do ano. A data pode
// cair no início de dezembro, derivada do novembro do mesmo ano.
func IsCyberMonday(date time.Time) bool {
	return sameDay(date, CyberMonday(date.Year()))
}

// IsHoliday indica se a data é festivo nacional na Espanha.
func IsHoliday(date time.Time) bool {
	month, day := date.Month(), date.Day()

	switch {
	case month == time.January && (day == 1 || day == 6):
		return true
	case month == time.May && day == 1:
		return true
	case month == time.August && day == 15:
		return true
	case month == time.October && day == 12:
		return true
	case month == time.November && day == 1:
		return true
	case month == time.December && (day == 6 || day == 8 || day == 25):
		return true
	}

	return sameDay(date, goodFriday(date.Year()))
}

// goodFriday retorna a Sexta-feira Santa (dois dias antes da Páscoa).
func goodFriday(year int) time.Time {
	return easterSunday(year).AddDate(0, 0, -2)
}

// easterSunday calcula o domingo de Páscoa pelo algoritmo gregoriano
// anônimo (Meeus/Jones/Butcher).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
