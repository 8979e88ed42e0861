package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Грамматика ISO-8601 date-time:
//   - дата: YYYY-MM-DD | YYYYMMDD | YYYY-Www[-D] | YYYYWww[D];
//   - время (необязательно, после T/t/пробела): hh[:mm[:ss[.f]]] | hhmm[ss[.f]];
//   - смещение (необязательно): ±hh[:mm[:ss[.ffffff]]] | ±hhmm.
//
// Время без смещения (naive) допустимо.
var isoTimeRe = regexp.MustCompile(`^` +
	`(\d{4}-\d{2}-\d{2}|\d{8}|\d{4}-W\d{2}(?:-[1-7])?|\d{4}W\d{2}[1-7]?)` +
	`(?:[Tt ]` +
	`(\d{2}(?::\d{2}(?::\d{2}(?:[.,]\d+)?)?)?|\d{4}(?:\d{2}(?:[.,]\d+)?)?)` +
	`([+-](?:\d{2}(?::\d{2}(?::\d{2}(?:\.\d{1,6})?)?)?|\d{4}))?` +
	`)?$`)

// ValidateISOTime — true, если строка (с заменой завершающего Z на +00:00)
// является корректной ISO-8601 датой-временем.
func ValidateISOTime(s string) bool {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	m := isoTimeRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	if !validDate(m[1]) {
		return false
	}
	if m[2] != "" && !validClock(m[2], 23) {
		return false
	}
	if m[3] != "" && !validClock(m[3][1:], 23) {
		return false
	}
	return true
}

// ------вспомогательные функции------

func validDate(d string) bool {
	d = strings.ReplaceAll(d, "-", "")
	year := atoi(d[:4])
	if year < 1 {
		return false
	}

	if d[4] == 'W' {
		week := atoi(d[5:7])
		return week >= 1 && week <= isoWeeksInYear(year)
	}

	month, day := atoi(d[4:6]), atoi(d[6:8])
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysIn(time.Month(month), year)
}

// validClock проверяет hh[mm[ss[.f]]] (двоеточия допускаются).
func validClock(c string, maxHour int) bool {
	c = strings.ReplaceAll(c, ":", "")
	if i := strings.IndexAny(c, ".,"); i >= 0 {
		c = c[:i]
	}
	if atoi(c[:2]) > maxHour {
		return false
	}
	if len(c) >= 4 && atoi(c[2:4]) > 59 {
		return false
	}
	if len(c) >= 6 && atoi(c[4:6]) > 59 {
		return false
	}
	return true
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isoWeeksInYear — 53, если 28 декабря попадает в 53-ю неделю.
func isoWeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// atoi для строк, уже проверенных регулярным выражением.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
