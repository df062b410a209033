// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	internal_numerals "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/numerals"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

// datePass is one date shape. Shapes overlap, so the order of datePasses is
// significant: the most specific shape runs first and a shape that fails
// validation leaves its text for the next one.
type datePass struct {
	name    string
	pattern *regexp2.Regexp
	render  func(m *regexp2.Match) (string, bool)
}

var datePasses = []datePass{
	{
		name:    "ngay-range",
		pattern: compile(`ngày\s+(\d{1,2})\s*[-–—]\s*(\d{1,2})\s*[/-]\s*(\d{1,2})(?:\s*[/-]\s*(\d{4}))?`),
		render: func(m *regexp2.Match) (string, bool) {
			out, ok := dayRange(group(m, 1), group(m, 2), group(m, 3), group(m, 4))
			return "ngày " + out, ok
		},
	},
	{
		name:    "date-range",
		pattern: compile(`(\d{1,2})\s*[-–—]\s*(\d{1,2})\s*[/-]\s*(\d{1,2})(?:\s*[/-]\s*(\d{4}))?`),
		render: func(m *regexp2.Match) (string, bool) {
			return dayRange(group(m, 1), group(m, 2), group(m, 3), group(m, 4))
		},
	},
	{
		name:    "month-range",
		pattern: compile(`(\d{1,2})\s*[-–—]\s*(\d{1,2})\s*[/-]\s*(\d{4})`),
		render: func(m *regexp2.Match) (string, bool) {
			from, to, year := group(m, 1), group(m, 2), group(m, 3)
			if !validMonth(from) || !validMonth(to) || !validYear(year) {
				return "", false
			}
			return "tháng " + words(from) + " đến tháng " + words(to) + " năm " + words(year), true
		},
	},
	{
		name:    "sinh",
		pattern: compile(`([Ss]inh)\s+[Nn]gày\s+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		render: func(m *regexp2.Match) (string, bool) {
			day, month, year := group(m, 2), group(m, 3), group(m, 4)
			if !validDate(day, month, year) {
				return "", false
			}
			return group(m, 1) + " ngày " + words(day) + " tháng " + words(month) + " năm " + words(year), true
		},
	},
	{
		name:    "full",
		pattern: compile(`(?:[Nn]gày\s+)?(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		render: func(m *regexp2.Match) (string, bool) {
			day, month, year := group(m, 1), group(m, 2), group(m, 3)
			if !validDate(day, month, year) {
				return "", false
			}
			return "ngày " + words(day) + " tháng " + words(month) + " năm " + words(year), true
		},
	},
	{
		name:    "month-year",
		pattern: compile(`(?:tháng\s+)?(\d{1,2})\s*[/-]\s*(\d{4})(?![/-]\d)`),
		render: func(m *regexp2.Match) (string, bool) {
			month, year := group(m, 1), group(m, 2)
			if !validMonth(month) || !validYear(year) {
				return "", false
			}
			return "tháng " + words(month) + " năm " + words(year), true
		},
	},
	{
		name:    "day-month",
		pattern: compile(`(?<!\d)(\d{1,2})\s*[/-]\s*(\d{1,2})(?!\d)(?![/-]\d)(?!\d+\s*%)`),
		render: func(m *regexp2.Match) (string, bool) {
			day, month := group(m, 1), group(m, 2)
			if !validDate(day, month, "") {
				return "", false
			}
			return words(day) + " tháng " + words(month), true
		},
	},
	{
		name:    "x-thang-y",
		pattern: compile(`(\d+)\s*tháng\s*(\d+)`),
		render: func(m *regexp2.Match) (string, bool) {
			day, month := group(m, 1), group(m, 2)
			if !validDate(day, month, "") {
				return "", false
			}
			return "ngày " + words(day) + " tháng " + words(month), true
		},
	},
	{
		name:    "thang-x",
		pattern: compile(`tháng\s*(\d+)`),
		render: func(m *regexp2.Match) (string, bool) {
			month := group(m, 1)
			if !validMonth(month) {
				return "", false
			}
			return "tháng " + words(month), true
		},
	},
	{
		name:    "ngay-x",
		pattern: compile(`ngày\s*(\d+)`),
		render: func(m *regexp2.Match) (string, bool) {
			day := group(m, 1)
			if !between(day, 1, 31) {
				return "", false
			}
			return "ngày " + words(day), true
		},
	},
}

func words(digits string) string {
	return internal_numerals.ToWords(digits)
}

func validMonth(month string) bool { return between(month, 1, 12) }

func validYear(year string) bool { return between(year, 1000, 9999) }

// validDate checks day and month and, when year is not empty, the year.
func validDate(day, month, year string) bool {
	if !between(day, 1, 31) || !validMonth(month) {
		return false
	}
	return year == "" || validYear(year)
}

// dayRange renders "D1 đến D2 tháng M [năm Y]".
func dayRange(from, to, month, year string) (string, bool) {
	if !validDate(from, month, year) || !validDate(to, month, year) {
		return "", false
	}
	out := words(from) + " đến " + words(to) + " tháng " + words(month)
	if year != "" {
		out += " năm " + words(year)
	}
	return out, true
}

type dateNormalizer struct {
	logger commons.Logger
}

// NewDateNormalizer reads Vietnamese day-first dates, date ranges and the
// "ngày X" / "tháng X" forms. Day must be 1..31, month 1..12 and a four
// digit year 1000..9999; anything else is left for the number pass.
func NewDateNormalizer(logger commons.Logger) Normalizer {
	return &dateNormalizer{logger: logger}
}

func (n *dateNormalizer) Normalize(text string) string {
	for _, pass := range datePasses {
		text = rewrite(pass.pattern, text, func(m *regexp2.Match) string {
			out, ok := pass.render(m)
			if !ok {
				n.logger.Debugf("normalizer: %s candidate %q is not a date", pass.name, m.String())
				return m.String()
			}
			return out
		})
	}
	return text
}
