// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

var (
	clockPattern       = compile(`(?<!\d)(\d{1,2}):(\d{2})(?::(\d{2}))?(?!\d)`)
	compactTimePattern = compileFold(`(?<!\d)(\d{1,2})h(\d{2})(?![a-zà-ỹ])`)
	hourMarkPattern    = compileFold(`(?<!\d)(\d{1,2})h(?![a-zà-ỹ\d])`)
	hourMinutePattern  = compile(`(\d+)\s*giờ\s*(\d+)\s*phút`)
	hourWordPattern    = compile(`(\d+)\s*giờ(?!\s*\d)`)
)

func validHour(h string) bool   { return between(h, 0, 23) }
func validMinute(m string) bool { return between(m, 0, 59) }

type timeNormalizer struct {
	logger commons.Logger
}

// NewTimeNormalizer reads clock times: "14:30", "14:30:05", "10h30", "8h",
// "7 giờ 15 phút" and "7 giờ". The "h" forms never match when a letter
// follows, so words that merely contain an "h" are left alone.
func NewTimeNormalizer(logger commons.Logger) Normalizer {
	return &timeNormalizer{logger: logger}
}

func (n *timeNormalizer) Normalize(text string) string {
	text = rewrite(clockPattern, text, func(m *regexp2.Match) string {
		hour, minute, second := group(m, 1), group(m, 2), group(m, 3)
		if !validHour(hour) || !validMinute(minute) || (second != "" && !validMinute(second)) {
			return n.miss("clock", m)
		}
		out := words(hour) + " giờ " + words(minute) + " phút"
		if second != "" {
			out += " " + words(second) + " giây"
		}
		return out
	})

	text = rewrite(compactTimePattern, text, func(m *regexp2.Match) string {
		hour, minute := group(m, 1), group(m, 2)
		if !validHour(hour) || !validMinute(minute) {
			return n.miss("compact", m)
		}
		return words(hour) + " giờ " + words(minute)
	})

	text = rewrite(hourMarkPattern, text, func(m *regexp2.Match) string {
		if !validHour(group(m, 1)) {
			return n.miss("hour", m)
		}
		return words(group(m, 1)) + " giờ"
	})

	text = rewrite(hourMinutePattern, text, func(m *regexp2.Match) string {
		hour, minute := group(m, 1), group(m, 2)
		if !validHour(hour) || !validMinute(minute) {
			return n.miss("giờ phút", m)
		}
		return words(hour) + " giờ " + words(minute) + " phút"
	})

	return rewrite(hourWordPattern, text, func(m *regexp2.Match) string {
		if !validHour(group(m, 1)) {
			return n.miss("giờ", m)
		}
		return words(group(m, 1)) + " giờ"
	})
}

func (n *timeNormalizer) miss(form string, m *regexp2.Match) string {
	n.logger.Debugf("normalizer: %s candidate %q is not a time", form, m.String())
	return m.String()
}
