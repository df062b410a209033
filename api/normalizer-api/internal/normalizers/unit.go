// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"sort"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

type unit struct {
	symbol string
	name   string
}

var units = []unit{
	// length
	{"cm", "xăng-ti-mét"}, {"mm", "mi-li-mét"}, {"km", "ki-lô-mét"},
	{"dm", "đề-xi-mét"}, {"hm", "héc-tô-mét"}, {"dam", "đề-ca-mét"},
	{"m", "mét"}, {"inch", "in"},
	// weight
	{"kg", "ki-lô-gam"}, {"mg", "mi-li-gam"}, {"g", "gam"},
	{"t", "tấn"}, {"tấn", "tấn"}, {"yến", "yến"}, {"lạng", "lạng"},
	// volume
	{"ml", "mi-li-lít"}, {"l", "lít"}, {"lít", "lít"},
	// area
	{"m²", "mét vuông"}, {"m2", "mét vuông"},
	{"km²", "ki-lô-mét vuông"}, {"km2", "ki-lô-mét vuông"},
	{"ha", "héc-ta"},
	{"cm²", "xăng-ti-mét vuông"}, {"cm2", "xăng-ti-mét vuông"},
	// volume, cubed
	{"m³", "mét khối"}, {"m3", "mét khối"},
	{"cm³", "xăng-ti-mét khối"}, {"cm3", "xăng-ti-mét khối"},
	{"km³", "ki-lô-mét khối"}, {"km3", "ki-lô-mét khối"},
	// time
	{"s", "giây"}, {"sec", "giây"}, {"min", "phút"},
	{"h", "giờ"}, {"hr", "giờ"}, {"hrs", "giờ"},
	// speed
	{"km/h", "ki-lô-mét trên giờ"}, {"kmh", "ki-lô-mét trên giờ"},
	{"m/s", "mét trên giây"}, {"ms", "mét trên giây"},
	{"mm/h", "mi-li-mét trên giờ"}, {"cm/s", "xăng-ti-mét trên giây"},
	// temperature
	{"°C", "độ C"}, {"°F", "độ F"}, {"°K", "độ K"},
	{"°R", "độ R"}, {"°Re", "độ Re"}, {"°Ro", "độ Ro"},
	{"°N", "độ N"}, {"°D", "độ D"},
}

type unitPattern struct {
	symbol  string
	pattern *regexp2.Regexp
	name    string
}

// unitPatterns is ordered longest symbol first so "km2" is tried before "km"
// and "km" before "m".
var unitPatterns = compileUnits(units)

func compileUnits(table []unit) []unitPattern {
	sorted := make([]unit, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].symbol) > utf8.RuneCountInString(sorted[j].symbol)
	})

	out := make([]unitPattern, 0, len(sorted))
	for _, u := range sorted {
		symbol := regexp2.Escape(u.symbol)
		var pattern string
		if utf8.RuneCountInString(u.symbol) == 1 {
			// a single letter unit must not be the start of a word
			pattern = `(\d+)\s*` + symbol + `(?!\s*[a-zA-Zà-ỹ])(?=\s*[^a-zA-Zà-ỹ]|$)`
		} else {
			pattern = `(\d+)\s*` + symbol + `(?=\s|[^\w]|$)`
		}
		out = append(out, unitPattern{symbol: u.symbol, pattern: compileFold(pattern), name: u.name})
	}
	return out
}

type unitNormalizer struct {
	logger commons.Logger
}

// NewUnitNormalizer replaces a measurement unit written right after a number
// with its Vietnamese name. The number itself is left for the number pass.
func NewUnitNormalizer(logger commons.Logger) Normalizer {
	return &unitNormalizer{logger: logger}
}

func (n *unitNormalizer) Normalize(text string) string {
	for _, u := range unitPatterns {
		name := u.name
		text = rewrite(u.pattern, text, func(m *regexp2.Match) string {
			return group(m, 1) + " " + name
		})
	}
	return text
}
