// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"

	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

// Pass groups that can be selected by name.
const (
	GroupCleanup    = "cleanup"
	GroupDate       = "date"
	GroupTime       = "time"
	GroupOrdinal    = "ordinal"
	GroupCurrency   = "currency"
	GroupPercentage = "percentage"
	GroupPhone      = "phone"
	GroupDecimal    = "decimal"
	GroupUnit       = "unit"
	GroupRoman      = "roman"
	GroupNumber     = "number"
	GroupWhitespace = "whitespace"
)

// Groups lists the selectable groups in pipeline order.
var Groups = []string{
	GroupCleanup, GroupDate, GroupTime, GroupOrdinal, GroupCurrency, GroupPercentage,
	GroupPhone, GroupDecimal, GroupUnit, GroupRoman, GroupNumber, GroupWhitespace,
}

// Stage is one named pass of the pipeline. A stage belongs to every group it
// serves; thousand separators for example are needed by currency, percentage,
// decimal and plain numbers alike.
type Stage struct {
	Name       string
	Groups     []string
	Normalizer Normalizer
}

func (s Stage) in(selected map[string]bool) bool {
	for _, g := range s.Groups {
		if selected[g] {
			return true
		}
	}
	return false
}

// Pipeline is the ordered list of rewrite passes. Every pass consumes syntax a
// later, more general pass would misread, so the order is fixed.
type Pipeline struct {
	logger commons.Logger
	stages []Stage
}

// NewPipeline builds the complete pipeline.
func NewPipeline(logger commons.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		stages: []Stage{
			{"unicode", []string{GroupCleanup}, NewUnicodeNormalizer(logger)},
			{"symbol", []string{GroupCleanup}, NewSymbolNormalizer(logger)},
			{"punctuation", []string{GroupCleanup}, NewPunctuationNormalizer(logger)},
			{"cleanup", []string{GroupCleanup}, NewCleanupNormalizer(logger)},
			{"year-range", []string{GroupDate}, NewYearRangeNormalizer(logger)},
			{"percentage-range", []string{GroupPercentage}, NewPercentageRangeNormalizer(logger)},
			{"date", []string{GroupDate}, NewDateNormalizer(logger)},
			{"time", []string{GroupTime}, NewTimeNormalizer(logger)},
			{"ordinal", []string{GroupOrdinal}, NewOrdinalNormalizer(logger)},
			{"thousand", []string{GroupCurrency, GroupPercentage, GroupDecimal, GroupNumber}, NewThousandNormalizer(logger)},
			{"currency", []string{GroupCurrency}, NewCurrencyNormalizer(logger)},
			{"percentage", []string{GroupPercentage}, NewPercentageNormalizer(logger)},
			{"phone", []string{GroupPhone}, NewPhoneNormalizer(logger)},
			{"decimal", []string{GroupDecimal}, NewDecimalNormalizer(logger)},
			{"unit", []string{GroupUnit}, NewUnitNormalizer(logger)},
			{"roman", []string{GroupRoman}, NewRomanNormalizer(logger)},
			{"number", []string{GroupNumber}, NewNumberNormalizer(logger)},
			{"whitespace", []string{GroupWhitespace}, NewWhitespaceNormalizer(logger)},
		},
	}
}

// Normalize runs every stage in order.
func (p *Pipeline) Normalize(text string) string {
	for _, stage := range p.stages {
		text = stage.Normalizer.Normalize(text)
	}
	return text
}

// Names returns the stage names in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Subset keeps the stages of the named groups in their original order. The
// whitespace stage is always kept. Unknown names are logged and ignored; an
// empty selection returns p itself.
func (p *Pipeline) Subset(groups []string) *Pipeline {
	selected := map[string]bool{GroupWhitespace: true}
	for _, g := range groups {
		g = strings.TrimSpace(strings.ToLower(g))
		if g == "" {
			continue
		}
		if !isGroup(g) {
			p.logger.Warnf("normalizer: unknown pass group '%s', skipping", g)
			continue
		}
		selected[g] = true
	}
	if len(selected) == 1 && len(groups) == 0 {
		return p
	}

	stages := make([]Stage, 0, len(p.stages))
	for _, s := range p.stages {
		if s.in(selected) {
			stages = append(stages, s)
		}
	}
	return &Pipeline{logger: p.logger, stages: stages}
}

func isGroup(name string) bool {
	for _, g := range Groups {
		if g == name {
			return true
		}
	}
	return false
}
