// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_vietnamese

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	internal_detector "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/detector"
	internal_dictionary "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/dictionary"
	internal_normalizers "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/normalizers"
	internal_transliterator "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/transliterator"
	internal_type "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/type"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
	"golang.org/x/text/unicode/norm"
)

// LookupProvider hands out the dictionary snapshot for one call.
type LookupProvider interface {
	Current() *internal_dictionary.Lookup
}

// =============================================================================
// Vietnamese Text Normalizer
// =============================================================================

// vietnameseNormalizer runs the rewrite pipeline, spells uppercase codes,
// applies the dictionary and transliterates what is left.
type vietnameseNormalizer struct {
	logger commons.Logger
	config internal_type.NormalizerConfig

	// dictionary snapshots
	lookups LookupProvider

	// normalizer pipeline for the instance configuration
	pipeline *internal_normalizers.Pipeline
}

// NewVietnameseNormalizer creates the end to end normalizer. The pipeline is
// built once from cfg.Passes; lookups is read on every call so a reload is
// picked up by the next call.
func NewVietnameseNormalizer(logger commons.Logger, cfg internal_type.NormalizerConfig, lookups LookupProvider) internal_type.TextNormalizer {
	return &vietnameseNormalizer{
		logger:   logger,
		config:   cfg,
		lookups:  lookups,
		pipeline: internal_type.BuildNormalizerPipeline(logger, cfg.Passes),
	}
}

// Normalize applies the instance configuration.
func (n *vietnameseNormalizer) Normalize(ctx context.Context, text string) string {
	return n.normalize(ctx, text, n.config, n.pipeline)
}

// NormalizeWithOptions applies "normalizer.*" overrides for this call only.
func (n *vietnameseNormalizer) NormalizeWithOptions(ctx context.Context, text string, opts utils.Option) string {
	cfg := n.config.WithOptions(n.logger, opts)
	pipeline := n.pipeline
	if _, ok := opts[internal_type.OptionPrefix+"passes"]; ok {
		pipeline = internal_type.BuildNormalizerPipeline(n.logger, cfg.Passes)
	}
	return n.normalize(ctx, text, cfg, pipeline)
}

func (n *vietnameseNormalizer) normalize(ctx context.Context, text string, cfg internal_type.NormalizerConfig, pipeline *internal_normalizers.Pipeline) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	start := time.Now()
	defer func() {
		n.logger.Benchmark("vietnamese.Normalize", time.Since(start))
	}()

	if cfg.EnablePreprocessing {
		text = pipeline.Normalize(text)
	} else {
		n.logger.Tracef(ctx, "normalizer: preprocessing disabled for %d bytes", len(text))
		text = passthrough(text)
	}

	lookup := n.lookups.Current()

	// codes are recognised by case, so this runs before lowercasing
	text = lookup.SpellCodes(text)
	text = strings.ToLower(text)
	text = lookup.Replace(text)

	if cfg.EnableTransliteration {
		text = transliterate(lookup, text)
	}
	return internal_normalizers.CollapseWhitespace(text)
}

// passthrough only composes and trims.
func passthrough(text string) string {
	return internal_normalizers.CollapseWhitespace(norm.NFC.String(text))
}

// transliterate rewrites every alphabetic token that is longer than one
// character, is not a dictionary key and does not read as Vietnamese. The
// text is already lowercase. Each distinct token is transliterated once per
// call.
func transliterate(lookup *internal_dictionary.Lookup, text string) string {
	seen := make(map[string]string)
	return internal_dictionary.RewriteTokens(text, func(token string) string {
		if out, ok := seen[token]; ok {
			return out
		}
		out := token
		if needsTransliteration(lookup, token) {
			out = internal_transliterator.Transliterate(token)
		}
		seen[token] = out
		return out
	})
}

func needsTransliteration(lookup *internal_dictionary.Lookup, word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			return false
		}
	}
	if _, ok := lookup.Resolve(word); ok {
		return false
	}
	return !internal_detector.IsVietnamese(word)
}
