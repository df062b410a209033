// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import (
	"context"
	"strings"

	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	internal_normalizers "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/normalizers"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
)

// =============================================================================
// Text Normalizer Interface
// =============================================================================

// TextNormalizer turns free text into a string a Vietnamese speech
// synthesizer can read as is.
type TextNormalizer interface {
	// Normalize uses the instance configuration.
	Normalize(ctx context.Context, text string) string

	// NormalizeWithOptions overrides the instance configuration for one call
	// with "normalizer.*" keys.
	NormalizeWithOptions(ctx context.Context, text string, opts utils.Option) string
}

// OptionPrefix scopes the per call keys inside a utils.Option.
const OptionPrefix = "normalizer."

type NormalizerConfig struct {

	// run the rewrite pipeline; when false the text is only composed and trimmed
	EnablePreprocessing bool `mapstructure:"enable_preprocessing"`

	// transliterate foreign words the dictionary does not know
	EnableTransliteration bool `mapstructure:"enable_transliteration"`

	// pass groups to run, empty runs all of them
	Passes []string `mapstructure:"passes"`
}

func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		EnablePreprocessing:   true,
		EnableTransliteration: true,
		Passes:                []string{},
	}
}

// NormalizerConfigFrom copies the application level defaults.
func NormalizerConfigFrom(cfg config.NormalizerConfig) NormalizerConfig {
	return NormalizerConfig{
		EnablePreprocessing:   cfg.EnablePreprocessing,
		EnableTransliteration: cfg.EnableTransliteration,
		Passes:                append([]string{}, cfg.Passes...),
	}
}

// WithOptions returns a copy of c with the "normalizer.*" keys of opts
// applied. Keys that fail to decode are logged and ignored.
func (c NormalizerConfig) WithOptions(logger commons.Logger, opts utils.Option) NormalizerConfig {
	if len(opts) == 0 {
		return c
	}
	out := c
	// decode into a nil slice so a shorter override does not keep old entries
	out.Passes = nil
	if err := opts.Decode(OptionPrefix, &out); err != nil {
		logger.Warnf("normalizer: ignoring invalid options: %v", err)
		return c
	}
	if _, ok := opts[OptionPrefix+"passes"]; !ok {
		out.Passes = append([]string{}, c.Passes...)
	}
	return out
}

// BuildNormalizerPipeline returns the pipeline restricted to the named pass
// groups. An empty list returns the complete pipeline.
func BuildNormalizerPipeline(logger commons.Logger, names []string) *internal_normalizers.Pipeline {
	pipeline := internal_normalizers.NewPipeline(logger)
	if len(names) == 0 {
		return pipeline
	}

	groups := make([]string, 0, len(names))
	unknown := 0
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		var group string

		switch name {
		case "":
			continue
		case "cleanup", "clean", "symbol", "punctuation":
			group = internal_normalizers.GroupCleanup
		case "date", "dates":
			group = internal_normalizers.GroupDate
		case "time", "times":
			group = internal_normalizers.GroupTime
		case "ordinal", "ordinals":
			group = internal_normalizers.GroupOrdinal
		case "currency":
			group = internal_normalizers.GroupCurrency
		case "percentage", "percent":
			group = internal_normalizers.GroupPercentage
		case "phone":
			group = internal_normalizers.GroupPhone
		case "decimal":
			group = internal_normalizers.GroupDecimal
		case "unit", "units":
			group = internal_normalizers.GroupUnit
		case "roman":
			group = internal_normalizers.GroupRoman
		case "number", "number-to-word":
			group = internal_normalizers.GroupNumber
		case "whitespace":
			group = internal_normalizers.GroupWhitespace
		default:
			logger.Warnf("normalizer: unknown normalizer '%s', skipping", name)
			unknown++
			continue
		}
		groups = append(groups, group)
	}
	switch {
	case len(groups) == 0 && unknown == 0:
		return pipeline
	case len(groups) == 0:
		// only unknown names: keep whitespace collapsing
		return pipeline.Subset([]string{internal_normalizers.GroupWhitespace})
	}
	return pipeline.Subset(groups)
}
