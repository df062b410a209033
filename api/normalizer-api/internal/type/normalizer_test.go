// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import (
	"testing"

	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(commons.Name("test-type"), commons.Level("error"))
	require.NoError(t, err)
	return logger
}

func TestDefaultNormalizerConfig(t *testing.T) {
	cfg := DefaultNormalizerConfig()
	assert.True(t, cfg.EnablePreprocessing)
	assert.True(t, cfg.EnableTransliteration)
	assert.Empty(t, cfg.Passes)
}

func TestNormalizerConfigFrom(t *testing.T) {
	cfg := NormalizerConfigFrom(config.NormalizerConfig{
		EnablePreprocessing: true,
		Passes:              []string{"date"},
	})
	assert.True(t, cfg.EnablePreprocessing)
	assert.False(t, cfg.EnableTransliteration)
	assert.Equal(t, []string{"date"}, cfg.Passes)
}

func TestNormalizerConfig_WithOptions(t *testing.T) {
	logger := newTestLogger(t)
	base := DefaultNormalizerConfig()
	base.Passes = []string{"date", "time", "number"}

	tests := []struct {
		name     string
		opts     utils.Option
		expected NormalizerConfig
	}{
		{
			name:     "no options",
			opts:     nil,
			expected: base,
		},
		{
			name: "toggles",
			opts: utils.Option{
				"normalizer.enable_preprocessing":   false,
				"normalizer.enable_transliteration": "false",
			},
			expected: NormalizerConfig{
				EnablePreprocessing:   false,
				EnableTransliteration: false,
				Passes:                []string{"date", "time", "number"},
			},
		},
		{
			name: "shorter pass list replaces",
			opts: utils.Option{"normalizer.passes": "currency"},
			expected: NormalizerConfig{
				EnablePreprocessing:   true,
				EnableTransliteration: true,
				Passes:                []string{"currency"},
			},
		},
		{
			name: "other prefixes ignored",
			opts: utils.Option{"speaker.language": "vi"},
			expected: base,
		},
		{
			name:     "invalid value keeps base",
			opts:     utils.Option{"normalizer.enable_preprocessing": "maybe"},
			expected: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.WithOptions(logger, tt.opts))
		})
	}
	assert.Equal(t, []string{"date", "time", "number"}, base.Passes)
}

func TestBuildNormalizerPipeline(t *testing.T) {
	logger := newTestLogger(t)

	full := BuildNormalizerPipeline(logger, nil)
	assert.Len(t, full.Names(), 18)

	assert.Equal(t, full.Names(), BuildNormalizerPipeline(logger, []string{"", " "}).Names())

	dates := BuildNormalizerPipeline(logger, []string{"Dates", "unknown"})
	assert.Equal(t, []string{"year-range", "date", "whitespace"}, dates.Names())

	assert.Equal(t, []string{"whitespace"}, BuildNormalizerPipeline(logger, []string{"unknown"}).Names())

	numbers := BuildNormalizerPipeline(logger, []string{"number-to-word", "units"})
	assert.Equal(t, []string{"thousand", "unit", "number", "whitespace"}, numbers.Names())
	assert.Equal(t, "năm ki-lô-mét", numbers.Normalize("5km"))
}
