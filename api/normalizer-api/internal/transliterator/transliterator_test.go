// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transliterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two syllables", "hello", "he-lo"},
		{"capitalised input", "Hello", "he-lo"},
		{"doubled f and le ending", "waffle", "uáp-phồ"},
		{"er ending and c to k", "computer", "com-pu-tơ"},
		{"leading y becomes d stroke", "yes", "đẹt"},
		{"already vietnamese", "phở", "phở"},
		{"plain vietnamese syllable", "tranh", "tranh"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Transliterate(tt.input))
		})
	}
}

func TestTransliterate_Deterministic(t *testing.T) {
	for _, word := range []string{"hello", "waffle", "computer", "streaming", "facebook"} {
		first := Transliterate(word)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Transliterate(word), word)
		}
	}
}

func TestCleanClusters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"llo", "lo"},
		{"hphồ", "phồ"},
		{"thanh", "thanh"},
		{"bcd", "cd"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanClusters(tt.input))
		})
	}
}

func TestApplyCKRule(t *testing.T) {
	assert.Equal(t, "kim", applyCKRule("cim"))
	assert.Equal(t, "com", applyCKRule("kom"))
	assert.Equal(t, "chi", applyCKRule("chi"))
	assert.Equal(t, "c", applyCKRule("k"))
	assert.Equal(t, "ba", applyCKRule("ba"))
}

func TestFilterEnding(t *testing.T) {
	assert.Equal(t, "ban", filterEnding("bal"))
	assert.Equal(t, "ba", filterEnding("bar"))
	assert.Equal(t, "bat", filterEnding("bat"))
	assert.Equal(t, "x", filterEnding("x"))
}
