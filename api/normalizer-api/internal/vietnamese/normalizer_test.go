// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_vietnamese

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	internal_dictionary "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/dictionary"
	internal_type "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/type"
	"github.com/nghimestudio/vietnormalizer/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type mockLogger struct {
	mu           sync.Mutex
	warnMessages []string
	benchmarks   int
}

func newMockLogger() *mockLogger {
	return &mockLogger{warnMessages: make([]string, 0)}
}

func (m *mockLogger) Level() zapcore.Level                        { return zapcore.DebugLevel }
func (m *mockLogger) Debug(args ...interface{})                   {}
func (m *mockLogger) Debugf(template string, args ...interface{}) {}
func (m *mockLogger) Info(args ...interface{})                    {}
func (m *mockLogger) Infof(template string, args ...interface{})  {}
func (m *mockLogger) Warn(args ...interface{})                    {}
func (m *mockLogger) Warnf(template string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, args...))
}
func (m *mockLogger) Error(args ...interface{})                    {}
func (m *mockLogger) Errorf(template string, args ...interface{})  {}
func (m *mockLogger) DPanic(args ...interface{})                   {}
func (m *mockLogger) DPanicf(template string, args ...interface{}) {}
func (m *mockLogger) Panic(args ...interface{})                    {}
func (m *mockLogger) Panicf(template string, args ...interface{})  {}
func (m *mockLogger) Fatal(args ...interface{})                    {}
func (m *mockLogger) Fatalf(template string, args ...interface{})  {}
func (m *mockLogger) Benchmark(functionName string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.benchmarks++
}
func (m *mockLogger) Tracef(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Sync() error                                                    { return nil }

// mutableSource serves whatever entries the test last set.
type mutableSource struct {
	mu      sync.Mutex
	entries []internal_dictionary.Entry
}

func (s *mutableSource) Name() string { return "mutable" }

func (s *mutableSource) Load(ctx context.Context) ([]internal_dictionary.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]internal_dictionary.Entry{}, s.entries...), nil
}

func (s *mutableSource) set(entries ...internal_dictionary.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

func newStore(t *testing.T, logger *mockLogger, acronyms, words []internal_dictionary.Entry) *internal_dictionary.Store {
	t.Helper()
	store := internal_dictionary.NewStore(logger,
		internal_dictionary.NewStaticSource("acronyms", acronyms...),
		internal_dictionary.NewStaticSource("words", words...),
	)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)
	return store
}

func TestNormalize(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger,
		[]internal_dictionary.Entry{{Key: "AI", Value: "ây ai"}},
		[]internal_dictionary.Entry{{Key: "email", Value: "i-meo"}},
	)
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"blank", "   \t ", ""},
		{"full date", "Hôm nay là 25/12/2023", "hôm nay là ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba"},
		{"foreign word", "Tôi thích hello", "tôi thích he-lo"},
		{"acronym", "Công nghệ AI", "công nghệ ây ai"},
		{"spelled code", "Mã D19E", "mã đê mười chín ê"},
		{"dictionary word", "Gửi email", "gửi i-meo"},
		{"clock and unit", "Lúc 10:30 chạy 5km", "lúc mười giờ ba mươi phút chạy năm ki-lô-mét"},
		{"plain vietnamese", "  Xin   chào  ", "xin chào"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(context.Background(), tt.input))
		})
	}
	assert.Positive(t, logger.benchmarks)
}

func TestNormalize_DictionaryBeatsTransliteration(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, nil, []internal_dictionary.Entry{{Key: "hello", Value: "hê lô"}})
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)

	assert.Equal(t, "tôi thích hê lô", n.Normalize(context.Background(), "Tôi thích hello"))
}

func TestNormalize_PreprocessingDisabled(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, nil, nil)
	cfg := internal_type.DefaultNormalizerConfig()
	cfg.EnablePreprocessing = false
	n := NewVietnameseNormalizer(logger, cfg, store)

	assert.Equal(t, "hôm nay là 25/12/2023", n.Normalize(context.Background(), "  Hôm nay   là 25/12/2023 "))
	assert.Equal(t, "tôi thích he-lo", n.Normalize(context.Background(), "Tôi thích hello"))
}

func TestNormalize_LongInputRunsEveryPass(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, nil, nil)
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)

	text := strings.Repeat("a ", 33*1024) + "có 5 người"
	out := n.Normalize(context.Background(), text)

	assert.True(t, strings.HasSuffix(out, "a có năm người"))
	assert.NotContains(t, out, "5")
}

func TestNormalize_TransliterationDisabled(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, nil, nil)
	cfg := internal_type.DefaultNormalizerConfig()
	cfg.EnableTransliteration = false
	n := NewVietnameseNormalizer(logger, cfg, store)

	assert.Equal(t, "tôi thích hello", n.Normalize(context.Background(), "Tôi thích hello"))
}

func TestNormalize_RepeatedForeignWord(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, nil, nil)
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)

	assert.Equal(t, "he-lo he-lo", n.Normalize(context.Background(), "Hello hello"))
}

func TestNormalize_PicksUpReload(t *testing.T) {
	logger := newMockLogger()
	words := &mutableSource{}
	store := internal_dictionary.NewStore(logger, nil, words)
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)

	assert.Equal(t, "tôi thích he-lo", n.Normalize(context.Background(), "Tôi thích hello"))

	words.set(internal_dictionary.Entry{Key: "hello", Value: "hê lô"})
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tôi thích hê lô", n.Normalize(context.Background(), "Tôi thích hello"))
}

func TestNormalizeWithOptions(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, nil, nil)
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		opts     utils.Option
		expected string
	}{
		{
			name:     "no options",
			input:    "Tôi thích hello",
			opts:     nil,
			expected: "tôi thích he-lo",
		},
		{
			name:     "transliteration off",
			input:    "Tôi thích hello",
			opts:     utils.Option{"normalizer.enable_transliteration": false},
			expected: "tôi thích hello",
		},
		{
			name:     "preprocessing off",
			input:    "Lúc 10:30",
			opts:     utils.Option{"normalizer.enable_preprocessing": "false"},
			expected: "lúc 10:30",
		},
		{
			name:     "date passes only",
			input:    "Hôm nay là 25/12/2023 lúc 10:30",
			opts:     utils.Option{"normalizer.passes": "date"},
			expected: "hôm nay là ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba lúc 10:30",
		},
		{
			name:     "unrelated keys",
			input:    "Lúc 10:30",
			opts:     utils.Option{"speaker.voice": "female"},
			expected: "lúc mười giờ ba mươi phút",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.NormalizeWithOptions(ctx, tt.input, tt.opts))
		})
	}

	// overrides never leak into the instance configuration
	assert.Equal(t, "lúc mười giờ ba mươi phút", n.Normalize(ctx, "Lúc 10:30"))
}

func TestNormalize_Concurrent(t *testing.T) {
	logger := newMockLogger()
	store := newStore(t, logger, []internal_dictionary.Entry{{Key: "AI", Value: "ây ai"}}, nil)
	n := NewVietnameseNormalizer(logger, internal_type.DefaultNormalizerConfig(), store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.Equal(t, "công nghệ ây ai", n.Normalize(context.Background(), "Công nghệ AI"))
			}
		}()
		if i%4 == 0 {
			_, err := store.Reload(context.Background())
			require.NoError(t, err)
		}
	}
	wg.Wait()
}
