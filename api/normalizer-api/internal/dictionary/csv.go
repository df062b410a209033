// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	AcronymsFile      = "acronyms.csv"
	WordsFile         = "non-vietnamese-words.csv"
	WordsFallbackFile = "non-vietnamese-words-20k.csv"
)

// header columns tried in order for each kind
var csvColumns = map[Kind]struct {
	keys   []string
	values []string
}{
	KindAcronym: {keys: []string{"acronym", "word"}, values: []string{"transliteration", "vietnamese_pronunciation"}},
	KindWord:    {keys: []string{"word", "original"}, values: []string{"vietnamese_pronunciation", "transliteration"}},
}

type csvSource struct {
	path string
	kind Kind
}

// NewCSVSource reads a UTF-8 CSV file with a header row.
func NewCSVSource(path string, kind Kind) Source {
	return &csvSource{path: path, kind: kind}
}

// DataDirSources resolves the standard file names inside dir. The words file
// falls back to the 20k list when the primary one is absent.
func DataDirSources(dir string) (acronyms Source, words Source) {
	acronyms = NewCSVSource(filepath.Join(dir, AcronymsFile), KindAcronym)
	wordsPath := filepath.Join(dir, WordsFile)
	if _, err := os.Stat(wordsPath); err != nil {
		if fallback := filepath.Join(dir, WordsFallbackFile); fileExists(fallback) {
			wordsPath = fallback
		}
	}
	return acronyms, NewCSVSource(wordsPath, KindWord)
}

func (s *csvSource) Name() string { return "csv:" + s.path }

// Path is the file backing this source.
func (s *csvSource) Path() string { return s.path }

func (s *csvSource) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.path, err)
	}
	defer f.Close()

	entries, err := parseCSV(f, s.kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.path, err)
	}
	return entries, nil
}

func parseCSV(r io.Reader, kind Kind) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	cols := csvColumns[kind]
	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read row: %w", err)
		}
		key := firstField(record, index, cols.keys)
		value := firstField(record, index, cols.values)
		if key == "" || value == "" {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}

// firstField returns the first non empty value among the named columns.
func firstField(record []string, index map[string]int, names []string) string {
	for _, name := range names {
		i, ok := index[name]
		if !ok || i >= len(record) {
			continue
		}
		if v := strings.TrimSpace(record[i]); v != "" {
			return v
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
