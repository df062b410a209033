// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"golang.org/x/sync/errgroup"
)

// Load reads both sources concurrently and builds a snapshot. A failing or
// nil source contributes no entries; its error is logged and kept in the
// snapshot's Sources. Only cancellation of ctx is returned as an error.
func Load(ctx context.Context, logger commons.Logger, acronyms, words Source) (*Lookup, error) {
	start := time.Now()
	var (
		acronymEntries, wordEntries []Entry
		statuses                    = make([]SourceStatus, 2)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		acronymEntries, statuses[0] = loadSource(gctx, logger, KindAcronym, acronyms)
		return gctx.Err()
	})
	g.Go(func() error {
		wordEntries, statuses[1] = loadSource(gctx, logger, KindWord, words)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lookup := Build(acronymEntries, wordEntries)
	lookup.sources = statuses
	if lookup.skipped > 0 {
		logger.Debugf("dictionary: skipped %d keys not starting with a word character", lookup.skipped)
	}
	logger.Benchmark("dictionary.Load", time.Since(start))
	return lookup, nil
}

func loadSource(ctx context.Context, logger commons.Logger, kind Kind, src Source) ([]Entry, SourceStatus) {
	if src == nil {
		return nil, SourceStatus{Kind: kind, Name: "none"}
	}
	status := SourceStatus{Kind: kind, Name: src.Name()}
	entries, err := src.Load(ctx)
	if err != nil {
		logger.Warnf("dictionary: %s source %s unavailable, using empty dictionary: %v", kind, src.Name(), err)
		status.Error = err.Error()
		return nil, status
	}
	status.Entries = len(entries)
	logger.Debugf("dictionary: loaded %d %s entries from %s", len(entries), kind, src.Name())
	return entries, status
}

// Store holds the current snapshot and swaps it atomically on Reload.
// Readers never see a half built dictionary.
type Store struct {
	logger   commons.Logger
	acronyms Source
	words    Source
	current  atomic.Pointer[Lookup]
}

// NewStore starts with an empty snapshot; call Reload to fill it.
func NewStore(logger commons.Logger, acronyms, words Source) *Store {
	s := &Store{logger: logger, acronyms: acronyms, words: words}
	s.current.Store(Build(nil, nil))
	return s
}

// Current returns the snapshot to use for one normalization call.
func (s *Store) Current() *Lookup {
	return s.current.Load()
}

// Reload rebuilds the snapshot from the sources and publishes it. Calls
// in flight keep the snapshot they already hold.
func (s *Store) Reload(ctx context.Context) (*Lookup, error) {
	lookup, err := Load(ctx, s.logger, s.acronyms, s.words)
	if err != nil {
		return nil, err
	}
	previous := s.current.Swap(lookup)
	s.logger.Infof("dictionary: reloaded version=%s entries=%d previous=%s", lookup.Version(), lookup.Len(), previous.Version())
	return lookup, nil
}
