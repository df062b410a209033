// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"errors"
)

// ErrSourceUnavailable wraps every failure to read a dictionary source. A
// missing source is treated as an empty dictionary.
var ErrSourceUnavailable = errors.New("dictionary source unavailable")

// Source yields the entries of one dictionary.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Entry, error)
}

// SourceStatus records the outcome of loading one source into a snapshot.
type SourceStatus struct {
	Kind    Kind   `json:"kind"`
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

type staticSource struct {
	name    string
	entries []Entry
}

// NewStaticSource serves a fixed list of entries.
func NewStaticSource(name string, entries ...Entry) Source {
	return &staticSource{name: name, entries: entries}
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
