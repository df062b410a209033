// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"embed"
	"fmt"
)

//go:embed data/*.csv
var defaultData embed.FS

type embeddedSource struct {
	file string
	kind Kind
}

// NewEmbeddedSource serves the small default tables shipped in the binary.
func NewEmbeddedSource(kind Kind) Source {
	file := "data/" + WordsFile
	if kind == KindAcronym {
		file = "data/" + AcronymsFile
	}
	return &embeddedSource{file: file, kind: kind}
}

func (s *embeddedSource) Name() string { return "embedded:" + s.file }

func (s *embeddedSource) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := defaultData.Open(s.file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.file, err)
	}
	defer f.Close()
	return parseCSV(f, s.kind)
}
