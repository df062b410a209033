// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/nghimestudio/vietnormalizer/api/normalizer-api/config"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"github.com/redis/go-redis/v9"
)

// Sources is the pair of dictionary sources chosen by configuration.
type Sources struct {
	Acronyms Source
	Words    Source
	// files worth watching for changes, empty for non file sources
	Files []string
	close func() error
}

// Close releases connections held by the sources.
func (s *Sources) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewSources builds the sources named by cfg.Source.
func NewSources(logger commons.Logger, cfg config.DictionaryConfig) (*Sources, error) {
	switch cfg.Source {
	case "", "embedded":
		return &Sources{
			Acronyms: NewEmbeddedSource(KindAcronym),
			Words:    NewEmbeddedSource(KindWord),
		}, nil

	case "csv":
		var acronyms, words Source
		if cfg.DataDir != "" {
			acronyms, words = DataDirSources(cfg.DataDir)
		}
		if cfg.AcronymsPath != "" {
			acronyms = NewCSVSource(cfg.AcronymsPath, KindAcronym)
		}
		if cfg.WordsPath != "" {
			words = NewCSVSource(cfg.WordsPath, KindWord)
		}
		if acronyms == nil && words == nil {
			return nil, fmt.Errorf("csv dictionary needs a data dir or file paths")
		}
		out := &Sources{Acronyms: acronyms, Words: words}
		for _, src := range []Source{acronyms, words} {
			if f, ok := src.(interface{ Path() string }); ok {
				out.Files = append(out.Files, f.Path())
			}
		}
		logger.Infof("dictionary: csv sources %v", out.Files)
		return out, nil

	case "sql":
		db, err := OpenDatabase(cfg.SQL.Driver, cfg.SQL.DSN)
		if err != nil {
			return nil, err
		}
		if err := Migrate(db); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql handle: %w", err)
		}
		return &Sources{
			Acronyms: NewSQLSource(db, KindAcronym),
			Words:    NewSQLSource(db, KindWord),
			close:    sqlDB.Close,
		}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return &Sources{
			Acronyms: NewRedisSource(client, cfg.Redis.AcronymsKey),
			Words:    NewRedisSource(client, cfg.Redis.WordsKey),
			close:    client.Close,
		}, nil

	case "remote":
		if strings.TrimSpace(cfg.Remote.URL) == "" {
			return nil, fmt.Errorf("remote dictionary needs a url")
		}
		client := resty.New().SetTimeout(cfg.Remote.Timeout).SetRetryCount(2)
		return &Sources{
			Acronyms: NewRemoteSource(client, cfg.Remote.URL, KindAcronym),
			Words:    NewRemoteSource(client, cfg.Remote.URL, KindWord),
		}, nil
	}
	return nil, fmt.Errorf("unknown dictionary source %q", cfg.Source)
}
