// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

type redisSource struct {
	client redis.Cmdable
	key    string
}

// NewRedisSource reads a hash whose fields are words and values pronunciations.
func NewRedisSource(client redis.Cmdable, key string) Source {
	return &redisSource{client: client, key: key}
}

func (s *redisSource) Name() string { return "redis:" + s.key }

func (s *redisSource) Load(ctx context.Context) ([]Entry, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: HGETALL %s: %v", ErrSourceUnavailable, s.key, err)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: fields[k]})
	}
	return entries, nil
}
