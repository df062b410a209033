// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

// Option is a flat bag of dotted keys, e.g. "normalizer.enable_transliteration".
type Option map[string]interface{}

func (o Option) GetString(key string) (string, error) {
	val, ok := o[key]
	if !ok || val == nil {
		return "", fmt.Errorf("option %s not found", key)
	}
	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (o Option) GetUint64(key string) (uint64, error) {
	val, ok := o[key]
	if !ok || val == nil {
		return 0, fmt.Errorf("option %s not found", key)
	}
	switch v := val.(type) {
	case uint64:
		return v, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("option %s is negative", key)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("option %s is negative", key)
		}
		return uint64(v), nil
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("option %s is negative", key)
		}
		return uint64(v), nil
	case string:
		return strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	default:
		return 0, fmt.Errorf("option %s has unsupported type %T", key, val)
	}
}

func (o Option) GetBool(key string) (bool, error) {
	val, ok := o[key]
	if !ok || val == nil {
		return false, fmt.Errorf("option %s not found", key)
	}
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return false, fmt.Errorf("option %s has unsupported type %T", key, val)
	}
}

// Decode copies every key under prefix (without the prefix) into out using
// mapstructure tags. String values bound for a slice field are split on
// commons.SEPARATOR, or on commas when the separator is absent.
func (o Option) Decode(prefix string, out interface{}) error {
	scoped := make(map[string]interface{})
	for k, v := range o {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		scoped[strings.TrimPrefix(k, prefix)] = v
	}
	if len(scoped) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       listHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(scoped); err != nil {
		return fmt.Errorf("unable to decode %s options: %w", strings.TrimSuffix(prefix, "."), err)
	}
	return nil
}

func listHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	raw := data.(string)
	if raw == "" {
		return []string{}, nil
	}
	sep := ","
	if strings.Contains(raw, commons.SEPARATOR) {
		sep = commons.SEPARATOR
	}
	parts := strings.Split(raw, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
