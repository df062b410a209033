// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// remotePayload is the body served by a dictionary endpoint.
type remotePayload struct {
	Entries []Entry `json:"entries"`
}

type remoteSource struct {
	client *resty.Client
	url    string
	kind   Kind
}

// NewRemoteSource fetches GET {url}?kind=acronym|word and expects
// {"entries":[{"key":"...","value":"..."}]}.
func NewRemoteSource(client *resty.Client, url string, kind Kind) Source {
	return &remoteSource{client: client, url: url, kind: kind}
}

func (s *remoteSource) Name() string { return "remote:" + s.url + "?kind=" + string(s.kind) }

func (s *remoteSource) Load(ctx context.Context) ([]Entry, error) {
	var payload remotePayload
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("kind", string(s.kind)).
		SetHeader("Accept", "application/json").
		SetResult(&payload).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrSourceUnavailable, s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrSourceUnavailable, s.url, resp.StatusCode())
	}
	return payload.Entries, nil
}
