// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

const (
	HEADER_REQUEST_ID         = "X-Request-Id"
	HEADER_DICTIONARY_VERSION = "X-Dictionary-Version"
	HEADER_ENVIRONMENT_KEY    = "X-Environment"
)
