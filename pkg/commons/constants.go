// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commons

// SEPARATOR joins list values packed into a single option string.
const SEPARATOR = "<|||>"

type contextKey string

// RequestIDKey carries the per request id through context.Context.
const RequestIDKey contextKey = "request_id"
