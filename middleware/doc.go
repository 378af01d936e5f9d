// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: per-request slog logging (start, completion, duration)
  - JSONResponse / ErrorResponse: JSON encoding with the standard error shape
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support, wrapped around the whole mux in main

Handlers never write to the ResponseWriter directly; everything goes
through JSONResponse or ErrorResponse so the error shape stays uniform.
*/
package middleware
