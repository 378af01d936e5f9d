// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. CLI flags take precedence over env vars.

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 3419)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_ID_CHARS (-id-chars): character set for generated session IDs
  - SESSION_ID_LENGTH (-id-len): length of generated session IDs (default: 8)

A .env file is loaded by main before parsing, so settings can also live
there during development.
*/
package cliparse
