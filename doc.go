// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pointdeck API server.

Pointdeck is a planning-poker backend: a team creates an estimation
session, participants join, a story is set, everyone submits point
estimates, and the session reveals all votes once the round is complete.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=file:pointdeck.db go run .

Or with flags:

	go run . -p 3419 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 3419)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_ID_CHARS (-id-chars): character set for generated session IDs
  - SESSION_ID_LENGTH (-id-len): length of generated session IDs

# Architecture

The server uses a handler-based architecture with dependency injection:

  - session: the estimation-round domain object and the in-memory registry
  - handlers: HTTP request handlers (users, sessions, estimates)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - ident: session ID generation from a configured character set
  - db: schema creation (users and session metadata)
  - cliparse: configuration parsing

Users and session metadata are persisted; the live estimation state
(roster, story, votes) is in-memory only.

See package documentation for each component.
*/
package main
