// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

NewRouter wires every endpoint to its handler and wraps each one in the
logging middleware:

	mux := router.NewRouter(db, cfg, sessions)

Path parameters use the {id} syntax and are read via r.PathValue in the
handlers. CORS is applied around the whole mux in main, not per route.
*/
package router
