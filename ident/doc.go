// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates random identifiers from a configured character set.

Session IDs are short and URL-friendly so they can be shared by hand:

	id, err := ident.Generate(cfg.SessionIDAlphabet, cfg.SessionIDLength)

The alphabet and length come from configuration (see cliparse). User IDs
are UUIDs and do not go through this package.
*/
package ident
