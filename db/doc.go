// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

Two tables are persisted: app_user (the user-creation collaborator's
store) and session (metadata so owners can list what they created). Votes
and rosters are deliberately not persisted - an estimation round lives and
dies in memory.

The schema works unchanged on both drivers the server supports
(modernc.org/sqlite and lib/pq); placeholders use the $1 form, which both
understand.
*/
package db
