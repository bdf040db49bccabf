// Package cli provides the interactive MycoMarket command-line client.
//
// It wires configuration, the persisted session, the API client, the query
// cache, and an interactive REPL over the application services. Typical
// flow: restore the saved session if one exists, then execute user commands
// until exit.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Forum feed, posts, comments, likes and bookmarks
//   - Marketplace browsing and farmer listings
//   - Farmer directory and the become-a-farmer flow
//   - Direct messages with background polling while a thread is open
//   - File uploads
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
