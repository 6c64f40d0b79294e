// Package app is the composition root for gistwatch.
//
// Run wires configuration, preferences, logging, the GitHub client, and the
// feed controller together, then hands everything to the UI:
//
//  1. Load config from ~/.config/gistwatch/config.toml, apply flag overrides
//  2. Require a username (flag or config; there is no hardcoded default)
//  3. Load theme preference from prefs.toml
//  4. Open the rotating debug log file (stderr would corrupt the TUI)
//  5. Build the gitapi client and feed.Controller
//  6. Start the TUI and block until the user quits or the context cancels
//
// The initial gist fetch is issued by the UI on startup, exactly once;
// subsequent fetches happen only on an explicit refresh keypress.
package app
