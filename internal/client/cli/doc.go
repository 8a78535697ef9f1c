// Package cli provides the interactive Hack or Snooze command-line client.
//
// It wires configuration, the local session store, the API services, and an
// interactive REPL. Typical flow: restore a saved session if one exists,
// fetch the story listing, and execute user commands.
//
// Key features:
//   - Login / Signup / Logout with session persistence between runs
//   - List all stories, own stories, and favorites
//   - Submit, edit, and delete stories
//   - Favorite / unfavorite stories
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
