// Package cli provides the interactive SHIELD command-line client.
//
// It drives the session, detection and dashboard services from a REPL.
// Typical flow: restore the previous session (if any), start a background
// connectivity watcher, and execute user commands until exit.
//
// Key features:
//   - Signup / Login / Logout / change password
//   - Image, audio and video checks from a file path; text checks from
//     multi-line input
//   - Risk score over the checks made in this run
//   - Dashboard: totals, fake/real split, per-type breakdown, request log
//     and the seven-day trend
//   - Feedback
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartStatusWatcher, and runREPL for details.
package cli
