// Package cli provides the interactive Memory Vault command-line client.
//
// It wires configuration, the storage backend, the vault and services,
// and an interactive REPL over the capsule gallery. Typical flow: open
// the store (seeding it on first run), render the gallery, and execute
// user commands.
//
// Key features:
//   - List / filter the gallery by text and status
//   - Create capsules with date, location or manual triggers
//   - Attach media files
//   - Unlock ready capsules, with an OS notification
//   - Inspect and change settings
//   - Watch the data directory for external changes
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
