// Package cli provides the interactive EduHub command-line client.
//
// It wires configuration, the local SQLite store, the REST client and the
// services into a read–eval–print loop. On start the persisted admin
// session is verified (guest mode when it is absent or rejected), then the
// user browses the course catalog and, as admin, manages content.
//
// Key features:
//   - Catalog navigation: semesters, subjects, open, tab, list
//   - Quick access across a semester: assignments, pyqs, syllabus
//   - Admin session: login, logout, check, whoami
//   - Content management: upload, add, delete, download, storage, uploads
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled. See App and runREPL for details.
package cli
