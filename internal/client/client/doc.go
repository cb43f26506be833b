// Package client contains the client-side building blocks that talk to the
// EduHub backend and open the local store.
//
// # Overview
//
// The package provides:
//  1. The REST contract (see the Client interface): Login, Verify,
//     ListContent, CreateContent, UploadContent, DeleteContent,
//     StorageStatus and Download.
//  2. HTTPClient, a net/http implementation that adds the bearer token and
//     a request id to each call, applies a per-request timeout and maps
//     responses onto the error taxonomy.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations,
//     NewRepositories) for an SQLite file with embedded goose migrations.
//
// # Error Handling
//
// Failures unwrap to one of ErrUnauthenticated, ErrUnauthorized,
// ErrNotFound, ErrPayloadTooLarge, ErrUnavailable or ErrServer. Kind turns
// any error into an ErrorKind for result values; StatusError keeps the HTTP
// status and the server's message.
package client
