// Package client contains the client-side building blocks for talking to
// the LoveSurprise backend.
//
// The package provides:
//  1. A transport-agnostic API contract (the Client interface): accounts,
//     the session accessor, and surprise records.
//  2. A gRPC implementation (GRPCClient) that injects the access token via a
//     unary interceptor, refreshes expired tokens transparently, and maps
//     gRPC status codes to sentinel errors (ErrUnauthorized, ErrUnavailable,
//     ErrNotFound, ...).
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the client's SQLite file and applies the embedded goose migrations.
package client
