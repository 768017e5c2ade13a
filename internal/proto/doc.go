// Package proto is the wire contract between the LoveSurprise client and
// server: request/response messages, the service descriptor, a typed client
// and the server interface. Messages travel as JSON through a gRPC codec
// registered under the "json" content subtype.
package proto
