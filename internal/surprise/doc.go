// Package surprise holds the domain rules shared by the client and the
// server: plans, record statuses, video-link parsing and content validation.
package surprise
