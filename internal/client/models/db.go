// Package models defines the client-side data of the LoveSurprise CLI:
// staged photos, local drafts and the views of server records.
package models
