// Package common contains shared constants and sentinel errors used across
// LoveSurprise components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ShareRoutePrefix is the public path under which a surprise page is served.
const ShareRoutePrefix = "/s/"
