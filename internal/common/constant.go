// Package common contains shared constants and sentinel errors used across
// taskbalance components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DateLayout is the calendar date format used for task due dates and
// balance records.
const DateLayout = "2006-01-02"
