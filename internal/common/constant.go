package common

// AccessTokenHeaderName is the gRPC metadata key carrying the session
// credential on inbound and outbound calls.
const AccessTokenHeaderName = "access_token"

// ResetTokenBytes is the number of random bytes in a password reset token
// (160 bits, hex encoded to 40 characters).
const ResetTokenBytes = 20
