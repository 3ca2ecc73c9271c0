// Package api holds the parts of the wire contract that are not in the
// generated protobuf package: the error reasons attached to failed calls.
package api

// ErrorDomain is the errdetails.ErrorInfo domain set on every failed call.
const ErrorDomain = "storefront"

// Error reasons carried in errdetails.ErrorInfo.Reason.
const (
	ReasonUnauthenticated         = "UNAUTHENTICATED"
	ReasonInvalidCredential       = "INVALID_CREDENTIAL"
	ReasonForbidden               = "FORBIDDEN"
	ReasonNotFound                = "NOT_FOUND"
	ReasonValidation              = "VALIDATION"
	ReasonEmptyCart               = "EMPTY_CART"
	ReasonInvalidOrExpiredToken   = "INVALID_OR_EXPIRED_TOKEN"
	ReasonPaymentFailed           = "PAYMENT_FAILED"
	ReasonPostChargeInconsistency = "POST_CHARGE_INCONSISTENCY"
	ReasonConflict                = "CONFLICT"
	ReasonInternal                = "INTERNAL"
)
