package error

import "net/http"

// SafetyBlockedError means the primary provider's content classifier refused
// the question. Authoritative: the request must not be retried elsewhere.
type SafetyBlockedError string

func (err SafetyBlockedError) Error() string {
	return string(err)
}

func (err SafetyBlockedError) ErrCode() string {
	return "SAFETY_BLOCKED"
}

func (err SafetyBlockedError) StatusCode() int {
	return http.StatusBadRequest
}

// NotConfiguredError means a required provider credential is missing.
type NotConfiguredError string

func (err NotConfiguredError) Error() string {
	return string(err)
}

func (err NotConfiguredError) ErrCode() string {
	return "NOT_CONFIGURED"
}

func (err NotConfiguredError) StatusCode() int {
	return http.StatusInternalServerError
}

// QuotaExceededError means the primary provider reported quota exhaustion and
// no fallback could produce an answer.
type QuotaExceededError string

func (err QuotaExceededError) Error() string {
	return string(err)
}

func (err QuotaExceededError) ErrCode() string {
	return "QUOTA_EXCEEDED"
}

func (err QuotaExceededError) StatusCode() int {
	return http.StatusTooManyRequests
}

// UnavailableError means every provider in the chain failed.
type UnavailableError string

func (err UnavailableError) Error() string {
	return string(err)
}

func (err UnavailableError) ErrCode() string {
	return "PROVIDERS_UNAVAILABLE"
}

func (err UnavailableError) StatusCode() int {
	return http.StatusInternalServerError
}
