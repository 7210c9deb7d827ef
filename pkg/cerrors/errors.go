package cerrors

import "github.com/palantir/stacktrace"

type ErrorType string

const (
	ErrorTypeNonUserFriendly    ErrorType = "NON_USER_FRIENDLY_ERROR"
	ErrorTypeGeneric            ErrorType = "GENERIC_ERROR"
	ErrorTypeConfiguration      ErrorType = "CONFIGURATION_ERROR"
	ErrorTypeExperimentNotFound ErrorType = "EXPERIMENT_NOT_FOUND_ERROR"
	ErrorTypeFault              ErrorType = "FAULT_ERROR"
	ErrorTypeTimeoutFault       ErrorType = "TIMEOUT_FAULT_ERROR"
	ErrorTypePartialFailure     ErrorType = "PARTIAL_FAILURE_ERROR"
	ErrorTypeResourceExhaustion ErrorType = "RESOURCE_EXHAUSTION_ERROR"
	ErrorTypeDataCorruption     ErrorType = "DATA_CORRUPTION_ERROR"
)

type userFriendly interface {
	UserFriendly() bool
	ErrorType() ErrorType
}

// IsUserFriendly returns true if err is marked as safe to present to the caller
func IsUserFriendly(err error) bool {
	ufe, ok := err.(userFriendly)
	return ok && ufe.UserFriendly()
}

// GetErrorType returns the type of error if the error is user-friendly
func GetErrorType(err error) ErrorType {
	if ufe, ok := err.(userFriendly); ok {
		return ufe.ErrorType()
	}
	return ErrorTypeNonUserFriendly
}

// GetRootCauseAndErrorCode unwraps err to its root cause and reports the
// root cause's message and error type
func GetRootCauseAndErrorCode(err error) (string, ErrorType) {
	rootCause := stacktrace.RootCause(err)
	errorType := GetErrorType(rootCause)
	if !IsUserFriendly(rootCause) {
		return err.Error(), errorType
	}
	return rootCause.Error(), errorType
}

// IsSimulatedFault reports whether the error type is one produced by a
// fired fault, as opposed to caller misuse or scheduler bookkeeping
func IsSimulatedFault(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeFault, ErrorTypeTimeoutFault, ErrorTypePartialFailure, ErrorTypeResourceExhaustion, ErrorTypeDataCorruption:
		return true
	}
	return false
}
