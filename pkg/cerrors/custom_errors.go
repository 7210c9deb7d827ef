package cerrors

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidValue is the broad invalid-value category; a data corruption
// fault matches it through errors.Is
var ErrInvalidValue = errors.New("invalid value")

type Generic struct {
	Phase  string
	Reason string
}

func (e Generic) Error() string {
	if e.Phase == "" {
		return e.Reason
	}
	return fmt.Sprintf("[%s]: %s", e.Phase, e.Reason)
}

func (e Generic) UserFriendly() bool {
	return true
}

func (e Generic) ErrorType() ErrorType {
	return ErrorTypeGeneric
}

// Configuration marks caller misuse of a fault spec, such as a latency
// fault with no duration set. It is never counted as an injected fault.
type Configuration struct {
	Field  string
	Reason string
}

func (e Configuration) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid fault configuration, %s", e.Reason)
	}
	return fmt.Sprintf("invalid fault configuration: field '%s', %s", e.Field, e.Reason)
}

func (e Configuration) UserFriendly() bool {
	return true
}

func (e Configuration) ErrorType() ErrorType {
	return ErrorTypeConfiguration
}

type ExperimentNotFound struct {
	ID string
}

func (e ExperimentNotFound) Error() string {
	return fmt.Sprintf("experiment '%s' not found, it was never scheduled", e.ID)
}

func (e ExperimentNotFound) UserFriendly() bool {
	return true
}

func (e ExperimentNotFound) ErrorType() ErrorType {
	return ErrorTypeExperimentNotFound
}

// Fault is the simulated application error carrying a code and message
type Fault struct {
	Code    int
	Message string
}

func (e Fault) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e Fault) UserFriendly() bool {
	return true
}

func (e Fault) ErrorType() ErrorType {
	return ErrorTypeFault
}

// TimeoutFault is the simulated timeout. It narrows the generic timeout
// category: errors.Is(err, context.DeadlineExceeded) and os.IsTimeout both
// report true for it.
type TimeoutFault struct {
	Message string
}

func (e TimeoutFault) Error() string {
	return e.Message
}

func (e TimeoutFault) Timeout() bool {
	return true
}

func (e TimeoutFault) Is(target error) bool {
	return target == context.DeadlineExceeded
}

func (e TimeoutFault) UserFriendly() bool {
	return true
}

func (e TimeoutFault) ErrorType() ErrorType {
	return ErrorTypeTimeoutFault
}

type PartialFailure struct {
	Message string
}

func (e PartialFailure) Error() string {
	return fmt.Sprintf("[partial_failure] %s", e.Message)
}

func (e PartialFailure) UserFriendly() bool {
	return true
}

func (e PartialFailure) ErrorType() ErrorType {
	return ErrorTypePartialFailure
}

type ResourceExhaustion struct {
	Message string
}

func (e ResourceExhaustion) Error() string {
	return fmt.Sprintf("[resource_exhaustion] %s", e.Message)
}

func (e ResourceExhaustion) UserFriendly() bool {
	return true
}

func (e ResourceExhaustion) ErrorType() ErrorType {
	return ErrorTypeResourceExhaustion
}

// DataCorruption is the simulated data corruption. It narrows the broad
// invalid-value category through errors.Is(err, ErrInvalidValue).
type DataCorruption struct {
	Message string
}

func (e DataCorruption) Error() string {
	return fmt.Sprintf("[data_corruption] %s", e.Message)
}

func (e DataCorruption) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e DataCorruption) UserFriendly() bool {
	return true
}

func (e DataCorruption) ErrorType() ErrorType {
	return ErrorTypeDataCorruption
}
