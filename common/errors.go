package common

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

//
// Base Types
//

type BaseError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"cause,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *BaseError) Unwrap() error {
	return e.Cause
}

func (e *BaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BaseError) CodeChain() string {
	if e.Cause != nil {
		var be StandardError
		if errors.As(e.Cause, &be) {
			return fmt.Sprintf("%s <- %s", e.Code, be.Base().CodeChain())
		}
	}

	return e.Code
}

func (e *BaseError) Base() *BaseError {
	return e
}

// MarshalJSON writes the cause as a nested error when it carries a code, or
// as its message otherwise.
func (e *BaseError) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		out["details"] = e.Details
	}
	if e.Cause != nil {
		if se, ok := e.Cause.(StandardError); ok {
			out["cause"] = se.Base()
		} else {
			out["cause"] = e.Cause.Error()
		}
	}
	return SonicCfg.Marshal(out)
}

func (e *BaseError) MarshalZerologObject(v *zerolog.Event) {
	v.Str("code", e.Code).Str("message", e.Message)
	if len(e.Details) > 0 {
		v.Interface("details", e.Details)
	}
	if e.Cause != nil {
		v.AnErr("cause", e.Cause)
	}
}

// StandardError is implemented by every error of this module through the embedded BaseError.
type StandardError interface {
	error
	Base() *BaseError
}

// HasErrorCode reports whether err or any error in its cause chain carries one of codes.
func HasErrorCode(err error, codes ...string) bool {
	for err != nil {
		if se, ok := err.(StandardError); ok {
			for _, code := range codes {
				if se.Base().Code == code {
					return true
				}
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

//
// Adjacency Errors
//

const (
	ErrCodeNotAdjacent   = "ErrNotAdjacent"
	ErrCodeInvalidRange  = "ErrInvalidRange"
	ErrCodeInvalidText   = "ErrInvalidText"
	ErrCodeUnknownBuffer = "ErrUnknownBuffer"
	ErrCodeInvalidConfig = "ErrInvalidConfig"
)

// Reasons attached to ErrNotAdjacent under the "reason" detail.
const (
	ReasonGap               = "gap"
	ReasonOverlap           = "overlap"
	ReasonReversed          = "reversed"
	ReasonDifferentBuffers  = "different_buffers"
	ReasonOutsideAllocation = "outside_allocation"
	ReasonBeyondCapacity    = "beyond_capacity"
)

type ErrNotAdjacent struct{ BaseError }

var NewErrNotAdjacent = func(reason string) error {
	return &ErrNotAdjacent{
		BaseError{
			Code:    ErrCodeNotAdjacent,
			Message: "inputs are not adjacent within one allocation",
			Details: map[string]interface{}{
				"reason": reason,
			},
		},
	}
}

// Reason returns the adjacency failure reason, one of the Reason* constants.
func (e *ErrNotAdjacent) Reason() string {
	if r, ok := e.Details["reason"].(string); ok {
		return r
	}
	return ""
}

type ErrInvalidRange struct{ BaseError }

var NewErrInvalidRange = func(start, end, length int, problem string) error {
	return &ErrInvalidRange{
		BaseError{
			Code:    ErrCodeInvalidRange,
			Message: fmt.Sprintf("invalid range [%d:%d] over %d bytes: %s", start, end, length, problem),
			Details: map[string]interface{}{
				"start":  start,
				"end":    end,
				"length": length,
			},
		},
	}
}

type ErrInvalidText struct{ BaseError }

var NewErrInvalidText = func(offset int) error {
	return &ErrInvalidText{
		BaseError{
			Code:    ErrCodeInvalidText,
			Message: "buffer is not valid utf-8",
			Details: map[string]interface{}{
				"offset": offset,
			},
		},
	}
}

type ErrUnknownBuffer struct{ BaseError }

var NewErrUnknownBuffer = func(bufferId string) error {
	return &ErrUnknownBuffer{
		BaseError{
			Code:    ErrCodeUnknownBuffer,
			Message: fmt.Sprintf("buffer '%s' is not defined", bufferId),
			Details: map[string]interface{}{
				"bufferId": bufferId,
			},
		},
	}
}

type ErrInvalidConfig struct{ BaseError }

var NewErrInvalidConfig = func(message string, cause error) error {
	return &ErrInvalidConfig{
		BaseError{
			Code:    ErrCodeInvalidConfig,
			Message: message,
			Cause:   cause,
		},
	}
}
