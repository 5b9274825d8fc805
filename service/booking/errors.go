package booking

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrAuthFailed          ErrCode = "AUTH_FAILED"
	ErrNotAllowed          ErrCode = "NOT_ALLOWED"
	ErrItemNotFound        ErrCode = "ITEM_NOT_FOUND"
	ErrReservationNotFound ErrCode = "RESERVATION_NOT_FOUND"
	ErrInvalidInterval     ErrCode = "INVALID_INTERVAL"
	ErrStartInPast         ErrCode = "START_IN_PAST"
	ErrEndInPast           ErrCode = "END_IN_PAST"
	ErrConflict            ErrCode = "CONFLICT"
	ErrBadTransition       ErrCode = "BAD_TRANSITION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code; storage failures come back uncoded ("").
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
