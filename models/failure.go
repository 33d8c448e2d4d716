package models

import "errors"

type FailureCode string

const (
	FailureInvalidTravelDays    FailureCode = "INVALID_TRAVEL_DAYS"
	FailureInvalidDestination   FailureCode = "INVALID_DESTINATION"
	FailureNoRecognizedActivity FailureCode = "NO_RECOGNIZED_ACTIVITY"
	FailureNoCandidatePlaces    FailureCode = "NO_CANDIDATE_PLACES"
)

// Failure is a terminal input error. The message is meant to be shown to the
// end user as is.
type Failure struct {
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
}

func (f *Failure) Error() string {
	return f.Message
}

// Is matches any Failure with the same code.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Code == f.Code
}

var (
	ErrInvalidTravelDays    = &Failure{Code: FailureInvalidTravelDays, Message: "Travel days must be between 1 and 14"}
	ErrInvalidDestination   = &Failure{Code: FailureInvalidDestination, Message: "Destination is required"}
	ErrNoRecognizedActivity = &Failure{Code: FailureNoRecognizedActivity, Message: "At least one supported activity is required (city, beaches, hiking, food)"}
	ErrNoCandidatePlaces    = &Failure{Code: FailureNoCandidatePlaces, Message: "No places found for the requested destination and activities"}
)

// AsFailure unwraps err into a Failure when it is one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
