package menu

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind discriminates the failures a lookup can end with.
type Kind string

const (
	KindTransport        Kind = "transport"
	KindBadStatus        Kind = "bad_status"
	KindDecode           Kind = "decode"
	KindNoSuchRestaurant Kind = "no_such_restaurant"
	KindNoFoodToday      Kind = "no_food_today"
)

// Error is the single error type returned by the menu API client and the
// lookup service. Which fields are set depends on Kind:
//   - KindTransport, KindDecode: Err holds the cause;
//   - KindBadStatus: StatusCode holds the HTTP status;
//   - KindNoSuchRestaurant: Restaurant holds the requested name and Known the
//     names the API does list;
//   - KindNoFoodToday: nothing else.
type Error struct {
	Kind       Kind
	StatusCode int
	Restaurant string
	Known      []string
	Err        error
}

// TransportError reports a connection, DNS, TLS or body read failure.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// BadStatusError reports a non-200 HTTP response.
func BadStatusError(code int) *Error {
	return &Error{Kind: KindBadStatus, StatusCode: code}
}

// DecodeError reports a payload that does not match the expected shape.
func DecodeError(err error) *Error {
	return &Error{Kind: KindDecode, Err: err}
}

// NoSuchRestaurantError reports a name missing from the restaurant listing.
func NoSuchRestaurantError(name string, known []string) *Error {
	return &Error{Kind: KindNoSuchRestaurant, Restaurant: name, Known: known}
}

// NoFoodTodayError reports that no non-empty menu is dated today.
func NoFoodTodayError() *Error {
	return &Error{Kind: KindNoFoodToday}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindTransport:
		return "transport error: " + causeText(e.Err)
	case KindBadStatus:
		if text := http.StatusText(e.StatusCode); text != "" {
			return fmt.Sprintf("bad status code: %d %s", e.StatusCode, text)
		}
		return fmt.Sprintf("bad status code: %d", e.StatusCode)
	case KindDecode:
		return "decode error: " + causeText(e.Err)
	case KindNoSuchRestaurant:
		return "no restaurant " + e.Restaurant
	case KindNoFoodToday:
		return "no food today"
	default:
		return fmt.Sprintf("%s: %s", e.Kind, causeText(e.Err))
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// ErrorCode exposes Kind as a stable code for pkg/errors.IsCode.
func (e *Error) ErrorCode() string { return string(e.Kind) }

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func causeText(err error) string {
	if err == nil {
		return "unknown cause"
	}
	return err.Error()
}
