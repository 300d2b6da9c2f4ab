package menu

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/unicafe/pkg/errors"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"transport", TransportError(errors.New("dial tcp: refused")), "transport error: dial tcp: refused"},
		{"bad status", BadStatusError(503), "bad status code: 503 Service Unavailable"},
		{"unknown status", BadStatusError(599), "bad status code: 599"},
		{"decode", DecodeError(ErrInvalidMonth), "decode error: invalid month"},
		{"no restaurant", NoSuchRestaurantError("Unknown", nil), "no restaurant Unknown"},
		{"no food", NoFoodTodayError(), "no food today"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrapAndKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", DecodeError(ErrNoDate))

	require.ErrorIs(t, err, ErrNoDate)
	require.Equal(t, KindDecode, KindOf(err))
	require.True(t, apperrors.IsCode(err, "decode"))
	require.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestAsAPIErrorWrapsForeignErrors(t *testing.T) {
	err := asAPIError(context.Canceled)
	require.Equal(t, KindTransport, KindOf(err))
	require.ErrorIs(t, err, context.Canceled)

	original := BadStatusError(404)
	require.Same(t, original, asAPIError(original))
}
