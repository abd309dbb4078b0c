package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("headline.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "headline.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "headline.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("headline.json", 0, stdErrors.New("bad json"))
	require.Equal(t, "parse error: headline.json: bad json", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("gradientColors", "must contain at least 2 colors", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "gradientColors", validationErr.Field)
	require.Contains(t, err.Error(), "at least 2 colors")
}

func TestStoreErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewStoreError("saved-headlines", "write", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "saved-headlines", storeErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "write saved-headlines")
}

func TestDeliveryErrorIncludesFormat(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no clipboard utility")
	err := NewDeliveryError("css", "clipboard", underlying)

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	require.Equal(t, "css", deliveryErr.Format)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "css -> clipboard")
}
