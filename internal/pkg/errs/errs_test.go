package errs_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("departureId", "123")

		assert.Equal(t, "departureId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("departureId", "123", cause)

		assert.Equal(t, "departureId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: departureId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("transport")

		assert.Equal(t, "transport", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: transport", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown mode")
		err := errs.NewValueIsInvalidErrorWithCause("transport", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: transport (cause: unknown mode)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("destination country")

	assert.Equal(t, "destination country", err.ParamName)
	assert.Equal(t, "value is required: destination country", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", -5, 0, 100)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, "value is out of range: -5 is amount, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("parcel", "already assigned to another departure")

		assert.Equal(t, "parcel", err.ParamName)
		assert.Equal(t, "conflict: parcel: already assigned to another departure", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("distinguishable from not found", func(t *testing.T) {
		conflict := errs.NewConflictError("parcel", "already assigned")
		notFound := errs.NewObjectNotFoundError("parcel", "TRK-1")

		require.ErrorIs(t, conflict, errs.ErrConflict)
		require.NotErrorIs(t, conflict, errs.ErrObjectNotFound)
		require.ErrorIs(t, notFound, errs.ErrObjectNotFound)
		require.NotErrorIs(t, notFound, errs.ErrConflict)
	})
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewTransientError("refresh tracking", cause)

	assert.Equal(t, "refresh tracking", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "transient failure: refresh tracking (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrTransient, err.Unwrap())
}

func TestNoTariffConfiguredError(t *testing.T) {
	err := errs.NewNoTariffConfiguredError("CN/Guangzhou -> CM", "air_express", "standard")

	assert.Equal(t,
		"no tariff configured: route is: CN/Guangzhou -> CM, transport is: air_express, package type is: standard",
		err.Error())
	assert.Equal(t, errs.ErrNoTariffConfigured, err.Unwrap())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("version")

	assert.Equal(t, "version is invalid: version", err.Error())
	assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrTransient)
		require.Error(t, errs.ErrNoTariffConfigured)
		require.Error(t, errs.ErrVersionIsInvalid)
	})

	t.Run("errors can be unwrapped", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("id", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("x", "y"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewTransientError("x", errors.New("y")), errs.ErrTransient)
		require.ErrorIs(t, errs.NewNoTariffConfiguredError("r", "t", "p"), errs.ErrNoTariffConfigured)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("v"), errs.ErrVersionIsInvalid)
	})
}
