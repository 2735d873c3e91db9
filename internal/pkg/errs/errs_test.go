package errs_test

import (
	"errors"
	"testing"

	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_Format(t *testing.T) {
	dbDown := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order_id", "b1c4"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: b1c4",
		},
		{
			name:     "store not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("store_id", "s-9", dbDown),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: store_id, ID is: s-9 (cause: connection refused)",
		},
		{
			name:     "invalid otp",
			err:      errs.NewValueIsInvalidError("otp"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: otp",
		},
		{
			name:     "invalid phone with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("phone", errors.New("too short")),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: phone (cause: too short)",
		},
		{
			name:     "quantity out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 0 is quantity, min value is 1, max value is 99",
		},
		{
			name:     "fee out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("platform_fee", 120, 0, 100, errors.New("percent")),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 120 is platform_fee, min value is 0, max value is 100 (cause: percent)",
		},
		{
			name:     "missing delivery address",
			err:      errs.NewValueIsRequiredError("delivery_address"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: delivery_address",
		},
		{
			name:     "missing name with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("name", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: name (cause: blank)",
		},
		{
			name:     "stale order version",
			err:      errs.NewVersionIsInvalidError("order"),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: order",
		},
		{
			name:     "stale order version with cause",
			err:      errs.NewVersionIsInvalidErrorWithCause("order", errors.New("claimed by another agent")),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: order (cause: claimed by another agent)",
		},
		{
			name:     "duplicate email",
			err:      errs.NewObjectAlreadyExistsError("email", "priya@example.com"),
			sentinel: errs.ErrObjectAlreadyExists,
			want:     "object already exists: email priya@example.com",
		},
		{
			name:     "duplicate order number with cause",
			err:      errs.NewObjectAlreadyExistsErrorWithCause("order_number", "ORD-12345", errors.New("duplicate key")),
			sentinel: errs.ErrObjectAlreadyExists,
			want:     "object already exists: order_number ORD-12345 (cause: duplicate key)",
		},
		{
			name:     "settle as agent",
			err:      errs.NewForbiddenError("settle payment"),
			sentinel: errs.ErrForbidden,
			want:     "access is forbidden: settle payment",
		},
		{
			name:     "foreign store",
			err:      errs.NewForbiddenErrorWithCause("update store", errors.New("not the owner")),
			sentinel: errs.ErrForbidden,
			want:     "access is forbidden: update store (cause: not the owner)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
		})
	}
}

func TestErrors_KeepFields(t *testing.T) {
	cause := errors.New("row missing")
	notFound := errs.NewObjectNotFoundErrorWithCause("product_id", "p-1", cause)
	assert.Equal(t, "product_id", notFound.ParamName)
	assert.Equal(t, "p-1", notFound.ID)
	assert.Equal(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("rating", 6, 0, 5)
	assert.Equal(t, 6, outOfRange.Value)
	assert.Equal(t, 0, outOfRange.Min)
	assert.Equal(t, 5, outOfRange.Max)
	assert.NoError(t, outOfRange.Cause)

	forbidden := errs.NewForbiddenError("claim order")
	assert.Equal(t, "claim order", forbidden.Action)
}

func TestErrors_FlattenLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found id", errs.NewObjectNotFoundError("order_number", "ORD-1\nadmin=true")},
		{"out of range value", errs.NewValueIsOutOfRangeError("instructions", "ring\r\nbell", 0, 200)},
		{"duplicate id", errs.NewObjectAlreadyExistsError("email", "a@b.c\rx")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			assert.NotContains(t, msg, "\n")
			assert.NotContains(t, msg, "\r")
		})
	}
}

func TestErrors_WrappedSentinelSurvives(t *testing.T) {
	err := errors.Join(errors.New("checkout"), errs.NewForbiddenError("checkout as merchant"))
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var fe *errs.ForbiddenError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "checkout as merchant", fe.Action)
}
