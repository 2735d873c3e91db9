package order

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"hyperlocal/internal/pkg/errs"
)

const (
	otpMin = 1000
	otpMax = 9999
)

// OTP is the 4-digit delivery confirmation code bound to an order at checkout.
type OTP struct {
	code string
}

// NewOTP draws a code uniformly from 1000..9999 using crypto/rand.
func NewOTP() (OTP, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return OTP{}, fmt.Errorf("generate otp: %w", err)
	}
	return OTP{code: fmt.Sprintf("%d", n.Int64()+otpMin)}, nil
}

// OTPFromString accepts exactly four digits in 1000..9999.
func OTPFromString(s string) (OTP, error) {
	if len(s) != 4 || s[0] == '0' {
		return OTP{}, errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("%q is not a 4-digit code", s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return OTP{}, errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("%q is not a 4-digit code", s))
		}
	}
	return OTP{code: s}, nil
}

func (o OTP) String() string {
	return o.code
}

func (o OTP) Validate() error {
	if o.code == "" {
		return errs.NewValueIsRequiredError("otp")
	}
	return nil
}

// Matches compares the candidate exactly, in constant time. No trimming or normalisation.
func (o OTP) Matches(candidate string) bool {
	if o.code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(o.code), []byte(candidate)) == 1
}
