package totp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Params carries the TOTP parameters stored alongside a verification
// record's secret. Codes are only comparable when derived with the same
// parameters the secret was issued with.
type Params struct {
	Algorithm string
	Digits    int
	Period    int
}

// GenerateSecret creates a fresh random secret for the given parameters
// and returns it base32-encoded.
func GenerateSecret(issuer, account string, p Params) (string, error) {
	alg, err := algorithm(p.Algorithm)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		Algorithm:   alg,
		Digits:      otp.Digits(p.Digits),
		Period:      uint(p.Period),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	return key.Secret(), nil
}

// CurrentCode derives the code for the secret at the current time
func CurrentCode(secret string, p Params) (string, error) {
	return CodeAt(secret, p, time.Now())
}

// CodeAt derives the code for the secret at the given time
func CodeAt(secret string, p Params, at time.Time) (string, error) {
	opts, err := validateOpts(p)
	if err != nil {
		return "", err
	}

	code, err := totp.GenerateCodeCustom(secret, at, opts)
	if err != nil {
		return "", fmt.Errorf("failed to derive TOTP code: %w", err)
	}

	return code, nil
}

// Validate checks a submitted code against the secret with the given
// parameters. One period of clock skew is tolerated in both directions.
func Validate(code, secret string, p Params) (bool, error) {
	opts, err := validateOpts(p)
	if err != nil {
		return false, err
	}

	ok, err := totp.ValidateCustom(code, secret, time.Now(), opts)
	if err != nil {
		return false, fmt.Errorf("failed to validate TOTP code: %w", err)
	}

	return ok, nil
}

func validateOpts(p Params) (totp.ValidateOpts, error) {
	alg, err := algorithm(p.Algorithm)
	if err != nil {
		return totp.ValidateOpts{}, err
	}

	return totp.ValidateOpts{
		Period:    uint(p.Period),
		Skew:      1,
		Digits:    otp.Digits(p.Digits),
		Algorithm: alg,
	}, nil
}

func algorithm(name string) (otp.Algorithm, error) {
	switch strings.ToUpper(name) {
	case "SHA1":
		return otp.AlgorithmSHA1, nil
	case "SHA256":
		return otp.AlgorithmSHA256, nil
	case "SHA512":
		return otp.AlgorithmSHA512, nil
	default:
		return 0, fmt.Errorf("unsupported TOTP algorithm: %s", name)
	}
}
