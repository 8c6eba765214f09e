package services

import (
	"github.com/pquerna/otp/totp"
)

// GenerateTOTPSecret creates a new TOTP enrolment for the account and
// returns the shared secret plus the provisioning URL for authenticator
// apps.
func GenerateTOTPSecret(accountName string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "notebin",
		AccountName: accountName,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// VerifyTOTP checks a one-time code against the shared secret.
func VerifyTOTP(code, secret string) bool {
	if code == "" || secret == "" {
		return false
	}
	return totp.Validate(code, secret)
}
