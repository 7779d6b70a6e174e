package auth

import (
	"errors"
)

// messages shown to clients
const (
	MsgInvalidCredentials  = "Username atau password salah"
	MsgMissingCredentials  = "Username dan password harus diisi"
	MsgInactiveAccount     = "User tidak ditemukan atau tidak aktif"
	MsgMissingToken        = "Token tidak ditemukan"
	MsgInvalidToken        = "Token tidak valid atau sudah kadaluarsa"
	MsgWeakPassword        = "Password minimal 8 karakter"
	MsgPasswordTooLong     = "Password maksimal 72 byte"
	MsgMissingResetFields  = "Token dan password baru harus diisi"
	MsgInvalidResetToken   = "Token reset tidak valid atau sudah kadaluarsa"
	MsgServerError         = "Terjadi kesalahan pada server"
	MsgTooManyRequests     = "Terlalu banyak percobaan, coba lagi nanti"
	MsgUnauthorizedRequest = "Akses ditolak"
)

var (
	// authentication, 401
	ErrMissingToken             = errors.New("missing bearer token")
	ErrInvalidToken             = errors.New("invalid token")
	ErrInactiveOrUnknownAccount = errors.New("account inactive or unknown")
	ErrInvalidCredentials       = errors.New("invalid username or password")

	// validation, 400
	ErrMissingCredentials         = errors.New("username and password required")
	ErrWeakPassword               = errors.New("password too short")
	ErrPasswordTooLong            = errors.New("password longer than 72 bytes")
	ErrMissingResetFields         = errors.New("reset token and new password required")
	ErrInvalidOrExpiredResetToken = errors.New("reset token invalid or expired")

	// credential store
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

// IsAuthError reports whether err is an authentication denial (as opposed to
// a validation or upstream failure).
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInactiveOrUnknownAccount) ||
		errors.Is(err, ErrInvalidCredentials)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrMissingResetFields) ||
		errors.Is(err, ErrInvalidOrExpiredResetToken)
}

// Message maps an error to the text clients get. Unknown errors get the
// generic server error message.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrMissingCredentials):
		return MsgMissingCredentials
	case errors.Is(err, ErrInactiveOrUnknownAccount):
		return MsgInactiveAccount
	case errors.Is(err, ErrMissingToken):
		return MsgMissingToken
	case errors.Is(err, ErrInvalidToken):
		return MsgInvalidToken
	case errors.Is(err, ErrWeakPassword):
		return MsgWeakPassword
	case errors.Is(err, ErrPasswordTooLong):
		return MsgPasswordTooLong
	case errors.Is(err, ErrMissingResetFields):
		return MsgMissingResetFields
	case errors.Is(err, ErrInvalidOrExpiredResetToken):
		return MsgInvalidResetToken
	default:
		return MsgServerError
	}
}
