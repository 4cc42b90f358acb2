package mailer

import (
	"net"
	"net/textproto"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a delivery failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindAuth
	KindSend
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindSend:
		return "send"
	default:
		return "unexpected"
	}
}

// Error is returned by SendContactEmail. Its message is safe to show to the
// person who submitted the form.
type Error struct {
	Kind  Kind
	Cause error
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuth:
		return "Email authentication failed. Please check your email credentials and ensure you're using an App Password for Gmail."
	case KindSend:
		return "Failed to send email. Please check your email configuration and network connection."
	default:
		return "Unexpected error while sending email: " + e.Cause.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a mailer Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var merr *Error
	return errors.As(err, &merr) && merr.Kind == kind
}

// SMTP replies that mean the credentials were refused or required.
var authReplyCodes = map[int]bool{530: true, 534: true, 535: true, 538: true}

func classify(err error) *Error {
	var merr *Error
	if errors.As(err, &merr) {
		return merr
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		if authReplyCodes[tpErr.Code] {
			return newError(KindAuth, err)
		}
		return newError(KindSend, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return newError(KindSend, err)
	}

	msg := err.Error()
	switch {
	// net/smtp reports refused auth mechanisms as plain errors
	case strings.Contains(msg, "unencrypted connection"),
		strings.Contains(msg, "unknown authentication type"),
		strings.Contains(msg, "535 "):
		return newError(KindAuth, err)
	// gomail wraps per-message delivery errors without exposing the cause
	case strings.HasPrefix(msg, "gomail: could not send email"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"):
		return newError(KindSend, err)
	}
	return newError(KindUnexpected, err)
}
