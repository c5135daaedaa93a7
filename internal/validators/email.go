package validators

import (
	"net/netip"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	emailUserRegex = regexp.MustCompile(`(?i)^(?:[-!#$%&'*+/=?^_` + "`" + `{}|~0-9A-Z]+(?:\.[-!#$%&'*+/=?^_` + "`" + `{}|~0-9A-Z]+)*$` +
		`|^"(?:[\x01-\x08\x0b\x0c\x0e-\x1f!#-\[\]-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"$)`)
	emailDomainRegex  = regexp.MustCompile(`(?i)^(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+([A-Z0-9-]{2,63})$`)
	emailLiteralRegex = regexp.MustCompile(`^\[([A-Fa-f0-9:.]+)\]$`)
)

// Email checks the local part against an RFC 5322 style pattern and the
// domain against a hostname pattern, an IP literal, an IDNA encoding of
// itself, or the whitelist.
type Email struct {
	Whitelist []string
	Message   string
}

// NewEmail builds the "email" validator. Args: whitelist, message.
func NewEmail(args Args) (Validator, error) {
	msg, err := args.message("this field must be an email address")
	if err != nil {
		return nil, err
	}
	whitelist := []string{"localhost"}
	if args.Has("whitelist") {
		if whitelist, err = args.Strings("whitelist"); err != nil {
			return nil, err
		}
	}
	return &Email{Whitelist: whitelist, Message: msg}, nil
}

func (e *Email) Validate(value any, _ map[string]any) error {
	s := toString(value)
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return &ValidationError{Message: e.Message}
	}
	user, domain := s[:at], s[at+1:]

	if !emailUserRegex.MatchString(user) {
		return &ValidationError{Message: e.Message}
	}
	if e.whitelisted(domain) || validEmailDomain(domain) {
		return nil
	}
	if ascii, err := idna.ToASCII(domain); err == nil && validEmailDomain(ascii) {
		return nil
	}
	return &ValidationError{Message: e.Message}
}

func (e *Email) whitelisted(domain string) bool {
	for _, w := range e.Whitelist {
		if domain == w {
			return true
		}
	}
	return false
}

func validEmailDomain(domain string) bool {
	if m := emailDomainRegex.FindStringSubmatch(domain); m != nil {
		return !strings.HasSuffix(m[1], "-")
	}
	if m := emailLiteralRegex.FindStringSubmatch(domain); m != nil {
		_, err := netip.ParseAddr(m[1])
		return err == nil
	}
	return false
}
