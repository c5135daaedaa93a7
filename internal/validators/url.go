package validators

import (
	"net/netip"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

const (
	urlUnicode  = `\x{00a1}-\x{ffff}`
	urlIPv4     = `(?:25[0-5]|2[0-4]\d|[0-1]?\d?\d)(?:\.(?:25[0-5]|2[0-4]\d|[0-1]?\d?\d)){3}`
	urlIPv6     = `\[[0-9a-f:.]+\]`
	urlHostname = `[a-z` + urlUnicode + `0-9](?:[a-z` + urlUnicode + `0-9-]{0,61}[a-z` + urlUnicode + `0-9])?`
	urlDomain   = `(?:\.[a-z` + urlUnicode + `0-9-]{1,63})*`
	urlTLD      = `\.(?:[a-z` + urlUnicode + `-]{2,63}|xn--[a-z0-9]{1,59})\.?`
	urlHost     = `(?:` + urlHostname + urlDomain + urlTLD + `|localhost)`
)

// Labels starting or ending with a dash are rejected separately since RE2
// has no lookaround.
var urlRegex = regexp.MustCompile(`(?i)^(?:[a-z0-9.\-+]*)://` +
	`(?:[^\s:@/]+(?::[^\s:@/]*)?@)?` +
	`(?:` + urlIPv4 + `|` + urlIPv6 + `|` + urlHost + `)` +
	`(?::\d{2,5})?` +
	`(?:[/?#]\S*)?$`)

// maxHostLength is the RFC 1034 limit on a full host name.
const maxHostLength = 253

// URL validates absolute URLs with a whitelisted scheme.
type URL struct {
	Schemes []string
	Message string
}

// NewURL builds the "url" validator. Args: schemes, message.
func NewURL(args Args) (Validator, error) {
	msg, err := args.message("the URL is invalid")
	if err != nil {
		return nil, err
	}
	schemes := []string{"http", "https", "ftp", "ftps"}
	if args.Has("schemes") {
		if schemes, err = args.Strings("schemes"); err != nil {
			return nil, err
		}
	}
	return &URL{Schemes: schemes, Message: msg}, nil
}

func (u *URL) Validate(value any, _ map[string]any) error {
	s := toString(value)
	scheme, rest, found := strings.Cut(s, "://")
	if !found || !u.allowed(strings.ToLower(scheme)) {
		return u.fail()
	}

	netloc, tail := splitNetloc(rest)
	if len(netloc) > maxHostLength {
		return u.fail()
	}

	if matchURL(s) {
		if inner, ok := bracketedHost(netloc); ok {
			addr, err := netip.ParseAddr(inner)
			if err != nil || !addr.Is6() {
				return u.fail()
			}
		}
		return nil
	}

	// Retry with the host converted to its IDNA form.
	userinfo, hostport := "", netloc
	if i := strings.LastIndex(netloc, "@"); i >= 0 {
		userinfo, hostport = netloc[:i+1], netloc[i+1:]
	}
	host, port := hostport, ""
	if i := strings.LastIndex(hostport, ":"); i >= 0 && !strings.HasPrefix(hostport, "[") {
		host, port = hostport[:i], hostport[i:]
	}
	ascii, err := idna.ToASCII(host)
	if err != nil || ascii == host {
		return u.fail()
	}
	if !matchURL(scheme + "://" + userinfo + ascii + port + tail) {
		return u.fail()
	}
	return nil
}

func (u *URL) allowed(scheme string) bool {
	for _, s := range u.Schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

func (u *URL) fail() error {
	return &ValidationError{Message: u.Message}
}

func matchURL(s string) bool {
	if !urlRegex.MatchString(s) {
		return false
	}
	_, rest, _ := strings.Cut(s, "://")
	netloc, _ := splitNetloc(rest)
	if i := strings.LastIndex(netloc, "@"); i >= 0 {
		netloc = netloc[i+1:]
	}
	if strings.HasPrefix(netloc, "[") {
		return true
	}
	if i := strings.LastIndex(netloc, ":"); i >= 0 {
		netloc = netloc[:i]
	}
	for _, label := range strings.Split(strings.TrimSuffix(netloc, "."), ".") {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

// splitNetloc separates the authority part of a URL (after "://") from the
// path, query and fragment.
func splitNetloc(rest string) (netloc, tail string) {
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		return rest[:i], rest[i:]
	}
	return rest, ""
}

func bracketedHost(netloc string) (string, bool) {
	if i := strings.LastIndex(netloc, "@"); i >= 0 {
		netloc = netloc[i+1:]
	}
	if !strings.HasPrefix(netloc, "[") {
		return "", false
	}
	end := strings.Index(netloc, "]")
	if end < 0 {
		return "", false
	}
	return netloc[1:end], true
}
