package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func validURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func checkEmail(value any, _ ...any) (Outcome, error) {
	s, _ := asString(value)
	if !validEmail(s) {
		return Fail("must be a valid email address, got %q", s), nil
	}
	return Pass(), nil
}

func checkURL(value any, _ ...any) (Outcome, error) {
	s, _ := asString(value)
	if !validURL(s) {
		return Fail("must be a valid URL, got %q", s), nil
	}
	return Pass(), nil
}
