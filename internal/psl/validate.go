package psl

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrInvalidDomain reports input rejected by ValidateHost.
var ErrInvalidDomain = errors.New("invalid domain")

const (
	maxHostLen  = 253
	maxLabelLen = 63
	maxLabels   = 127
)

// ValidateHost checks DNS host syntax beyond what lookups need. Lookups
// themselves stay total; callers wanting strictness run this first. One
// trailing dot (a fully qualified name) is accepted, a second one is
// not. IP address literals are rejected since they have no suffix.
func ValidateHost(name string) error {
	host := strings.TrimSpace(name)
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDomain)
	}
	if strings.HasSuffix(host, ".") {
		return fmt.Errorf("%w: %q has more than one trailing dot", ErrInvalidDomain, name)
	}
	if len(host) > maxHostLen {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidDomain, name, maxHostLen)
	}
	if ip := net.ParseIP(host); ip != nil {
		return fmt.Errorf("%w: %q is an IP address", ErrInvalidDomain, name)
	}
	labels := strings.Split(host, ".")
	if len(labels) > maxLabels {
		return fmt.Errorf("%w: %q has more than %d labels", ErrInvalidDomain, name, maxLabels)
	}
	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidDomain, name, err)
		}
	}
	return nil
}

func validateLabel(label string) error {
	if label == "" {
		return errors.New("empty label")
	}
	if len(label) > maxLabelLen {
		return fmt.Errorf("label %q is longer than %d characters", label, maxLabelLen)
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return fmt.Errorf("label %q starts or ends with a hyphen", label)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
		case c >= 0x80:
			// multi-byte labels pass through, punycode conversion is a
			// list-build concern
		default:
			return fmt.Errorf("label %q contains invalid character %q", label, c)
		}
	}
	return nil
}
