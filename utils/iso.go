package utils

import "strings"

// NormalizeISO - trim and upper case an ISO alpha-3 code
func NormalizeISO(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ISOSet - collapse a list of ISO codes into a set of normalized codes.
// Empty codes are ignored.
func ISOSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if n := NormalizeISO(c); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
