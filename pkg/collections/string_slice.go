package collections

import "strings"

// StringSlice is a flag.Value that collects the values of a repeated flag.
// A single occurrence may also hold a comma separated list.
type StringSlice []string

// String implements the flag.Value interface.
func (s *StringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

// Set implements the flag.Value interface.
func (s *StringSlice) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}
