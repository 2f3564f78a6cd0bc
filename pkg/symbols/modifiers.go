package symbols

import (
	"fmt"
	"strings"
)

// Modifiers is a set of java modifier flags.
type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
	Default
)

var modifierNames = []struct {
	flag Modifiers
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Default, "default"},
}

// ParseModifiers builds a modifier set from source keywords such as "public"
// or "static".
func ParseModifiers(names ...string) (Modifiers, error) {
	var mods Modifiers
next:
	for _, name := range names {
		for _, m := range modifierNames {
			if m.name == name {
				mods |= m.flag
				continue next
			}
		}
		return 0, fmt.Errorf("unknown modifier %q", name)
	}
	return mods, nil
}

// Has reports whether all the given flags are set.
func (m Modifiers) Has(flags Modifiers) bool {
	return m&flags == flags
}

func (m Modifiers) IsPublic() bool  { return m.Has(Public) }
func (m Modifiers) IsPrivate() bool { return m.Has(Private) }
func (m Modifiers) IsStatic() bool  { return m.Has(Static) }

// String renders the flags in canonical source order.
func (m Modifiers) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " ")
}
