package model

// TriState is an optional boolean filter: unset, false or true.
type TriState int

const (
	Unset TriState = iota
	False
	True
)

// ParseTriState maps "0" and "1" to False and True. Anything else,
// including the empty string, leaves the filter unset.
func ParseTriState(s string) TriState {
	switch s {
	case "0":
		return False
	case "1":
		return True
	default:
		return Unset
	}
}

// Matches reports whether v passes the filter.
func (t TriState) Matches(v bool) bool {
	switch t {
	case False:
		return !v
	case True:
		return v
	default:
		return true
	}
}

func (t TriState) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unset"
	}
}
