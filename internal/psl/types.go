package psl

// Type classifies the list section a rule was declared under.
type Type int

const (
	// TypeNone marks a suffix that matched no explicit rule, or a rule
	// that appeared before any section marker.
	TypeNone Type = iota
	// TypeICANN marks rules from the ICANN DOMAINS section.
	TypeICANN
	// TypePrivate marks rules from the PRIVATE DOMAINS section.
	TypePrivate
)

func (t Type) String() string {
	switch t {
	case TypeICANN:
		return "icann"
	case TypePrivate:
		return "private"
	default:
		return "none"
	}
}

// Info is the outcome of a suffix lookup: the byte length of the matched
// suffix within the queried name, counted from the right and including
// separating dots, plus the section type of the winning rule.
type Info struct {
	Len int
	Typ Type
}
