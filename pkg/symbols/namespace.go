package symbols

// Namespace classifies the independent name spaces of a Java scope. A name
// may denote a type, a variable and a method at the same time without any
// conflict.
type Namespace int

const (
	// Types holds classes, interfaces, enums, records and type parameters.
	Types Namespace = iota
	// Variables holds fields, formal parameters and local variables.
	Variables
	// Methods holds methods (never constructors).
	Methods
)

// String implements fmt.Stringer.
func (ns Namespace) String() string {
	switch ns {
	case Types:
		return "TYPES"
	case Variables:
		return "VARIABLES"
	case Methods:
		return "METHODS"
	default:
		return "UNKNOWN"
	}
}
