package symtab

// ScopeInfo tags each layer of a shadow chain with the kind of scope that
// introduced it.  Tags explain where a symbol came from; they never take
// part in resolution order.
type ScopeInfo int

const (
	// JavaLang holds the types of the implicitly imported platform package.
	JavaLang ScopeInfo = iota
	// SamePackage holds the types of the package of the compilation unit.
	SamePackage
	// ImportOnDemand holds what "import p.*" and "import static T.*" bring.
	ImportOnDemand
	// SingleImport holds what single-type and single-static imports bring.
	SingleImport
	// SameFile holds the top-level types of the compilation unit.
	SameFile
	// EnclosingType holds the name of the class whose body is in scope.
	EnclosingType
	// Inherited holds members inherited from supertypes.
	Inherited
	// EnclosingTypeMember holds members declared in the enclosing class.
	EnclosingTypeMember
	// TypeParam holds type parameters of a class or method.
	TypeParam
	// FormalParam holds formal parameters of a method, constructor or lambda.
	FormalParam
	// Local holds local variables and local classes.
	Local
)

var scopeInfoNames = [...]string{
	JavaLang:            "JAVA_LANG",
	SamePackage:         "SAME_PACKAGE",
	ImportOnDemand:      "IMPORT_ON_DEMAND",
	SingleImport:        "SINGLE_IMPORT",
	SameFile:            "SAME_FILE",
	EnclosingType:       "ENCLOSING_TYPE",
	Inherited:           "INHERITED",
	EnclosingTypeMember: "ENCLOSING_TYPE_MEMBER",
	TypeParam:           "TYPE_PARAM",
	FormalParam:         "FORMAL_PARAM",
	Local:               "LOCAL",
}

// String implements fmt.Stringer.
func (s ScopeInfo) String() string {
	if s >= 0 && int(s) < len(scopeInfoNames) {
		return scopeInfoNames[s]
	}
	return "UNKNOWN"
}
