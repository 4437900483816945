package matrix

// ResolutionKind discriminates the three possible outcomes of designation
// resolution. NotFound is semantically distinct from Unresolved: it means
// the matrix was consulted but the designation could not be located, and
// the compliance evaluator reports the two differently.
type ResolutionKind int

const (
	// KindUnresolved: no matrix to consult, or nothing to look up
	KindUnresolved ResolutionKind = iota
	// KindNotFound: the matrix was consulted and the designation is absent
	KindNotFound
	// KindLevel: the designation maps to a tier level
	KindLevel
)

// Resolution is the tagged result of looking up an approver designation
type Resolution struct {
	kind  ResolutionKind
	level int
}

// Unresolved returns the no-lookup resolution
func Unresolved() Resolution {
	return Resolution{kind: KindUnresolved}
}

// NotFound returns the consulted-but-absent resolution
func NotFound() Resolution {
	return Resolution{kind: KindNotFound}
}

// ResolvedLevel returns a resolution carrying a tier level
func ResolvedLevel(level int) Resolution {
	return Resolution{kind: KindLevel, level: level}
}

// Kind returns the discriminant
func (r Resolution) Kind() ResolutionKind {
	return r.kind
}

// Level returns the resolved tier level and whether one is present
func (r Resolution) Level() (int, bool) {
	return r.level, r.kind == KindLevel
}
