package progress

// Subject represents a TIMO competition content area.
type Subject string

const (
	SubjectLogicalThinking Subject = "logical-thinking"
	SubjectArithmetic      Subject = "arithmetic"
	SubjectNumberTheory    Subject = "number-theory"
	SubjectGeometry        Subject = "geometry"
	SubjectCombinatorics   Subject = "combinatorics"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectLogicalThinking,
		SubjectArithmetic,
		SubjectNumberTheory,
		SubjectGeometry,
		SubjectCombinatorics,
	}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectLogicalThinking:
		return "Logical Thinking"
	case SubjectArithmetic:
		return "Arithmetic"
	case SubjectNumberTheory:
		return "Number Theory"
	case SubjectGeometry:
		return "Geometry"
	case SubjectCombinatorics:
		return "Combinatorics"
	default:
		return string(s)
	}
}
