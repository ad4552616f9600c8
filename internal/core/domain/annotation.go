package domain

// Metadata keys recognised on a cell. The value is a plain string that is
// substring-matched (case-sensitive, containment not equality) against the
// captured error message.
const (
	// ExpectedErrorKey marks a cell that MUST produce an error containing
	// the marker substring.
	ExpectedErrorKey = "expected-error-marker"

	// AllowedErrorKey marks a cell that MAY produce an error, but if it
	// does the message must contain the marker substring.
	AllowedErrorKey = "allowed-error-marker"
)

// AnnotationKind classifies a cell's error annotation.
type AnnotationKind int

// Annotation kinds.
const (
	// AnnotationUnmarked means neither key is present: any error on the
	// cell is unexpected.
	AnnotationUnmarked AnnotationKind = iota

	// AnnotationAllowed means an error is tolerated when its message
	// contains the marker.
	AnnotationAllowed

	// AnnotationExpected means an error containing the marker must occur.
	AnnotationExpected
)

// Annotation is the tagged error annotation of a cell, derived once from
// its metadata at analysis start.
type Annotation struct {
	Kind   AnnotationKind
	Marker string
}

// ClassifyCell derives a cell's annotation from its metadata.
// When both keys are present the expected marker wins: a declared-expected
// error is the stronger contract and also drives the missing-error scan.
func ClassifyCell(c Cell) Annotation {
	if marker, ok := stringValue(c.Metadata, ExpectedErrorKey); ok {
		return Annotation{Kind: AnnotationExpected, Marker: marker}
	}
	if marker, ok := stringValue(c.Metadata, AllowedErrorKey); ok {
		return Annotation{Kind: AnnotationAllowed, Marker: marker}
	}
	return Annotation{Kind: AnnotationUnmarked}
}

func stringValue(metadata map[string]any, key string) (string, bool) {
	if metadata == nil {
		return "", false
	}
	val, ok := metadata[key]
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}
