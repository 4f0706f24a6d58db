package crop

// Class is the equivalence class an object count maps to. Counts in the
// same class select the same layout family, so the smoothing layer
// treats them as interchangeable when judging frame-to-frame stability.
type Class uint8

const (
	// ClassEmpty is the zero-object bucket.
	ClassEmpty Class = iota
	// ClassSolo is the one-object bucket.
	ClassSolo
	// ClassPair is the two-object bucket.
	ClassPair
	// ClassTrio is the three-object bucket.
	ClassTrio
	// ClassSmallGroup is the four-to-five-object bucket.
	ClassSmallGroup
	// ClassCrowd is the six-or-more-object bucket.
	ClassCrowd
)

// ClassOf maps a raw object count to its bucket.
func ClassOf(count int) Class {
	switch {
	case count <= 0:
		return ClassEmpty
	case count == 1:
		return ClassSolo
	case count == 2:
		return ClassPair
	case count == 3:
		return ClassTrio
	case count <= 5:
		return ClassSmallGroup
	default:
		return ClassCrowd
	}
}

// SameClass reports whether two raw object counts fall into the same
// bucket.
func SameClass(count1, count2 int) bool {
	return ClassOf(count1) == ClassOf(count2)
}
