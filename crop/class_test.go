package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		count int
		want  Class
	}{
		{count: 0, want: ClassEmpty},
		{count: 1, want: ClassSolo},
		{count: 2, want: ClassPair},
		{count: 3, want: ClassTrio},
		{count: 4, want: ClassSmallGroup},
		{count: 5, want: ClassSmallGroup},
		{count: 6, want: ClassCrowd},
		{count: 7, want: ClassCrowd},
		{count: 40, want: ClassCrowd},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassOf(tt.count), "count %d", tt.count)
	}
}

func TestSameClass(t *testing.T) {
	tests := []struct {
		name     string
		n1, n2   int
		sameWant bool
	}{
		{name: "both empty", n1: 0, n2: 0, sameWant: true},
		{name: "four and five share a bucket", n1: 4, n2: 5, sameWant: true},
		{name: "six and beyond share a bucket", n1: 6, n2: 19, sameWant: true},
		{name: "three and four differ", n1: 3, n2: 4, sameWant: false},
		{name: "five and six differ", n1: 5, n2: 6, sameWant: false},
		{name: "zero and one differ", n1: 0, n2: 1, sameWant: false},
		{name: "one and two differ", n1: 1, n2: 2, sameWant: false},
		{name: "two and three differ", n1: 2, n2: 3, sameWant: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sameWant, SameClass(tt.n1, tt.n2))
			assert.Equal(t, tt.sameWant, SameClass(tt.n2, tt.n1), "must be symmetric")
		})
	}
}
