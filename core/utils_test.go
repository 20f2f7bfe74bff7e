package core

import (
	"reflect"
	"testing"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "trims", s: "  hello\t", want: "hello"},
		{name: "lowers", s: " HeLLo ", lower: true, want: "hello"},
		{name: "keeps case by default", s: "HeLLo", want: "HeLLo"},
		{name: "empty", s: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.s, tt.lower); got != tt.want {
				t.Errorf("CleanString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoundedPrepend(t *testing.T) {
	var items []int
	for i := 1; i <= 4; i++ {
		items = BoundedPrepend(items, i, 3)
	}
	if want := []int{4, 3, 2}; !reflect.DeepEqual(items, want) {
		t.Errorf("BoundedPrepend() = %v, want %v", items, want)
	}

	// the input slice is not mutated
	orig := []int{2, 1}
	_ = BoundedPrepend(orig, 3, 10)
	if !reflect.DeepEqual(orig, []int{2, 1}) {
		t.Errorf("input mutated: %v", orig)
	}
}
