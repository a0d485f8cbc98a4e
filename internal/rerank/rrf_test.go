package rerank

import (
	"reflect"
	"testing"
)

func TestFuseIntWorkedExample(t *testing.T) {
	lists := [][]int{
		{1, 2, 3, 4},
		{1, 3, 4, 5},
		{4, 5, 6, 7},
	}

	got := Fuse(lists, 60, 3)
	want := []int{4, 1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fuse() = %v, want %v", got, want)
	}
}

func TestFuseStringWorkedExample(t *testing.T) {
	lists := [][]string{
		{"a", "b", "c"},
		{"a", "c", "d"},
		{"d", "e", "f"},
	}

	got := Fuse(lists, 60, 3)
	want := []string{"a", "d", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fuse() = %v, want %v", got, want)
	}
}

func TestFuseLengthIsMinKUnion(t *testing.T) {
	lists := [][]int{{1, 2}, {3}}
	got := Fuse(lists, 60, 10)
	if len(got) != 3 {
		t.Fatalf("len(Fuse()) = %d, want 3 (size of union)", len(got))
	}
}

func TestFuseEmptyLists(t *testing.T) {
	got := Fuse([][]int{}, 60, 5)
	if len(got) != 0 {
		t.Fatalf("Fuse() on empty input = %v, want empty", got)
	}
}
