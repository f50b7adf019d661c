package book

import (
	"reflect"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := Book{}.Statistics()
	if stats != (Statistics{}) {
		t.Errorf("empty book statistics: got %+v", stats)
	}
}

func TestSectionNames_Sorted(t *testing.T) {
	bk := Book{
		"Zebra":  Section{},
		"Apple":  Section{},
		"Middle": Section{},
	}
	want := []string{"Apple", "Middle", "Zebra"}
	if got := bk.SectionNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("section names: got %v, want %v", got, want)
	}
}

func TestChapterNames_Sorted(t *testing.T) {
	section := Section{
		"2":  {},
		"10": {},
		"1":  {},
	}
	// Lexicographic, matching how chapter names are compared elsewhere.
	want := []string{"1", "10", "2"}
	if got := section.ChapterNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("chapter names: got %v, want %v", got, want)
	}
}
