package book

import "fmt"

// DuplicateSectionError reports a section heading whose name already
// exists in the book.
type DuplicateSectionError struct {
	Name string
	Line int
}

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("duplicate section %q at line %d", e.Name, e.Line)
}

// DuplicateChapterError reports a chapter heading whose name already
// exists within the enclosing section.
type DuplicateChapterError struct {
	Section string
	Name    string
	Line    int
}

func (e *DuplicateChapterError) Error() string {
	return fmt.Sprintf("duplicate chapter %q in section %q at line %d", e.Name, e.Section, e.Line)
}
