// Package book provides parsing of two-level-heading book files into a
// hierarchical collection of quotable passages.
package book

import "sort"

// Book represents a parsed book: section name -> Section.
// Key order carries no meaning; enumeration helpers return sorted names.
type Book map[string]Section

// Section maps chapter names to their ordered list of passages.
type Section map[string][]string

// SectionNames returns the section names in sorted order.
func (b Book) SectionNames() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChapterNames returns the chapter names in sorted order.
func (s Section) ChapterNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Statistics holds structure counts for a parsed book.
type Statistics struct {
	Sections int `json:"sections"`
	Chapters int `json:"chapters"`
	Passages int `json:"passages"`
}

// Statistics returns structure counts for the book.
func (b Book) Statistics() Statistics {
	stats := Statistics{Sections: len(b)}
	for _, section := range b {
		stats.Chapters += len(section)
		for _, passages := range section {
			stats.Passages += len(passages)
		}
	}
	return stats
}
