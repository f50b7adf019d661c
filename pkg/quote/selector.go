// Package quote selects a random quotation from a parsed book.
package quote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coolbeans/taobot/pkg/book"
)

// ErrEmptyBook is returned when the book contains no sections.
var ErrEmptyBook = errors.New("book contains no sections")

// ErrEmptyChapter is returned when the chosen section contains no chapters.
var ErrEmptyChapter = errors.New("section contains no chapters")

// Quote is a selected quotation ready for delivery.
type Quote struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Selector picks one chapter's worth of passages from a book using an
// injected randomness provider.
type Selector struct {
	chooser Chooser
}

// NewSelector creates a Selector. A nil chooser falls back to the
// default math/rand-backed chooser.
func NewSelector(chooser Chooser) *Selector {
	if chooser == nil {
		chooser = NewChooser()
	}
	return &Selector{chooser: chooser}
}

// Pick chooses one section uniformly at random, then one chapter
// uniformly within that section, and joins the chapter's passages into a
// single text block separated by blank lines.
//
// The two-stage choice means chapters are NOT uniform globally: a
// chapter in a small section is more likely than one in a large section.
func (s *Selector) Pick(bk book.Book) (Quote, error) {
	sections := bk.SectionNames()
	if len(sections) == 0 {
		return Quote{}, ErrEmptyBook
	}
	sectionName := sections[s.chooser.Intn(len(sections))]

	chapters := bk[sectionName].ChapterNames()
	if len(chapters) == 0 {
		return Quote{}, fmt.Errorf("section %q: %w", sectionName, ErrEmptyChapter)
	}
	chapterName := chapters[s.chooser.Intn(len(chapters))]

	return Quote{
		Title: fmt.Sprintf("%s - Chapter %s", sectionName, chapterName),
		Text:  strings.Join(bk[sectionName][chapterName], "\n\n"),
	}, nil
}
