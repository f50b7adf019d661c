package book

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Heading markers for the fixed two-level book convention.
const (
	sectionPrefix = "## "
	chapterPrefix = "### "
)

// parserState tracks where the scan is within the document structure.
type parserState int

const (
	stateNoSection parserState = iota // before the first section heading
	stateInSection                    // section open, no chapter yet
	stateInChapter                    // section and chapter open
)

// Parser parses a book file into a Book. The scan is a single forward
// pass with three pieces of running state: the current section, the
// current chapter, and the passage buffer.
type Parser struct {
	state   parserState
	section string
	chapter string
	buffer  []string
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the book text from r and returns the structured Book.
//
// Rules, per line:
//   - "## name" opens a new section and resets chapter and passage buffer.
//   - "### name" opens a new chapter within the current section; ignored
//     before any section is open. The passage buffer carries over.
//   - While a chapter is open, non-blank lines accumulate into the
//     passage buffer; a blank line flushes the buffer as one passage.
//   - Anything before the first section/chapter is silently ignored.
//   - A non-empty buffer remaining at end of input is dropped: a passage
//     only exists once a blank line (or the next section) terminates it.
func (p *Parser) Parse(r io.Reader) (Book, error) {
	p.state = stateNoSection
	p.section = ""
	p.chapter = ""
	p.buffer = nil

	bk := Book{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, sectionPrefix):
			if err := p.openSection(bk, headingName(line), lineNo); err != nil {
				return nil, err
			}
		case p.state != stateNoSection && strings.HasPrefix(line, chapterPrefix):
			if err := p.openChapter(bk, headingName(line), lineNo); err != nil {
				return nil, err
			}
		case p.state == stateInChapter:
			p.scanContent(bk, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return bk, nil
}

// openSection starts a new section, resetting chapter and passage state.
func (p *Parser) openSection(bk Book, name string, lineNo int) error {
	if _, exists := bk[name]; exists {
		return &DuplicateSectionError{Name: name, Line: lineNo}
	}
	bk[name] = Section{}
	p.state = stateInSection
	p.section = name
	p.chapter = ""
	p.buffer = nil
	return nil
}

// openChapter starts a new chapter within the current section. The
// passage buffer deliberately carries over an unterminated passage.
func (p *Parser) openChapter(bk Book, name string, lineNo int) error {
	if _, exists := bk[p.section][name]; exists {
		return &DuplicateChapterError{Section: p.section, Name: name, Line: lineNo}
	}
	bk[p.section][name] = []string{}
	p.state = stateInChapter
	p.chapter = name
	return nil
}

// scanContent handles a content line while a chapter is open: non-blank
// lines accumulate, a blank line flushes the buffered passage.
func (p *Parser) scanContent(bk Book, line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed != "" {
		p.buffer = append(p.buffer, trimmed)
		return
	}
	if len(p.buffer) > 0 {
		section := bk[p.section]
		section[p.chapter] = append(section[p.chapter], strings.Join(p.buffer, "\n"))
		p.buffer = nil
	}
}

// headingName strips the leading heading markers and surrounding
// whitespace from a heading line.
func headingName(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}
