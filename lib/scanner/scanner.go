// Copyright 2024 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"fmt"
	"unicode/utf8"
)

// EOF is a rune representing the end of a file.
const EOF = rune(0)

// Scanner reads runes from a text and keeps track of the current line
// and column.
type Scanner struct {
	text string
	path string

	// current contains the current rune
	current    rune
	currentLen int
	pos        int

	line, col int
}

// New creates a new Scanner. Advance must be called once before the first
// rune is available.
func New(text, path string) *Scanner {
	return &Scanner{
		text: text,
		path: path,
		line: 1,
	}
}

// Current returns the current rune.
func (s *Scanner) Current() rune {
	return s.current
}

// Offset returns the current offset.
func (s *Scanner) Offset() int {
	return s.pos
}

// Advance reads a rune.
func (s *Scanner) Advance() error {
	switch {
	case s.current == '\n':
		s.line++
		s.col = 0
	case s.currentLen > 0:
		s.col++
	}
	s.pos += s.currentLen
	if s.pos == len(s.text) {
		s.current = EOF
		s.currentLen = 0
		return nil
	}
	s.current, s.currentLen = utf8.DecodeRuneInString(s.text[s.pos:])
	if s.current == utf8.RuneError && s.currentLen == 1 {
		return s.Errorf("invalid UTF-8 encoding")
	}
	return nil
}

// ReadWhile reads a string while the predicate holds.
func (s *Scanner) ReadWhile(pred func(r rune) bool) (Range, error) {
	start := s.pos
	for pred(s.Current()) && s.Current() != EOF {
		if err := s.Advance(); err != nil {
			return s.Range(start), err
		}
	}
	return s.Range(start), nil
}

// ReadLine reads the rest of the current line and consumes the terminating
// newline, if any. The returned range excludes the newline.
func (s *Scanner) ReadLine() (Range, error) {
	r, err := s.ReadWhile(func(r rune) bool { return r != '\n' })
	if err != nil {
		return r, err
	}
	if s.Current() == '\n' {
		if err := s.Advance(); err != nil {
			return r, err
		}
	}
	return r, nil
}

// Range returns the range from start to the current offset.
func (s *Scanner) Range(start int) Range {
	return Range{
		Start: start,
		End:   s.Offset(),
		Text:  s.text,
	}
}

// Location returns the current position.
func (s *Scanner) Location() Location {
	return Location{Path: s.path, Line: s.line, Col: s.col + 1}
}

// Errorf creates an error annotated with the current location.
func (s *Scanner) Errorf(format string, args ...any) error {
	return Error{
		Location: s.Location(),
		Message:  fmt.Sprintf(format, args...),
	}
}

// Range is a section of the scanned text.
type Range struct {
	Start, End int
	Text       string
}

// Extract returns the text covered by the range.
func (r Range) Extract() string {
	return r.Text[r.Start:r.End]
}

// Location is a line and column in a file.
type Location struct {
	Path      string
	Line, Col int
}

func (l Location) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Col)
}

// Error is an error at a location.
type Error struct {
	Location Location
	Message  string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}
