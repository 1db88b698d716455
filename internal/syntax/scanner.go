package syntax

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner splits declaration-specifier text into Specifier tokens.
type Scanner struct {
	// Input
	buf      []byte
	filename string

	// Position tracking
	line, col uint32
	ch        rune // current character, -1 for EOF
	offs      int  // byte offset of the next character

	// Current token info
	tok    Token
	lit    string
	tokPos Pos

	litBuf strings.Builder

	errh func(pos Pos, msg string)
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	s := &Scanner{
		filename: filename,
		line:     1,
		col:      0,  // incremented to 1 by the first nextch
		ch:       -1, // sentinel: before first char
		errh:     errh,
	}
	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}
	s.nextch()
	return s
}

// ScanSpecifiers scans all specifiers in src.
func ScanSpecifiers(filename, src string, errh func(pos Pos, msg string)) []Specifier {
	s := NewScanner(filename, strings.NewReader(src), errh)
	var specs []Specifier
	for s.Next(); !s.tok.IsEOF(); s.Next() {
		if s.tok == _Error {
			continue
		}
		specs = append(specs, Specifier{Pos: s.tokPos, Tok: s.tok, Value: s.lit})
	}
	return specs
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()
	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case s.ch == '/':
		s.nextch()
		if s.skipComment() {
			goto redo
		}
		s.errorAt(s.tokPos, "unexpected character '/'")
		s.tok = _Error
		s.lit = "/"

	default:
		s.errorAt(s.tokPos, fmt.Sprintf("unexpected character %q in declaration specifiers", s.ch))
		s.tok = _Error
		s.lit = string(s.ch)
		s.nextch()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's spelling.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// scanIdent scans an identifier, keyword, or scope-qualified name (std::string).
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for {
		if isLetter(s.ch) || isDigit(s.ch) {
			s.litBuf.WriteRune(s.ch)
			s.nextch()
			continue
		}
		if s.ch == ':' && s.peek() == ':' {
			s.litBuf.WriteString("::")
			s.nextch()
			s.nextch()
			if !isLetter(s.ch) {
				s.error("expected name after ::")
				s.lit = s.litBuf.String()
				s.tok = _Error
				return
			}
			continue
		}
		break
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// skipComment skips a // or /* */ comment whose leading '/' was consumed.
// It reports false if no comment starts here.
func (s *Scanner) skipComment() bool {
	switch s.ch {
	case '/':
		for s.ch >= 0 && s.ch != '\n' {
			s.nextch()
		}
		return true
	case '*':
		s.nextch()
		for s.ch >= 0 {
			if s.ch == '*' {
				s.nextch()
				if s.ch == '/' {
					s.nextch()
					return true
				}
				continue
			}
			s.nextch()
		}
		s.error("comment not terminated")
		return true
	}
	return false
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' || s.ch == '\n' {
		s.nextch()
	}
}

// nextch reads the next character and updates position.
// (line, col) always refers to s.ch after nextch returns.
func (s *Scanner) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// peek returns the character after s.ch without consuming it.
func (s *Scanner) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

func (s *Scanner) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *Scanner) error(msg string) {
	s.errorAt(s.pos(), msg)
}

func (s *Scanner) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
