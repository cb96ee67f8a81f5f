package lexer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lang/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lang", "lexer")

// operators is matched in order, so an operator must come before every
// operator it is a prefix extension of.
var operators = []string{
	"!==", "!=~", "!=", "===", "=~", "==",
	"<=>", "<=", ">=", ">>>", "<<", ">>", "<", ">",
	"|||", "&&", "||", "&", "|", "^/", "^", "~~", "~", "!",
	"**", "*", "//", "/", "%",
	"+|", "+", "->", "-|", "-",
	"?::", "?:", "??", "?.", "?", "::", ":",
	"...", "@", "=",
}

var (
	unicodeEscape        = regexp.MustCompile(`^\\u\{[0-9A-Fa-f]{1,7}\}`)
	compoundAssignment   = regexp.MustCompile(`^ [^\\= \n]{1,3}= `)
	argumentSeparator    = regexp.MustCompile(`^[ \t]*,[ \t]*`)
	parserFunctionPrefix = regexp.MustCompile(`^parser\.\w+`)
	scopePrefix          = regexp.MustCompile(`^\[\[\w+\]\]::`)
	identifierPattern    = longest(`^(?:\[\[\w+\]\]::)?(?:\$\**(?:\w+|\[+\w+\]+)|&\w+|fp\.\w+|mp\.(?:(?:op|to):)?\w+|(?:func|fn|linker|ln)\.\w+|(?:op|to):\w+)`)
)

func longest(expr string) *regexp.Regexp {
	re := regexp.MustCompile(expr)
	re.Longest()
	return re
}

// Lexer turns the lines of one source unit into tokens. All scanning state
// lives in a per-call value, so a Lexer may tokenize independent sources
// concurrently.
type Lexer struct {
	filename string
}

func NewLexer(filename string) *Lexer {
	return &Lexer{filename: filename}
}

// Tokenize is a shorthand for NewLexer("").Tokenize(lines).
func Tokenize(lines []string) []types.Token {
	return NewLexer("").Tokenize(lines)
}

// Tokenize scans lines, which must not contain line terminators. The result
// always ends with exactly one EOF token.
func (l *Lexer) Tokenize(lines []string) []types.Token {
	s := newScanState(lines)
	for s.src != "" {
		s.step()
	}
	s.marker(types.EOF, "")

	if plog.LevelAt(capnslog.DEBUG) {
		errs := 0
		for _, tok := range s.tokens {
			if tok.Kind == types.LEXER_ERROR {
				errs++
			}
		}
		plog.Debugf("%s: %d lines, %d tokens, %d lexer errors", l.name(), len(lines), len(s.tokens), errs)
	}

	return s.tokens
}

func (l *Lexer) name() string {
	if l.filename == "" {
		return "<unknown>"
	}
	return l.filename
}

type scanState struct {
	lines []string
	next  int
	// src is the unscanned rest of the current line, followed by "\n" when
	// another line follows.
	src string

	line   int
	column int

	groupingDepth  int
	blockDepth     int
	firstCodeToken bool

	tokens []types.Token
}

func newScanState(lines []string) *scanState {
	s := &scanState{
		lines:          lines,
		line:           1,
		column:         1,
		firstCodeToken: true,
	}
	s.loadLine()
	return s
}

func (s *scanState) loadLine() {
	s.src = s.peekLine(0)
	if s.next < len(s.lines) {
		s.next++
	}
}

// peekLine returns a not yet loaded line the way loadLine would load it.
func (s *scanState) peekLine(offset int) string {
	i := s.next + offset
	if i >= len(s.lines) {
		return ""
	}
	if i+1 < len(s.lines) {
		return s.lines[i] + "\n"
	}
	return s.lines[i]
}

// token consumes text from the source and emits it.
func (s *scanState) token(kind types.TokenType, text string) {
	s.tokenAs(kind, text, text)
}

// tokenAs consumes text from the source and emits a token spanning it with
// a different token text.
func (s *scanState) tokenAs(kind types.TokenType, consumed, text string) {
	width := utf8.RuneCountInString(consumed)
	s.tokens = append(s.tokens, types.Token{
		Kind:     kind,
		Location: types.NewCodePosition(s.line, s.line, s.column, s.column+width),
		Text:     text,
	})
	s.column += width
	s.src = s.src[len(consumed):]
}

// marker emits a zero width token at the current position.
func (s *scanState) marker(kind types.TokenType, text string) {
	s.tokens = append(s.tokens, types.Token{
		Kind:     kind,
		Location: types.NewCodePosition(s.line, s.line, s.column, s.column),
		Text:     text,
	})
}

func (s *scanState) newline() {
	s.line++
	s.column = 1
	s.loadLine()
}

func (s *scanState) step() {
	switch {
	case s.src[0] == '\n':
		s.token(types.EOL, "\n")
		s.newline()
		s.groupingDepth = 0
		s.firstCodeToken = true
		return
	case s.lexMultilineText():
	case s.lexLineContinuation():
		return
	case s.lexEscapeSequence():
	case s.lexSingleLineText():
	case s.lexAssignment():
	case s.lexArgumentSeparator():
	case s.lexWhitespace():
		return
	case s.lexComment():
		return
	case s.lexPattern(types.PARSER_FUNCTION_IDENTIFIER, parserFunctionPrefix):
	case s.lexIdentifier():
	case s.lexBracket():
	case s.lexOperator():
	default:
		s.lexOther()
	}
	s.firstCodeToken = false
}

func (s *scanState) lexMultilineText() bool {
	switch {
	case strings.HasPrefix(s.src, `"""`):
		s.multilineText(`"""`, `"""`, true)
	case strings.HasPrefix(s.src, "{{{"):
		s.multilineText("{{{", "}}}", false)
	default:
		return false
	}
	return true
}

// multilineText scans from an opening marker to its closing marker, across
// lines. Embedded newlines become EOL tokens but do not reset the grouping
// depth: they are text, not code structure.
func (s *scanState) multilineText(open, close string, escapes bool) {
	s.token(types.START_MULTILINE_TEXT, open)

	stops := "\n" + close[:1]
	if escapes {
		stops += `\`
	}

	for {
		switch {
		case s.src == "":
			s.marker(types.LITERAL_TEXT, "")
			s.marker(types.END_MULTILINE_TEXT, "")
			s.marker(types.LEXER_ERROR, "Multiline text closing bracket "+close+" is missing")
			return
		case strings.HasPrefix(s.src, close):
			s.token(types.END_MULTILINE_TEXT, close)
			return
		case s.src[0] == '\n':
			s.token(types.EOL, "\n")
			s.newline()
			continue
		case escapes && s.lexEscapeSequence():
			continue
		}

		// The first byte is either plain text or a stop byte that did not
		// start anything, so it always belongs to the literal.
		n := 1 + strings.IndexAny(s.src[1:], stops)
		if n == 0 {
			n = len(s.src)
		}
		s.token(types.LITERAL_TEXT, s.src[:n])
	}
}

// lexLineContinuation joins the next line to the current logical line.
func (s *scanState) lexLineContinuation() bool {
	if !strings.HasPrefix(s.src, "\\\n") {
		return false
	}
	s.newline()
	return true
}

func (s *scanState) lexEscapeSequence() bool {
	if len(s.src) < 2 || s.src[0] != '\\' || s.src[1] == '\n' {
		return false
	}
	if m := unicodeEscape.FindString(s.src); m != "" {
		s.token(types.ESCAPE_SEQUENCE, m)
		return true
	}
	_, size := utf8.DecodeRuneInString(s.src[1:])
	s.token(types.ESCAPE_SEQUENCE, s.src[:1+size])
	return true
}

// closingQuote returns the byte index of the first unescaped quote in
// text after the opening one, or -1.
func closingQuote(text string) int {
	end := strings.IndexByte(text, '\n')
	if end == -1 {
		end = len(text)
	}
	for i := 1; i < end; i++ {
		if text[i] != '"' {
			continue
		}
		backslashes := 0
		for j := i - 1; j > 0 && text[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i
		}
	}
	return -1
}

func (s *scanState) lexSingleLineText() bool {
	if s.src[0] != '"' {
		return false
	}
	end := closingQuote(s.src)
	if end == -1 {
		return false
	}
	content := s.src[1:end]
	s.token(types.SINGLE_LINE_TEXT_QUOTES, `"`)
	s.token(types.LITERAL_TEXT, content)
	s.token(types.SINGLE_LINE_TEXT_QUOTES, `"`)
	return true
}

func (s *scanState) assignmentLength(text string, firstCodeToken bool) int {
	if s.groupingDepth != 0 {
		return 0
	}
	if m := compoundAssignment.FindString(text); m != "" {
		return len(m)
	}
	switch {
	case strings.HasPrefix(text, " = "):
		return 3
	case text == " =" || strings.HasPrefix(text, " =\n"):
		return 2
	case firstCodeToken && strings.HasPrefix(text, "=") && !strings.HasPrefix(text, "=="):
		return 1
	}
	return 0
}

func (s *scanState) lexAssignment() bool {
	n := s.assignmentLength(s.src, s.firstCodeToken)
	if n == 0 {
		return false
	}
	s.token(types.ASSIGNMENT, s.src[:n])
	return true
}

func (s *scanState) lexArgumentSeparator() bool {
	return s.lexPattern(types.ARGUMENT_SEPARATOR, argumentSeparator)
}

func isLayoutSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func (s *scanState) lexWhitespace() bool {
	n := strings.IndexFunc(s.src, func(r rune) bool { return !isLayoutSpace(r) })
	if n == -1 {
		n = len(s.src)
	}
	if n == 0 {
		return false
	}
	s.token(types.WHITESPACE, s.src[:n])
	return true
}

// lexComment consumes a comment up to the end of its logical line. Line
// continuations and multiline texts inside the comment body are honored.
func (s *scanState) lexComment() bool {
	switch {
	case strings.HasPrefix(s.src, "##"):
		s.token(types.START_DOC_COMMENT, "##")
	case strings.HasPrefix(s.src, "#"):
		s.token(types.START_COMMENT, "#")
	default:
		return false
	}

	for {
		switch {
		case s.src == "" || s.src[0] == '\n':
			s.marker(types.END_COMMENT, "")
			return true
		case s.lexLineContinuation(), s.lexMultilineText():
			continue
		}

		n := 1
		for n < len(s.src) {
			rest := s.src[n:]
			if rest[0] == '\n' || strings.HasPrefix(rest, "\\\n") ||
				strings.HasPrefix(rest, `"""`) || strings.HasPrefix(rest, "{{{") {
				break
			}
			n++
		}
		s.token(types.LITERAL_TEXT, s.src[:n])
	}
}

func (s *scanState) lexPattern(kind types.TokenType, re *regexp.Regexp) bool {
	m := re.FindString(s.src)
	if m == "" {
		return false
	}
	s.token(kind, m)
	return true
}

// lexIdentifier matches variable and function names. The brackets of a
// pointer or dereference form must balance. Surplus closing brackets are
// cut off and left for the bracket rule, missing ones fail the whole match.
// Both are reported.
func (s *scanState) lexIdentifier() bool {
	m := identifierPattern.FindString(s.src)
	if m == "" {
		return false
	}

	body := strings.TrimLeft(m[len(scopePrefix.FindString(m)):], "$*")
	opening := len(body) - len(strings.TrimLeft(body, "["))
	if opening == 0 {
		s.token(types.IDENTIFIER, m)
		return true
	}

	closing := len(body) - len(strings.TrimRight(body, "]"))
	message := "Bracket is missing in variable pointer: \"" + m + "\""
	switch {
	case closing < opening:
		s.tokenAs(types.LEXER_ERROR, m, message)
	case closing > opening:
		s.token(types.IDENTIFIER, m[:len(m)-(closing-opening)])
		s.marker(types.LEXER_ERROR, message)
	default:
		s.token(types.IDENTIFIER, m)
	}
	return true
}

// isLastCodeOnLine reports whether nothing but layout, a comment or a line
// continuation follows on the logical line.
func (s *scanState) isLastCodeOnLine(rest string) bool {
	offset := 0
	for {
		rest = strings.TrimLeftFunc(rest, isLayoutSpace)
		switch {
		case rest == "" || rest[0] == '\n' || rest[0] == '#':
			return true
		case strings.HasPrefix(rest, "\\\n"):
			rest = s.peekLine(offset)
			offset++
		default:
			return false
		}
	}
}

func (s *scanState) lexBracket() bool {
	switch s.src[0] {
	case '{':
		if s.isLastCodeOnLine(s.src[1:]) {
			s.token(types.OPENING_BLOCK_BRACKET, "{")
			s.blockDepth++
			return true
		}
		s.token(types.OPENING_BRACKET, "{")
		s.groupingDepth++
	case '(', '[':
		s.token(types.OPENING_BRACKET, s.src[:1])
		s.groupingDepth++
	case '}':
		if s.firstCodeToken {
			s.token(types.CLOSING_BLOCK_BRACKET, "}")
			if s.blockDepth > 0 {
				s.blockDepth--
			}
			return true
		}
		fallthrough
	case ')', ']':
		s.token(types.CLOSING_BRACKET, s.src[:1])
		if s.groupingDepth > 0 {
			s.groupingDepth--
		}
	default:
		return false
	}
	return true
}

func operatorAt(text string) string {
	for _, op := range operators {
		if strings.HasPrefix(text, op) {
			return op
		}
	}
	return ""
}

func (s *scanState) lexOperator() bool {
	op := operatorAt(s.src)
	if op == "" {
		return false
	}
	s.token(types.OPERATOR, op)
	return true
}

// startsToken reports whether any rule other than the fallback matches at
// the start of text.
func (s *scanState) startsToken(text string) bool {
	switch text[0] {
	case '\n', '#', '{', '(', '[', '}', ')', ']', ',':
		return true
	case '\\':
		return len(text) > 1
	case '"':
		if closingQuote(text) != -1 {
			return true
		}
	}
	r, _ := utf8.DecodeRuneInString(text)
	return isLayoutSpace(r) ||
		s.assignmentLength(text, false) > 0 ||
		parserFunctionPrefix.MatchString(text) ||
		identifierPattern.MatchString(text) ||
		operatorAt(text) != ""
}

// lexOther consumes input no rule matched up to the next position where
// one does, then classifies it. A sign directly after the start of an
// exponent stays part of the number.
func (s *scanState) lexOther() {
	n := 0
	for n < len(s.src) {
		if n > 0 && s.startsToken(s.src[n:]) {
			sign := s.src[n] == '+' || s.src[n] == '-'
			if !sign || !exponentStart.MatchString(s.src[:n]) {
				break
			}
		}
		_, size := utf8.DecodeRuneInString(s.src[n:])
		n += size
	}

	text := s.src[:n]
	switch {
	case text == "null":
		s.token(types.LITERAL_NULL, text)
	case isNumberLiteral(text):
		s.token(types.LITERAL_NUMBER, text)
	default:
		s.token(types.OTHER, text)
	}
}

func isNumberLiteral(text string) bool {
	_, ok := ParseNumber(text)
	return ok
}
