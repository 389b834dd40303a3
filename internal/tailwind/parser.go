package tailwind

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parserState maintains context while scanning CSS tokens
type parserState struct {
	rules []Rule

	selector  strings.Builder
	selOffset int
	inBody    bool
	decls     []Declaration

	// segment holds the text of the declaration being read; colon is the
	// index of its first top-level colon or -1.
	segment    strings.Builder
	segOffset  int
	colon      int
	parenDepth int
}

// Parse extracts rules from CSS text in source order. Comments are dropped,
// blocks left open at end of input are discarded, and the prelude of a block
// that contains nested blocks (such as @media) is dropped while the inner
// rules are kept.
func Parse(content string) []Rule {
	state := &parserState{selOffset: -1, segOffset: -1, colon: -1}
	lexer := css.NewLexer(parse.NewInputString(content))

	offset := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		start := offset
		offset += len(text)

		if tt == css.CommentToken {
			continue
		}
		if state.inBody {
			state.bodyToken(tt, text, start)
		} else {
			state.selectorToken(tt, text, start)
		}
	}

	return state.rules
}

// selectorToken handles a token outside of any declaration block.
func (s *parserState) selectorToken(tt css.TokenType, text []byte, start int) {
	switch tt {
	case css.LeftBraceToken:
		s.inBody = true
		s.decls = nil
		s.resetSegment()
	case css.SemicolonToken, css.RightBraceToken:
		// @import ...; or a stray closing brace
		s.resetSelector()
	default:
		if s.selOffset < 0 && tt != css.WhitespaceToken {
			s.selOffset = start
		}
		s.selector.Write(text)
	}
}

// bodyToken handles a token inside a declaration block.
func (s *parserState) bodyToken(tt css.TokenType, text []byte, start int) {
	switch tt {
	case css.LeftParenthesisToken, css.FunctionToken:
		s.parenDepth++
	case css.RightParenthesisToken:
		if s.parenDepth > 0 {
			s.parenDepth--
		}
	case css.ColonToken:
		if s.parenDepth == 0 && s.colon < 0 {
			s.colon = s.segment.Len()
		}
	case css.SemicolonToken:
		if s.parenDepth == 0 {
			s.finishSegment()
			return
		}
	case css.LeftBraceToken:
		s.openNested()
		return
	case css.RightBraceToken:
		s.finishSegment()
		s.emitRule()
		s.inBody = false
		s.resetSelector()
		return
	}

	if s.segOffset < 0 && tt != css.WhitespaceToken {
		s.segOffset = start
	}
	s.segment.Write(text)
}

// openNested flattens a nested block: declarations already seen are kept on
// the outer rule, the pending text becomes the inner selector.
func (s *parserState) openNested() {
	inner := strings.TrimSpace(s.segment.String())
	innerOffset := s.segOffset

	s.emitRule()
	s.resetSelector()
	s.selector.WriteString(inner)
	s.selOffset = innerOffset
	s.decls = nil
	s.resetSegment()
}

// finishSegment turns the pending text into a declaration. Only blank
// segments are dropped; a segment without a colon becomes a declaration
// with an empty value.
func (s *parserState) finishSegment() {
	defer s.resetSegment()

	raw := s.segment.String()
	if strings.TrimSpace(raw) == "" {
		return
	}
	if s.colon < 0 {
		s.decls = append(s.decls, Declaration{Property: strings.TrimSpace(raw), Offset: s.segOffset})
		return
	}
	prop := strings.TrimSpace(raw[:s.colon])
	value := strings.TrimSpace(raw[s.colon+1:])
	s.decls = append(s.decls, Declaration{Property: prop, Value: value, Offset: s.segOffset})
}

func (s *parserState) emitRule() {
	selector := strings.TrimSpace(s.selector.String())
	if selector == "" || len(s.decls) == 0 {
		return
	}
	info, base := ParseSelector(selector)
	s.rules = append(s.rules, Rule{
		Selector:     selector,
		BaseSelector: base,
		Pseudo:       info,
		Declarations: s.decls,
		Offset:       s.selOffset,
	})
	s.decls = nil
}

func (s *parserState) resetSelector() {
	s.selector.Reset()
	s.selOffset = -1
}

func (s *parserState) resetSegment() {
	s.segment.Reset()
	s.segOffset = -1
	s.colon = -1
	s.parenDepth = 0
}
