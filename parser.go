package jsonls

import (
	"math"
	"strconv"
	"strings"
)

// Document is the result of a parse: the root of the AST (nil only when
// the source was empty), the syntax diagnostics collected along the
// way, and any comment ranges (populated only when requested).
type Document struct {
	Root         *Node
	SyntaxErrors []Problem
	Comments     []Range
}

// ParseOptions configures a Parse call.
type ParseOptions struct {
	// CollectComments, when true, records comment ranges on Document
	// instead of silently dropping them.
	CollectComments bool
}

// Parse turns source text into a Document. It always returns and never
// panics on malformed input: the parser synchronizes on structural
// tokens and returns the largest well-formed tree it can build,
// recording a syntax diagnostic for every problem along the way.
func Parse(text string, opts ParseOptions) *Document {
	p := &Parser{
		text:            text,
		scanner:         NewScanner(text),
		collectComments: opts.CollectComments,
	}
	p.advance()

	if p.cur.Kind == TokenEOF {
		return &Document{SyntaxErrors: p.problems, Comments: p.comments}
	}

	root := p.parseValue(nil)
	if root == nil {
		p.addProblem(p.currentErrorRange(), SeverityError, ValueExpected, "Value expected")
		root = &Node{Kind: KindNull, Start: p.cur.Start, End: p.cur.Start}
	}

	return &Document{Root: root, SyntaxErrors: p.problems, Comments: p.comments}
}

type tokenInfo struct {
	Kind   TokenKind
	Start  int
	Length int
	Value  string
}

func (t tokenInfo) End() int { return t.Start + t.Length }

// Parser is a recursive-descent parser consuming a Scanner. It is
// single-use: construct one via Parse.
type Parser struct {
	text    string
	scanner Scanner

	collectComments bool
	comments        []Range
	problems        []Problem

	cur     tokenInfo
	prevEnd int
}

func (p *Parser) advance() {
	for {
		kind := p.scanner.Scan()
		offset := p.scanner.TokenOffset()
		length := p.scanner.TokenLength()
		value := p.scanner.TokenValue()

		if err := p.scanner.TokenError(); err != ScanErrorNone {
			p.emitScanError(err, offset, length)
		}

		if kind == TokenLineComment || kind == TokenBlockComment {
			if p.collectComments {
				p.comments = append(p.comments, Range{offset, offset + length})
			}
			continue
		}
		if kind == TokenTrivia || kind == TokenLineBreak {
			continue
		}

		p.prevEnd = p.cur.End()
		p.cur = tokenInfo{Kind: kind, Start: offset, Length: length, Value: value}
		return
	}
}

func (p *Parser) emitScanError(e ScanError, offset, length int) {
	var code ErrorCode
	switch e {
	case ScanErrorInvalidUnicode:
		code = InvalidUnicode
	case ScanErrorInvalidEscapeCharacter:
		code = InvalidEscapeCharacter
	case ScanErrorUnexpectedEndOfNumber:
		code = UnexpectedEndOfNumber
	case ScanErrorUnexpectedEndOfComment:
		code = UnexpectedEndOfComment
	case ScanErrorUnexpectedEndOfString:
		code = UnexpectedEndOfString
	case ScanErrorInvalidCharacter:
		code = InvalidCharacter
	default:
		return
	}
	p.addProblem(Range{offset, offset + length}, SeverityError, code, code.String())
}

// addProblem appends a diagnostic. Consecutive diagnostics at the same
// start offset with the same code collapse into one, so a cascade of
// recovery attempts over a single bad token reports once.
func (p *Parser) addProblem(r Range, sev Severity, code ErrorCode, msg string) {
	if n := len(p.problems); n > 0 {
		last := p.problems[n-1]
		if last.Location.Start == r.Start && last.Code == code {
			return
		}
	}
	p.problems = append(p.problems, Problem{Location: r, Severity: sev, Code: code, Message: msg})
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// currentErrorRange is where an "unexpected token" diagnostic should be
// anchored. When the current token is zero-width (EOF, or a
// synthesized token at the same offset), it backs up to the previous
// non-whitespace byte so the squiggle lands on a visible character.
func (p *Parser) currentErrorRange() Range {
	if p.cur.Length == 0 {
		i := p.cur.Start - 1
		for i > 0 && isSpaceByte(p.text[i]) {
			i--
		}
		if i < 0 {
			i = 0
		}
		if len(p.text) == 0 {
			return Range{0, 0}
		}
		if i >= len(p.text) {
			i = len(p.text) - 1
		}
		return Range{i, i + 1}
	}
	return Range{p.cur.Start, p.cur.Start + p.cur.Length}
}

// hasNewlineBetween reports whether the source contains a line break
// anywhere in [a, b).
func (p *Parser) hasNewlineBetween(a, b int) bool {
	if a < 0 {
		a = 0
	}
	if b > len(p.text) {
		b = len(p.text)
	}
	if a >= b {
		return false
	}
	return strings.IndexByte(p.text[a:b], '\n') >= 0
}

// skipUntil advances tokens until one in stop is seen. If consume is
// true, that token is also consumed. EOF always terminates the skip.
func (p *Parser) skipUntil(stop map[TokenKind]bool, consume bool) {
	for {
		if p.cur.Kind == TokenEOF {
			return
		}
		if stop[p.cur.Kind] {
			if consume {
				p.advance()
			}
			return
		}
		p.advance()
	}
}

// parseValue dispatches on the current token to build the node for one
// grammar `value` production. Returns nil if the current token cannot
// start a value.
func (p *Parser) parseValue(parent *Node) *Node {
	switch p.cur.Kind {
	case TokenOpenBrace:
		return p.parseObject(parent)
	case TokenOpenBracket:
		return p.parseArray(parent)
	case TokenString:
		return p.parseString(parent, false)
	case TokenNumber:
		return p.parseNumber(parent)
	case TokenTrue:
		return p.parseLiteral(parent, KindBoolean, true)
	case TokenFalse:
		return p.parseLiteral(parent, KindBoolean, false)
	case TokenNull:
		return p.parseLiteral(parent, KindNull, false)
	default:
		return nil
	}
}

func (p *Parser) parseLiteral(parent *Node, kind NodeKind, boolValue bool) *Node {
	n := &Node{Kind: kind, Start: p.cur.Start, End: p.cur.End(), Parent: parent, BoolValue: boolValue}
	p.advance()
	return n
}

func (p *Parser) parseString(parent *Node, isKey bool) *Node {
	n := &Node{
		Kind:     KindString,
		Start:    p.cur.Start,
		End:      p.cur.End(),
		Parent:   parent,
		StrValue: p.cur.Value,
		IsKey:    isKey,
	}
	p.advance()
	return n
}

func (p *Parser) parseNumber(parent *Node) *Node {
	literal := p.cur.Value
	n := &Node{Kind: KindNumber, Start: p.cur.Start, End: p.cur.End(), Parent: parent}
	n.IsInteger = !strings.Contains(literal, ".")

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.addProblem(n.Range(), SeverityError, InvalidNumberFormat, "Invalid number format")
		n.NumValue = math.NaN()
	} else {
		n.NumValue = v
	}
	p.advance()
	return n
}

var objectCloseSet = map[TokenKind]bool{TokenCloseBrace: true, TokenComma: true}
var arrayCloseSet = map[TokenKind]bool{TokenCloseBracket: true, TokenComma: true}

func isKeyStart(k TokenKind) bool {
	return k == TokenString || k == TokenUnknown
}

func startsValue(k TokenKind) bool {
	switch k {
	case TokenOpenBrace, TokenOpenBracket, TokenString, TokenNumber, TokenTrue, TokenFalse, TokenNull:
		return true
	default:
		return false
	}
}

func (p *Parser) parseObject(parent *Node) *Node {
	n := &Node{Kind: KindObject, Start: p.cur.Start, Parent: parent}
	p.advance() // consume '{'

	if p.cur.Kind == TokenCloseBrace {
		n.End = p.cur.End()
		p.advance()
		return n
	}

	seenKeys := map[string]*Node{}
	dupFlagged := map[string]bool{}
	n.End = p.prevEnd

	for {
		if !isKeyStart(p.cur.Kind) {
			p.addProblem(p.currentErrorRange(), SeverityError, PropertyExpected, "Property expected")
			return n
		}

		prop := p.parseProperty(n)
		n.Properties = append(n.Properties, prop)
		n.End = prop.End

		if prop.PropertyKey != nil {
			key := prop.PropertyKey.StrValue
			if first, ok := seenKeys[key]; ok {
				if !dupFlagged[key] {
					p.addProblem(first.Range(), SeverityWarning, Undefined, "Duplicate object key")
					p.addProblem(prop.PropertyKey.Range(), SeverityWarning, Undefined, "Duplicate object key")
					dupFlagged[key] = true
				}
			} else {
				seenKeys[key] = prop.PropertyKey
			}
		}

		switch p.cur.Kind {
		case TokenComma:
			commaOffset := p.cur.Start
			commaEnd := p.cur.End()
			p.advance()
			if p.cur.Kind == TokenCloseBrace {
				p.addProblem(Range{commaOffset, commaEnd}, SeverityError, TrailingComma, "Trailing comma")
				n.End = p.cur.End()
				p.advance()
				return n
			}
			continue
		case TokenCloseBrace:
			n.End = p.cur.End()
			p.advance()
			return n
		default:
			if isKeyStart(p.cur.Kind) {
				// Another property follows with no separating comma.
				p.addProblem(p.currentErrorRange(), SeverityError, CommaExpected, "Comma expected")
				continue
			}
			p.addProblem(p.currentErrorRange(), SeverityError, CommaOrCloseBraceExpected, "Expected comma or closing brace")
			return n
		}
	}
}

func (p *Parser) parseProperty(parent *Node) *Node {
	n := &Node{Kind: KindProperty, Start: p.cur.Start, Parent: parent}

	var key *Node
	if p.cur.Kind == TokenString {
		key = p.parseString(n, true)
	} else {
		// Unquoted key recovery: manufacture a synthetic string key from
		// the Unknown token's text.
		key = &Node{
			Kind:     KindString,
			Start:    p.cur.Start,
			End:      p.cur.End(),
			Parent:   n,
			StrValue: p.cur.Value,
			IsKey:    true,
		}
		p.addProblem(key.Range(), SeverityError, DoubleQuotesExpected, "Property keys must be double-quoted")
		p.advance()
	}
	n.PropertyKey = key
	n.setPropertyLocation(key.StrValue)
	n.End = key.End

	if p.cur.Kind == TokenColon {
		n.HasColon = true
		n.ColonOffset = p.cur.Start
		p.advance()

		value := p.parseValue(n)
		if value == nil {
			p.addProblem(p.currentErrorRange(), SeverityError, ValueExpected, "Value expected")
			p.skipUntil(objectCloseSet, false)
			n.End = key.End
		} else {
			n.PropertyValue = value
			n.End = value.End
		}
		return n
	}

	// Missing colon. If the next token is a string that starts on a
	// later line than the key, treat it as the start of the next
	// property instead of trying to recover a value for this one.
	if p.cur.Kind == TokenString && p.hasNewlineBetween(key.End, p.cur.Start) {
		n.End = key.End
		return n
	}

	p.addProblem(p.currentErrorRange(), SeverityError, ColonExpected, "Colon expected")
	value := p.parseValue(n)
	if value != nil {
		n.PropertyValue = value
		n.End = value.End
	} else {
		n.End = key.End
	}
	return n
}

func (p *Parser) parseArray(parent *Node) *Node {
	n := &Node{Kind: KindArray, Start: p.cur.Start, Parent: parent}
	p.advance() // consume '['

	if p.cur.Kind == TokenCloseBracket {
		n.End = p.cur.End()
		p.advance()
		return n
	}

	n.End = p.prevEnd
	index := 0

	for {
		value := p.parseValue(n)
		if value == nil {
			p.addProblem(p.currentErrorRange(), SeverityError, ValueExpected, "Value expected")
			p.skipUntil(arrayCloseSet, false)
		} else {
			value.setIndexLocation(index)
			index++
			n.Items = append(n.Items, value)
			n.End = value.End
		}

		switch p.cur.Kind {
		case TokenComma:
			commaOffset := p.cur.Start
			commaEnd := p.cur.End()
			p.advance()
			if p.cur.Kind == TokenCloseBracket {
				p.addProblem(Range{commaOffset, commaEnd}, SeverityError, TrailingComma, "Trailing comma")
				n.End = p.cur.End()
				p.advance()
				return n
			}
			continue
		case TokenCloseBracket:
			n.End = p.cur.End()
			p.advance()
			return n
		default:
			if startsValue(p.cur.Kind) {
				p.addProblem(p.currentErrorRange(), SeverityError, CommaExpected, "Comma expected")
				continue
			}
			p.addProblem(p.currentErrorRange(), SeverityError, CommaOrCloseBracketExpected, "Expected comma or closing bracket")
			return n
		}
	}
}
