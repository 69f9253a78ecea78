package jsonls

import "fmt"

// Severity classifies a diagnostic. Syntactic errors are always Error;
// schema violations are always Warning (the host UI decides how loudly
// to surface them).
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityIgnore  Severity = "ignore"
)

// ErrorCode is a closed enum of lexical and syntactic error codes. The
// high nibble separates lexical (0x1xx) from syntactic (0x2xx) errors.
// Schema diagnostics carry no code, except EnumValueMismatch.
type ErrorCode int

const (
	Undefined ErrorCode = 0

	EnumValueMismatch ErrorCode = 1

	UnexpectedEndOfComment ErrorCode = 0x101
	UnexpectedEndOfString  ErrorCode = 0x102
	UnexpectedEndOfNumber  ErrorCode = 0x103
	InvalidUnicode         ErrorCode = 0x104
	InvalidEscapeCharacter ErrorCode = 0x105
	InvalidCharacter       ErrorCode = 0x106

	PropertyExpected            ErrorCode = 0x201
	CommaExpected               ErrorCode = 0x202
	ColonExpected               ErrorCode = 0x203
	ValueExpected               ErrorCode = 0x204
	CommaOrCloseBracketExpected ErrorCode = 0x205
	CommaOrCloseBraceExpected   ErrorCode = 0x206
	TrailingComma               ErrorCode = 0x207

	// DoubleQuotesExpected and InvalidNumberFormat back the unquoted-key
	// and malformed-number-literal recovery paths, which would otherwise
	// have to report as Undefined; see DESIGN.md's open-question log.
	DoubleQuotesExpected ErrorCode = 0x208
	InvalidNumberFormat  ErrorCode = 0x209
)

var errorCodeNames = map[ErrorCode]string{
	Undefined:                   "Undefined",
	EnumValueMismatch:           "EnumValueMismatch",
	UnexpectedEndOfComment:      "UnexpectedEndOfComment",
	UnexpectedEndOfString:       "UnexpectedEndOfString",
	UnexpectedEndOfNumber:       "UnexpectedEndOfNumber",
	InvalidUnicode:              "InvalidUnicode",
	InvalidEscapeCharacter:      "InvalidEscapeCharacter",
	InvalidCharacter:            "InvalidCharacter",
	PropertyExpected:            "PropertyExpected",
	CommaExpected:               "CommaExpected",
	ColonExpected:               "ColonExpected",
	ValueExpected:               "ValueExpected",
	CommaOrCloseBracketExpected: "CommaOrCloseBracketExpected",
	CommaOrCloseBraceExpected:   "CommaOrCloseBraceExpected",
	TrailingComma:               "TrailingComma",
	DoubleQuotesExpected:        "DoubleQuotesExpected",
	InvalidNumberFormat:         "InvalidNumberFormat",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Problem is a single diagnostic: a syntax error from the parser or a
// schema violation from the validator.
type Problem struct {
	Location Range
	Severity Severity
	Code     ErrorCode
	Message  string
}

func (p Problem) HasCode() bool {
	return p.Code != Undefined
}
