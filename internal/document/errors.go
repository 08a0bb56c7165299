package document

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
)

// AccessError reports a template file that could not be opened or read.
type AccessError struct {
	Path string
	Op   string // "open" or "read"
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to %s template file %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

func newAccessError(op, path string, err error) *AccessError {
	// *fs.PathError repeats the op and path; keep only the cause.
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &AccessError{Path: path, Op: op, Err: err}
}

// ParseError reports a document that is not a well-formed YAML mapping.
// Line and Column are 1-based and zero when the parser gave no position.
type ParseError struct {
	Source string
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("failed to parse YAML")
	if e.Source != "" {
		fmt.Fprintf(&b, " in %s", e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// KeyNotFoundError reports a lookup of a key that the mapping does not define.
type KeyNotFoundError struct {
	Key string
	// Scope names what was being looked up, e.g. "section" or "node template".
	// Empty means a plain mapping key.
	Scope string
}

func (e *KeyNotFoundError) Error() string {
	scope := e.Scope
	if scope == "" {
		scope = "key"
	}
	return fmt.Sprintf("%s %q not found", scope, e.Key)
}

var (
	// goccy/go-yaml: "[3:5] mapping value is not allowed in this context"
	bracketPosRe = regexp.MustCompile(`^\[(\d+):(\d+)\]\s*`)
	// yaml.v3: "yaml: line 3: did not find expected key"
	linePosRe = regexp.MustCompile(`line (\d+)(?:, column (\d+))?:\s*`)
)

// newParseError converts a backend error into a ParseError, pulling the
// position out of the parser's message when it has one.
func newParseError(source string, err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Source = source
		return pe
	}

	msg := strings.TrimSpace(err.Error())
	// goccy appends an annotated source excerpt after the first line.
	if i := strings.IndexByte(msg, '\n'); i >= 0 && bracketPosRe.MatchString(msg) {
		msg = msg[:i]
	}
	msg = strings.TrimPrefix(msg, "yaml: ")

	out := &ParseError{Source: source, Msg: msg, Err: err}
	if m := bracketPosRe.FindStringSubmatch(msg); m != nil {
		out.Line, _ = strconv.Atoi(m[1])
		out.Column, _ = strconv.Atoi(m[2])
		out.Msg = msg[len(m[0]):]
		return out
	}
	if m := linePosRe.FindStringSubmatchIndex(msg); m != nil {
		out.Line, _ = strconv.Atoi(msg[m[2]:m[3]])
		if m[4] >= 0 {
			out.Column, _ = strconv.Atoi(msg[m[4]:m[5]])
		}
		// Only strip a leading position; multi-line unmarshal errors keep theirs.
		if m[0] == 0 {
			out.Msg = msg[m[1]:]
		}
	}
	return out
}
