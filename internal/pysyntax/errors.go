package pysyntax

import (
	"fmt"
	"strings"
)

// Stage tells which phase rejected the source.
type Stage string

// Stages.
const (
	StageLex   Stage = "lexical error"
	StageParse Stage = "parse error"
)

// SyntaxError is returned for source that cannot be lexed or parsed.
// Line is 1-based and Col is a 0-based byte column.
type SyntaxError struct {
	Stage Stage
	Line  int
	Col   int
	Msg   string
	// Source line the error points into, when known.
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Stage, e.Line, e.Col+1, e.Msg)
}

// Snippet renders the offending line with a caret under the column.
func (e *SyntaxError) Snippet() string {
	if e.Text == "" {
		return e.Error()
	}

	col := e.Col
	if col > len(e.Text) {
		col = len(e.Text)
	}

	if col < 0 {
		col = 0
	}

	gutter := fmt.Sprintf("%4d | ", e.Line)

	var b strings.Builder

	b.WriteString(e.Error())
	b.WriteString("\n\n")
	b.WriteString(gutter)
	b.WriteString(e.Text)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(gutter)+col))
	b.WriteString("^")

	return b.String()
}

func lineAt(src string, line int) string {
	if line < 1 {
		return ""
	}

	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return ""
	}

	return strings.TrimRight(lines[line-1], "\r")
}
