// Package lua assembles fragments of the Lua table syntax understood by the
// simulation runtime. It knows about lexical conventions only (hex literals,
// statement terminators, block punctuation); what ends up in the blocks is
// decided by the caller.
package lua

import (
	"fmt"
	"strings"
)

const fieldIndent = "        "
const blockIndent = "    "

// Hex renders an integer as an 8-digit hex literal (0xXXXXXXXX).
func Hex(v uint64) string {
	return fmt.Sprintf("0x%08x", v)
}

// Str renders a quoted Lua string literal.
func Str(s string) string {
	return fmt.Sprintf("%q", s)
}

// Bool renders a Lua boolean literal.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Buffer accumulates the lines of a configuration file.
type Buffer struct {
	lines []string
}

// Append adds preformatted lines to the buffer.
func (b *Buffer) Append(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// Linef adds a single formatted line to the buffer.
func (b *Buffer) Linef(format string, a ...interface{}) {
	b.lines = append(b.lines, fmt.Sprintf(format, a...))
}

// Blank adds an empty line.
func (b *Buffer) Blank() {
	b.lines = append(b.lines, "")
}

// TrimBlank removes a trailing empty line, if any.
func (b *Buffer) TrimBlank() {
	if n := len(b.lines); n > 0 && b.lines[n-1] == "" {
		b.lines = b.lines[:n-1]
	}
}

// Local adds a top-level `local NAME = value` declaration.
func (b *Buffer) Local(name, value string) {
	b.Linef("local %s = %s", name, value)
}

// Comment adds a top-level `-- text` comment line.
func (b *Buffer) Comment(text string) {
	b.Append("-- " + text)
}

// String joins the accumulated lines into the final file contents,
// terminated by a newline.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// Block is a named table entry nested one level inside the platform table.
// Fields are collected as structured lines and serialized in one go.
type Block struct {
	name   string
	fields []string
}

// NewBlock creates an empty block with the given entry name.
func NewBlock(name string) *Block {
	return &Block{name: name}
}

// Field adds a `name = value;` field.
func (b *Block) Field(name, value string) {
	b.fields = append(b.fields, fmt.Sprintf("%s = %s;", name, value))
}

// Fieldf adds a `name = value;` field with a formatted value.
func (b *Block) Fieldf(name, format string, a ...interface{}) {
	b.Field(name, fmt.Sprintf(format, a...))
}

// Raw adds a preformatted field statement, terminator included.
func (b *Block) Raw(stmt string) {
	b.fields = append(b.fields, stmt)
}

// WriteTo serializes the block into the buffer.
func (b *Block) WriteTo(buf *Buffer) {
	buf.Append(blockIndent + b.name + " = {")
	for _, f := range b.fields {
		buf.Append(fieldIndent + f)
	}
	buf.Append(blockIndent + "};")
}
