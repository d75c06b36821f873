package sliderule

import "unicode/utf8"

// maxFieldLen bounds the text of an operand field.
const maxFieldLen = 24

// numberField is an editable operand text field.
type numberField struct {
	label string
	text  string
}

// accepts reports whether r can appear in an operand.
func (f *numberField) accepts(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == 'e' || r == 'E'
}

// insert appends r if it is part of a number and the field has room.
func (f *numberField) insert(r rune) {
	if !f.accepts(r) || len(f.text) >= maxFieldLen {
		return
	}
	f.text += string(r)
}

// backspace removes the last rune.
func (f *numberField) backspace() {
	if f.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.text)
	f.text = f.text[:len(f.text)-size]
}

// value parses the field as an operand.
func (f *numberField) value() (float64, error) {
	return ParseOperand(f.text)
}
