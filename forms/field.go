package forms

// FieldKind discriminates the variants of FieldValue.
type FieldKind int

const (
	KindText FieldKind = iota
	KindCheckbox
	KindSelect
)

// FieldValue is a tagged union over the three kinds of form input this site
// uses. Predicates dispatch on Kind explicitly instead of duck-typing a
// generic value.
type FieldValue struct {
	Kind    FieldKind
	Text    string
	Checked bool
}

// Text wraps a free-text input value.
func Text(s string) FieldValue {
	return FieldValue{Kind: KindText, Text: s}
}

// Checkbox wraps a checkbox state.
func Checkbox(checked bool) FieldValue {
	return FieldValue{Kind: KindCheckbox, Checked: checked}
}

// Select wraps a dropdown selection.
func Select(s string) FieldValue {
	return FieldValue{Kind: KindSelect, Text: s}
}
