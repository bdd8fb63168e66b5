package forms

import (
	"regexp"
	"sort"
	"strings"
)

// emailRe is deliberately permissive: local@domain.tld without whitespace.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var idNumberRe = regexp.MustCompile(`^\d{10}$`)

// Predicate tests one field value. True means the rule passed.
type Predicate func(FieldValue) bool

// Rule pairs a predicate with the translation key of its failure message.
type Rule struct {
	Check      Predicate
	MessageKey string
}

// RuleSet maps field names to the ordered rules applied to each field.
type RuleSet map[string][]Rule

// FieldError reports one failed field with its localized message.
type FieldError struct {
	Field   string
	Message string
}

// Required fails on empty text (after trimming) or an unchecked checkbox.
func Required(messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			switch v.Kind {
			case KindCheckbox:
				return v.Checked
			default:
				return strings.TrimSpace(v.Text) != ""
			}
		},
		MessageKey: messageKey,
	}
}

// MinLen fails when the trimmed text is shorter than n characters.
func MinLen(n int, messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			return len([]rune(strings.TrimSpace(v.Text))) >= n
		},
		MessageKey: messageKey,
	}
}

// MaxLen fails when the trimmed text is longer than n characters.
func MaxLen(n int, messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			return len([]rune(strings.TrimSpace(v.Text))) <= n
		},
		MessageKey: messageKey,
	}
}

// Email fails unless the text matches the permissive local@domain.tld shape.
func Email(messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			return emailRe.MatchString(strings.TrimSpace(v.Text))
		},
		MessageKey: messageKey,
	}
}

// SaudiMobile fails unless the text normalizes to a valid local mobile number.
func SaudiMobile(messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			return IsValidSaudiMobile(NormalizeSaudiPhone(v.Text))
		},
		MessageKey: messageKey,
	}
}

// Checked fails unless the checkbox is ticked.
func Checked(messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			return v.Kind == KindCheckbox && v.Checked
		},
		MessageKey: messageKey,
	}
}

// IDNumber fails unless the text is exactly ten digits.
func IDNumber(messageKey string) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			return idNumberRe.MatchString(strings.TrimSpace(v.Text))
		},
		MessageKey: messageKey,
	}
}

// Optional wraps a rule so it passes on empty input.
func Optional(r Rule) Rule {
	return Rule{
		Check: func(v FieldValue) bool {
			if v.Kind != KindCheckbox && strings.TrimSpace(v.Text) == "" {
				return true
			}
			return r.Check(v)
		},
		MessageKey: r.MessageKey,
	}
}

// Validate evaluates every field in the rule set against values, so all
// errors surface at once. Within a single field the first failing rule wins.
// A field absent from values is treated as empty.
func (rs RuleSet) Validate(values map[string]FieldValue, tr *Translator) []FieldError {
	fields := make([]string, 0, len(rs))
	for name := range rs {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var errs []FieldError
	for _, name := range fields {
		v := values[name]
		for _, rule := range rs[name] {
			if !rule.Check(v) {
				errs = append(errs, FieldError{Field: name, Message: tr.T(rule.MessageKey)})
				break
			}
		}
	}
	return errs
}

// ContactRules is the canonical rule set for the contact form.
func ContactRules() RuleSet {
	return RuleSet{
		"name": {
			Required(MsgRequiredField),
			MinLen(3, MsgNameMinLength),
			MaxLen(100, MsgNameMaxLength),
		},
		"email": {
			Required(MsgRequiredField),
			Email(MsgInvalidEmail),
		},
		"message": {
			Required(MsgRequiredField),
			MinLen(10, MsgMessageMinLength),
			MaxLen(5000, MsgMessageMaxLength),
		},
	}
}

// DriverRules is the canonical rule set for the driver registration form.
// It extends the contact rules with the phone, terms and identity fields.
func DriverRules() RuleSet {
	rs := ContactRules()
	rs["phone"] = []Rule{
		Required(MsgPhoneRequired),
		SaudiMobile(MsgInvalidPhone),
	}
	rs["agree_terms"] = []Rule{
		Checked(MsgTermsRequired),
	}
	rs["sponsor_phone"] = []Rule{
		Optional(SaudiMobile(MsgInvalidPhone)),
	}
	rs["id_number"] = []Rule{
		Optional(IDNumber(MsgInvalidIDNumber)),
	}
	rs["nationality"] = []Rule{
		MaxLen(100, MsgNameMaxLength),
	}
	return rs
}
