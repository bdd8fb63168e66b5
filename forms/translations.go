package forms

// Message keys shared by the client rules and the server success responses.
const (
	MsgRequiredField    = "form_messages.required_field"
	MsgNameMinLength    = "form_messages.name_min_length"
	MsgNameMaxLength    = "form_messages.name_max_length"
	MsgPhoneRequired    = "form_messages.phone_required"
	MsgInvalidPhone     = "form_messages.invalid_phone"
	MsgInvalidEmail     = "form_messages.invalid_email"
	MsgMessageMinLength = "form_messages.message_min_length"
	MsgMessageMaxLength = "form_messages.message_max_length"
	MsgTermsRequired    = "form_messages.terms_required"
	MsgInvalidIDNumber  = "form_messages.invalid_id_number"
	MsgContactSuccess   = "form_messages.contact_success"
	MsgDriverSuccess    = "form_messages.driver_success"
	MsgSubmitError      = "form_messages.submit_error"
	MsgNetworkError     = "form_messages.network_error"
)

// Translator resolves message keys against an explicit table. It is passed
// by reference to validators and renderers; there is no ambient global
// lookup. Keys missing from the table fall back to the Arabic defaults.
type Translator struct {
	table map[string]string
}

// NewTranslator builds a Translator around the given table. A nil table
// yields the Arabic defaults for every key.
func NewTranslator(table map[string]string) *Translator {
	return &Translator{table: table}
}

// T resolves a message key.
func (t *Translator) T(key string) string {
	if t != nil && t.table != nil {
		if s, ok := t.table[key]; ok {
			return s
		}
	}
	if s, ok := arabicMessages[key]; ok {
		return s
	}
	return key
}

var arabicMessages = map[string]string{
	MsgRequiredField:    "هذا الحقل مطلوب",
	MsgNameMinLength:    "يجب أن يكون الاسم 3 أحرف على الأقل",
	MsgNameMaxLength:    "الاسم طويل جداً (100 حرف كحد أقصى)",
	MsgPhoneRequired:    "رقم الهاتف مطلوب",
	MsgInvalidPhone:     "يرجى إدخال رقم هاتف سعودي صحيح (مثال: +966555134448)",
	MsgInvalidEmail:     "يرجى إدخال بريد إلكتروني صحيح",
	MsgMessageMinLength: "يجب أن تكون الرسالة 10 أحرف على الأقل",
	MsgMessageMaxLength: "الرسالة طويلة جداً (5000 حرف كحد أقصى)",
	MsgTermsRequired:    "يجب الموافقة على الشروط والأحكام",
	MsgInvalidIDNumber:  "يرجى إدخال رقم هوية مكون من 10 أرقام",
	MsgContactSuccess:   "تم إرسال الرسالة بنجاح! سنعاود الاتصال بك قريباً.",
	MsgDriverSuccess:    "تم إرسال طلب الانضمام بنجاح! سنتواصل معك قريباً لمناقشة الخطوات التالية.",
	MsgSubmitError:      "حدث خطأ أثناء إرسال الطلب. يرجى المحاولة مرة أخرى.",
	MsgNetworkError:     "خطأ في الاتصال. يرجى التحقق من اتصالك بالإنترنت والمحاولة مرة أخرى.",
}

// Arabic returns a copy of the Arabic message table.
func Arabic() map[string]string {
	out := make(map[string]string, len(arabicMessages))
	for k, v := range arabicMessages {
		out[k] = v
	}
	return out
}

// English returns the English message table.
func English() map[string]string {
	return map[string]string{
		MsgRequiredField:    "This field is required",
		MsgNameMinLength:    "Name must be at least 3 characters",
		MsgNameMaxLength:    "Name is too long (100 characters max)",
		MsgPhoneRequired:    "Phone number is required",
		MsgInvalidPhone:     "Please enter a valid Saudi phone number (example: +966555134448)",
		MsgInvalidEmail:     "Please enter a valid email address",
		MsgMessageMinLength: "Message must be at least 10 characters",
		MsgMessageMaxLength: "Message is too long (5000 characters max)",
		MsgTermsRequired:    "You must agree to the terms and conditions",
		MsgInvalidIDNumber:  "Please enter a 10-digit ID number",
		MsgContactSuccess:   "Message sent successfully! We will get back to you soon.",
		MsgDriverSuccess:    "Your application was sent successfully! We will contact you soon to discuss the next steps.",
		MsgSubmitError:      "Something went wrong while sending. Please try again.",
		MsgNetworkError:     "Connection error. Please check your internet connection and try again.",
	}
}
