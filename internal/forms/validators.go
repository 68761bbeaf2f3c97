package forms

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} is required."

	filledTag  = "filled"
	filledText = "{0} cannot be empty."

	requiredTag  = "required"
	requiredText = "{0} is required."

	simpleEmailTag   = "simple_email"
	simpleEmailText  = "Valid {0} required."
	simpleEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// labels used in messages, keyed by json field name
	labels = map[string]string{
		"title":   "Title",
		"due":     "Due date",
		"name":    "Name",
		"email":   "email",
		"message": "Message",
	}
)

// FieldErrors maps a field name to its message. A nil or empty map means valid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Validator checks form inputs and produces per-field messages.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator instantiates the validator for use.
func NewValidator() *Validator {
	v := &Validator{validate: validator.New()}

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	v.translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v.validate, v.translator)

	// Use JSON tag names for errors instead of Go struct names.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = v.validate.RegisterValidation(filledTag, notBlankValidation)
	_ = v.validate.RegisterValidation(simpleEmailTag, simpleEmailValidation)

	v.registerTranslation(notBlankTag, notBlankText, false)
	v.registerTranslation(filledTag, filledText, false)
	v.registerTranslation(simpleEmailTag, simpleEmailText, false)
	v.registerTranslation(requiredTag, requiredText, true)
	return v
}

// registerTranslation registers a message for tag. {0} is the field label.
func (v *Validator) registerTranslation(tag, text string, override bool) {
	_ = v.validate.RegisterTranslation(
		tag, v.translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			label, ok := labels[fe.Field()]
			if !ok {
				label = fe.Field()
			}
			s, _ := t.T(tag, label)
			return s
		},
	)
}

// Check validates s and returns the failing fields, or nil when s is valid.
func (v *Validator) Check(s interface{}) FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fe.Translate(v.translator)
		}
	}
	return out
}

// Custom Validators

// notBlankValidation fails strings that are empty after trimming whitespace.
func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// simpleEmailValidation is a shape check: local@domain.tld, no spaces, one @.
func simpleEmailValidation(fl validator.FieldLevel) bool {
	return simpleEmailRegex.MatchString(fl.Field().String())
}
