package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTemplate indicates a template name that was never
	// registered. This is a programming error, not a runtime condition.
	ErrUnknownTemplate = errors.New("unknown prompt template")
	// ErrMissingField indicates a required placeholder was not supplied.
	ErrMissingField = errors.New("missing prompt field")
)

// Template pairs prompt text with the set of fields it requires. Fields are
// validated at render time so a miswired caller fails loudly instead of
// producing a prompt with literal placeholders in it.
type Template struct {
	Name     string
	Text     string
	Required []string
}

var templates = map[string]Template{}

func register(t Template) {
	templates[t.Name] = t
}

// Render substitutes {field} placeholders in the named template. Every
// required field must be present in fields; extra fields are ignored.
func Render(name string, fields map[string]string) (string, error) {
	t, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	for _, field := range t.Required {
		if _, ok := fields[field]; !ok {
			return "", fmt.Errorf("%w: %s requires %q", ErrMissingField, name, field)
		}
	}
	pairs := make([]string, 0, len(fields)*2)
	for key, value := range fields {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}

// IsTemplateError reports whether err is a template-contract violation
// (unknown template or missing required field) as opposed to a runtime
// failure of a collaborator.
func IsTemplateError(err error) bool {
	return errors.Is(err, ErrUnknownTemplate) || errors.Is(err, ErrMissingField)
}

// Names lists the registered template names.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}
