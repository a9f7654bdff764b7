package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm     ChromeClass = "regform-form"
	ClassHeader   ChromeClass = "regform-header"
	ClassField    ChromeClass = "regform-field"
	ClassRow      ChromeClass = "regform-row"
	ClassToggle   ChromeClass = "regform-toggle"
	ClassError    ChromeClass = "regform-error"
	ClassErrors   ChromeClass = "regform-errors"
	ClassActions  ChromeClass = "regform-actions"
	ClassSuccess  ChromeClass = "regform-success"
	ClassSnapshot ChromeClass = "regform-snapshot"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"form":     string(ClassForm),
		"header":   string(ClassHeader),
		"field":    string(ClassField),
		"row":      string(ClassRow),
		"toggle":   string(ClassToggle),
		"error":    string(ClassError),
		"errors":   string(ClassErrors),
		"actions":  string(ClassActions),
		"success":  string(ClassSuccess),
		"snapshot": string(ClassSnapshot),
	}
}
