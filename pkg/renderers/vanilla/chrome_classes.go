package vanilla

// ChromeClass is a typed identifier for the CSS classes the page template
// emits. Themes target these names.
type ChromeClass string

const (
	ClassPage     ChromeClass = "namegen-page"
	ClassWarning  ChromeClass = "namegen-warning"
	ClassSelector ChromeClass = "namegen-selector"
	ClassForm     ChromeClass = "namegen-form"
	ClassField    ChromeClass = "form-group"
	ClassOutput   ChromeClass = "namegen-output"
	ClassExamples ChromeClass = "namegen-examples"
	ClassRequired ChromeClass = "namegen-required"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"page":     string(ClassPage),
		"warning":  string(ClassWarning),
		"selector": string(ClassSelector),
		"form":     string(ClassForm),
		"field":    string(ClassField),
		"output":   string(ClassOutput),
		"examples": string(ClassExamples),
		"required": string(ClassRequired),
	}
}
