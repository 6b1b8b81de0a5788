package email

import "fmt"

// Template names an HTML file under templates/emails.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

var subjects = map[Template]string{
	TemplateWelcome: "Welcome to Todos!",
}

// Subject is the subject line sent with the template.
func (t Template) Subject() string {
	return subjects[t]
}

func (t Template) path() string {
	return fmt.Sprintf("templates/emails/%s.html", t)
}
