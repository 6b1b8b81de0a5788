package email

// PreviewData holds sample data for rendering templates locally.
var PreviewData = map[Template]any{
	TemplateWelcome: WelcomeData{
		Name:  "John",
		Email: "john@example.com",
	},
}

// Preview renders a template with its sample data.
func Preview(templateName Template) (string, error) {
	return Render(templateName, PreviewData[templateName])
}
