package email

// WelcomeData fills templates/emails/welcome.html.
type WelcomeData struct {
	Name  string
	Email string
}

// SendWelcomeEmail greets a user who just signed up.
func (c *Client) SendWelcomeEmail(to, name string) error {
	return c.SendEmail(to, TemplateWelcome, WelcomeData{
		Name:  name,
		Email: to,
	})
}
