package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates. Kept inline so a missing templates directory never
// breaks signup.
var defaultTemplates = map[string]string{
	"verification": `
<html><body>
<h2>Welcome to Eggslist!</h2>
<p>Confirm your email address to start buying from local farms.</p>
<p><a href="{{.Link}}">Verify email</a></p>
<p>If you did not create an account, ignore this message.</p>
</body></html>`,

	"password_reset": `
<html><body>
<h2>Password reset</h2>
<p>Someone requested a password reset for your account.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>The link expires in {{.TTL}}.</p>
</body></html>`,
}

// TemplateData is the data passed into a template.
type TemplateData map[string]interface{}

type templateManager struct {
	templates map[string]*template.Template
}

func newTemplateManager() (*templateManager, error) {
	tm := &templateManager{templates: make(map[string]*template.Template)}

	for name, text := range defaultTemplates {
		t, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		tm.templates[name] = t
	}

	return tm, nil
}

// Render renders a named template with the given data.
func (tm *templateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}

	return buf.String(), nil
}
