package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager is the in-memory TemplateRenderer. The built-in
// templates are registered at construction, extra ones can be added.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		// Built-ins are compile-time constants, parse errors are a bug.
		if err := tm.AddTemplate(name, body); err != nil {
			panic(fmt.Sprintf("email: bad builtin template %q: %v", name, err))
		}
	}

	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

var builtinTemplates = map[string]string{
	"verification": `
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif">
  <h2 style="color:#4F46E5">Welcome to PetBnB, {{.FirstName}}!</h2>
  <p>Please verify your email address to activate your account.</p>
  <p style="margin:24px 0">
    <a href="{{.VerificationURL}}"
       style="background:#4F46E5;color:#fff;padding:12px 24px;border-radius:6px;text-decoration:none">
      Verify Email
    </a>
  </p>
  <p>This link expires in 24 hours. If the button does not work, copy this URL:</p>
  <p>{{.VerificationURL}}</p>
</div>`,

	"booking_status": `
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif">
  <h2 style="color:#4F46E5">Booking {{.Status}}</h2>
  <p>Hi {{.FirstName}},</p>
  <p>Your booking for <strong>{{.ServiceTitle}}</strong> is now <strong>{{.Status}}</strong>.</p>
  <p>Start: {{.StartTime}}<br>End: {{.EndTime}}</p>
  {{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}
  <p>Open the app for details.</p>
</div>`,

	"booking_reminder": `
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif">
  <h2 style="color:#4F46E5">Upcoming booking reminder</h2>
  <p>Hi {{.FirstName}},</p>
  <p>Your booking <strong>{{.ServiceTitle}}</strong> starts at {{.StartTime}}.</p>
  <p>Please be ready on time.</p>
</div>`,
}
