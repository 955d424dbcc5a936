package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Встроенные шаблоны писем. Ключ - имя шаблона.
var builtinTemplates = map[string]string{
	"welcome": `
<h2>Добро пожаловать, {{.Name}}!</h2>
<p>Ваш аккаунт на платформе менторства создан.</p>
{{if .IsMentor}}<p>Ваша заявка ментора отправлена на модерацию. Мы сообщим, когда администратор её рассмотрит.</p>{{end}}
`,

	"mentor_decision": `
<h2>Здравствуйте, {{.Name}}!</h2>
{{if .Approved}}
<p>Ваша заявка ментора <b>одобрена</b>. Теперь студенты видят ваш профиль и могут отправлять вам заявки на менторство.</p>
{{else}}
<p>К сожалению, ваша заявка ментора была отклонена.</p>
{{end}}
`,

	"request_decision": `
<h2>Здравствуйте, {{.StudentName}}!</h2>
{{if .Accepted}}
<p>Ментор {{.MentorName}} <b>принял</b> вашу заявку на менторство. Можно начинать!</p>
{{else}}
<p>Ментор {{.MentorName}} отклонил вашу заявку. Вы можете отправить заявку другому ментору.</p>
{{end}}
`,
}

// TemplateManager рендерит встроенные html-шаблоны
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	for name, body := range builtinTemplates {
		t, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %q: %w", name, err)
		}
		tm.templates[name] = t
	}

	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %q: %w", name, err)
	}
	return buf.String(), nil
}
