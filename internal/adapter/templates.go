package adapter

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// email is a rendered message ready to be posted to the mail API.
type email struct {
	Subject string
	Text    string
	HTML    string
}

type emailData struct {
	FirstName string
	URL       string
}

type emailTemplate struct {
	subject string
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

const (
	signupSubject = "Email confirmation for NITC Blogs"
	resetSubject  = "Your password reset token (valid for only 10 minutes)"
)

var (
	signupTemplate = emailTemplate{
		subject: signupSubject,
		text: texttemplate.Must(texttemplate.New("signup.txt").Parse(
			`Hi {{.FirstName}},

Welcome to NITC Blogs! Confirm your email address by opening the link below:

{{.URL}}

If you did not create an account, please ignore this email.
`)),
		html: htmltemplate.Must(htmltemplate.New("signup.html").Parse(
			`<p>Hi {{.FirstName}},</p>
<p>Welcome to NITC Blogs! Confirm your email address by opening the link below:</p>
<p><a href="{{.URL}}">Confirm my email</a></p>
<p>If you did not create an account, please ignore this email.</p>
`)),
	}

	resetTemplate = emailTemplate{
		subject: resetSubject,
		text: texttemplate.Must(texttemplate.New("reset.txt").Parse(
			`Hi {{.FirstName}},

Forgot your password? Set a new one here:

{{.URL}}

If you didn't forget your password, please ignore this email.
`)),
		html: htmltemplate.Must(htmltemplate.New("reset.html").Parse(
			`<p>Hi {{.FirstName}},</p>
<p>Forgot your password? Set a new one here:</p>
<p><a href="{{.URL}}">Reset my password</a></p>
<p>If you didn't forget your password, please ignore this email.</p>
`)),
	}
)

func (t emailTemplate) render(name, url string) (email, error) {
	data := emailData{FirstName: firstName(name), URL: url}

	var text, html bytes.Buffer
	if err := t.text.Execute(&text, data); err != nil {
		return email{}, fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}
	if err := t.html.Execute(&html, data); err != nil {
		return email{}, fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}

	return email{Subject: t.subject, Text: text.String(), HTML: html.String()}, nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
