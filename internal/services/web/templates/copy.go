// Package templates renders the site's templ components.
package templates

import "golang.org/x/text/language"

// Copy holds the page chrome strings for one language. Validation and
// delivery failure messages are not part of the copy: they come from the
// contact domain and render verbatim.
type Copy struct {
	PageTitle       string
	MetaDescription string
	Heading         string
	Subheading      string

	NameLabel          string
	NamePlaceholder    string
	EmailLabel         string
	EmailPlaceholder   string
	MessageLabel       string
	MessagePlaceholder string
	SendLabel          string
	SendingLabel       string

	SentHeading      string
	SentBody         string
	SendAnotherLabel string

	ToastSentTitle  string
	ToastSentBody   string
	ToastFailedTitle string
}

var englishCopy = Copy{
	PageTitle:       "Get in Touch",
	MetaDescription: "Send a message and we'll get back to you soon.",
	Heading:         "Get in Touch",
	Subheading:      "Have a question or want to work together? Drop a message below.",

	NameLabel:          "Name",
	NamePlaceholder:    "Your name",
	EmailLabel:         "Email",
	EmailPlaceholder:   "you@example.com",
	MessageLabel:       "Message",
	MessagePlaceholder: "What's on your mind?",
	SendLabel:          "Send Message",
	SendingLabel:       "Sending Message…",

	SentHeading:      "Message Sent!",
	SentBody:         "Thank you for reaching out. We'll get back to you soon.",
	SendAnotherLabel: "Send Another Message",

	ToastSentTitle:   "Message sent!",
	ToastSentBody:    "Thank you for reaching out. We'll get back to you soon.",
	ToastFailedTitle: "Something went wrong",
}

var portugueseCopy = Copy{
	PageTitle:       "Fale Conosco",
	MetaDescription: "Envie uma mensagem e retornaremos em breve.",
	Heading:         "Fale Conosco",
	Subheading:      "Tem uma pergunta ou quer trabalhar conosco? Deixe uma mensagem abaixo.",

	NameLabel:          "Nome",
	NamePlaceholder:    "Seu nome",
	EmailLabel:         "Email",
	EmailPlaceholder:   "voce@exemplo.com",
	MessageLabel:       "Mensagem",
	MessagePlaceholder: "O que você gostaria de dizer?",
	SendLabel:          "Enviar Mensagem",
	SendingLabel:       "Enviando Mensagem…",

	SentHeading:      "Mensagem Enviada!",
	SentBody:         "Obrigado pelo contato. Retornaremos em breve.",
	SendAnotherLabel: "Enviar Outra Mensagem",

	ToastSentTitle:   "Mensagem enviada!",
	ToastSentBody:    "Obrigado pelo contato. Retornaremos em breve.",
	ToastFailedTitle: "Algo deu errado",
}

// CopyFor returns the page copy for the resolved language tag.
func CopyFor(tag language.Tag) Copy {
	if tag == language.BrazilianPortuguese {
		return portugueseCopy
	}
	return englishCopy
}
