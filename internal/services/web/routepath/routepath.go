// Package routepath centralizes the web route constants.
package routepath

const (
	// Root serves the contact page shell and form.
	Root = "/"
	// ContactSubmit receives contact form posts.
	ContactSubmit = "/contact"
	// ContactSent shows the post-submission confirmation.
	ContactSent = "/contact/sent"
	// Health is the liveness endpoint.
	Health = "/health"
)
