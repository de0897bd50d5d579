package contactform

import (
	"context"
	"fmt"

	"github.com/brookmere/contactsite/internal/contact"
)

// service drives one submission through validation, the lifecycle state
// machine, and delivery.
type service struct {
	deliverer contact.Deliverer
}

func newService(deliverer contact.Deliverer) service {
	return service{deliverer: deliverer}
}

// submitOutcome is the resolved result of one submission attempt. When
// validationMessage is set the submission never started and the state is
// still idle; otherwise the state holds success or error.
type submitOutcome struct {
	state             contact.State
	form              contact.FormData
	validationMessage string
}

// submit validates the form and, when valid, delivers it. Delivery
// failures resolve into the error phase with the uniform failure
// message; success clears the form fields.
func (s service) submit(ctx context.Context, form contact.FormData) (submitOutcome, error) {
	outcome := submitOutcome{form: form}
	if message, ok := form.Validate(); !ok {
		outcome.validationMessage = message
		return outcome, nil
	}
	if s.deliverer == nil {
		return outcome, fmt.Errorf("deliverer is required")
	}
	if err := outcome.state.Begin(); err != nil {
		return outcome, err
	}
	if err := s.deliverer.Deliver(ctx, form); err != nil {
		if err := outcome.state.Fail(contact.FailureMessage); err != nil {
			return outcome, err
		}
		return outcome, nil
	}
	if err := outcome.state.Succeed(); err != nil {
		return outcome, err
	}
	outcome.form.Clear()
	return outcome, nil
}
