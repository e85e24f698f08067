package portal

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// Credentials is the login payload. The backend expects it form-encoded.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(
			&c.Username,
			validation.Required,
			validation.Length(3, 50),
		),
		validation.Field(
			&c.Password,
			validation.Required,
		),
	)
}

// Registration is the sign-up payload.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r Registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Phone, validation.By(validPhone)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
	)
}

func validPhone(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	num, err := phonenumbers.Parse(raw, "US")
	if err != nil {
		return err
	}

	if !phonenumbers.IsValidNumber(num) {
		return errors.New("must be a valid phone number")
	}

	return nil
}

// ReviewDecision is the payload ops submit when reviewing a software request.
type ReviewDecision struct {
	Status  RequestStatus `json:"status"`
	Comment string        `json:"comment,omitempty"`
}

// Validate will run validation rules
func (r ReviewDecision) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Status,
			validation.Required,
			validation.In(RequestApproved, RequestRejected),
		),
	)
}
