package handler

import (
	"errors"
	"fmt"
	"net/mail"
	"time"
)

// Request payloads with the validation the routing layer owes the core:
// non-blank, length-bounded fields and non-empty skill sets.

// ValidationError marks a request that failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a request validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RegistrationRequest is the payload for creating a talent profile.
type RegistrationRequest struct {
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Skills    []string `json:"skills"`
}

func (r *RegistrationRequest) Validate() error {
	if err := validateName("Firstname", r.Firstname); err != nil {
		return err
	}
	if err := validateName("Lastname", r.Lastname); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if err := validatePassword(r.Password); err != nil {
		return err
	}
	return validateSkills(r.Skills)
}

// LoginRequest is the payload for authenticating a talent.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validatePassword(r.Password)
}

// EditRequest is the payload for a partial profile update. Absent
// fields stay unchanged; skills are replaced wholesale.
type EditRequest struct {
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Skills    []string `json:"skills"`
	Birthday  *string  `json:"birthday"`
	Location  *string  `json:"location"`
	AboutMe   *string  `json:"about_me"`
}

func (r *EditRequest) Validate() error {
	if err := validateName("Firstname", r.Firstname); err != nil {
		return err
	}
	if err := validateName("Lastname", r.Lastname); err != nil {
		return err
	}
	if err := validateSkills(r.Skills); err != nil {
		return err
	}
	if r.Birthday != nil {
		if _, err := time.Parse(birthdayFormat, *r.Birthday); err != nil {
			return invalid("Birthday must use the %s format", birthdayFormat)
		}
	}
	if r.Location != nil && len(*r.Location) > 255 {
		return invalid("Location should be less than 255 characters")
	}
	if r.AboutMe != nil && len(*r.AboutMe) > 255 {
		return invalid("About me should be less than 255 characters")
	}
	return nil
}

// ParsedBirthday returns the birthday as a date, or nil when absent.
// Call Validate first.
func (r *EditRequest) ParsedBirthday() *time.Time {
	if r.Birthday == nil {
		return nil
	}
	parsed, err := time.Parse(birthdayFormat, *r.Birthday)
	if err != nil {
		return nil
	}
	return &parsed
}

func validateName(field, value string) error {
	if value == "" {
		return invalid("%s should not be blank", field)
	}
	if len(value) > 15 {
		return invalid("%s must be less than 15 characters", field)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("Email should not be blank")
	}
	if len(email) > 100 {
		return invalid("Email must be less than 100 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("Email should be valid")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return invalid("Password should not be blank")
	}
	if len(password) < 6 {
		return invalid("Password must be at least 6 characters long")
	}
	if len(password) > 32 {
		return invalid("Password must be less than 32 characters")
	}
	return nil
}

func validateSkills(skills []string) error {
	for _, skill := range skills {
		if skill == "" {
			return invalid("Name of skill should not be blank")
		}
		if len(skill) > 20 {
			return invalid("Name of skill must be less than 20 characters")
		}
	}
	return nil
}
