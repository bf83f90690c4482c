package forms

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vantascaling/website/app/models"
)

// dateLayout matches the value of an HTML date input.
const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names from json tags so errors line up with the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ContactForm carries a contact form submission.
type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// AppointmentForm carries a strategy call scheduling request.
type AppointmentForm struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Website       string `json:"website"`
	PreferredDate string `json:"preferredDate" validate:"required"`
	PreferredTime string `json:"preferredTime" validate:"required"`
	Notes         string `json:"notes"`
}

// Validate checks the contact form and returns all field errors at once.
// An empty map means the form is accepted.
func (f *ContactForm) Validate() map[string]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)

	return collectErrors(validate.Struct(f))
}

// Validate checks the appointment form, normalizing the optional website
// field, and returns all field errors at once.
func (f *AppointmentForm) Validate() map[string]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Website = strings.TrimSpace(f.Website)
	f.PreferredDate = strings.TrimSpace(f.PreferredDate)
	f.PreferredTime = strings.TrimSpace(f.PreferredTime)
	f.Notes = strings.TrimSpace(f.Notes)

	errs := collectErrors(validate.Struct(f))

	if f.Website != "" {
		normalized, ok := normalizeWebsite(f.Website)
		if ok {
			f.Website = normalized
		} else {
			errs["website"] = "website must be a valid http(s) URL"
		}
	}

	if f.PreferredDate != "" {
		if _, exists := errs["preferredDate"]; !exists {
			if msg := validateFutureDate(f.PreferredDate); msg != "" {
				errs["preferredDate"] = msg
			}
		}
	}

	return errs
}

// ToModel converts an accepted contact form into its storage model.
func (f *ContactForm) ToModel() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}
}

// ToModel converts an accepted appointment form into its storage model.
func (f *AppointmentForm) ToModel() *models.Appointment {
	return &models.Appointment{
		Name:          f.Name,
		Email:         f.Email,
		Website:       f.Website,
		PreferredDate: f.PreferredDate,
		PreferredTime: f.PreferredTime,
		Notes:         f.Notes,
	}
}

// collectErrors flattens validator output into field -> message. A nil error
// yields an empty, non-nil map so callers can add custom-rule errors to it.
func collectErrors(err error) map[string]string {
	errs := make(map[string]string)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "invalid submission"
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return "email must be a valid address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// normalizeWebsite prefixes https:// when no scheme is present and accepts
// the value only if the result parses as an http(s) URL with a host.
func normalizeWebsite(raw string) (string, bool) {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return u.String(), true
}

// validateFutureDate returns an error message unless the value parses as a
// calendar date on or after today. Time of day is ignored for the comparison.
func validateFutureDate(value string) string {
	d, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return "preferredDate must be a date in YYYY-MM-DD format"
	}
	today := time.Now().In(time.Local)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if d.Before(today) {
		return "preferredDate must not be in the past"
	}
	return ""
}
