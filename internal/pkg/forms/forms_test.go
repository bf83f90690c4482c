package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactFormValidate_Accepted(t *testing.T) {
	form := ContactForm{
		Name:    "Alice Smith",
		Email:   "alice@example.com",
		Message: "Please contact me about scaling.",
	}

	errs := form.Validate()
	assert.Empty(t, errs)
}

func TestContactFormValidate_MessageTooShort(t *testing.T) {
	form := ContactForm{Name: "Al", Email: "a@b.com", Message: "short"}

	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "message")
}

func TestContactFormValidate_CollectsAllErrors(t *testing.T) {
	form := ContactForm{}

	errs := form.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")
}

func TestContactFormValidate_BadEmail(t *testing.T) {
	form := ContactForm{
		Name:    "Alice Smith",
		Email:   "not-an-email",
		Message: "This message is long enough.",
	}

	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "email")
}

func TestAppointmentFormValidate_Accepted(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		PreferredDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	assert.Empty(t, errs)
}

func TestAppointmentFormValidate_DateToday(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		PreferredDate: time.Now().Format("2006-01-02"),
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	assert.Empty(t, errs)
}

func TestAppointmentFormValidate_DateInPast(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		PreferredDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	require.Contains(t, errs, "preferredDate")
	assert.Contains(t, errs["preferredDate"], "past")
}

func TestAppointmentFormValidate_DateUnparseable(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		PreferredDate: "next tuesday",
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	assert.Contains(t, errs, "preferredDate")
}

func TestAppointmentFormValidate_WebsiteNormalized(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		Website:       "example.com",
		PreferredDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	require.Empty(t, errs)
	assert.Equal(t, "https://example.com", form.Website)
}

func TestAppointmentFormValidate_WebsiteSchemeKept(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		Website:       "http://example.com/path",
		PreferredDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	require.Empty(t, errs)
	assert.Equal(t, "http://example.com/path", form.Website)
}

func TestAppointmentFormValidate_WebsiteInvalid(t *testing.T) {
	for _, website := range []string{"not a url", "ftp://example.com", "https://"} {
		form := AppointmentForm{
			Name:          "Alice Smith",
			Email:         "alice@example.com",
			Website:       website,
			PreferredDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			PreferredTime: "9:00 AM",
		}

		errs := form.Validate()
		assert.Contains(t, errs, "website", "website %q should be rejected", website)
	}
}

func TestAppointmentFormValidate_WebsiteOptional(t *testing.T) {
	form := AppointmentForm{
		Name:          "Alice Smith",
		Email:         "alice@example.com",
		PreferredDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		PreferredTime: "9:00 AM",
	}

	errs := form.Validate()
	assert.Empty(t, errs)
	assert.Empty(t, form.Website)
}

func TestContactFormToModel(t *testing.T) {
	form := ContactForm{Name: "Alice", Email: "alice@example.com", Message: "A long enough message."}
	m := form.ToModel()
	assert.Equal(t, form.Name, m.Name)
	assert.Equal(t, form.Email, m.Email)
	assert.Equal(t, form.Message, m.Message)
}
