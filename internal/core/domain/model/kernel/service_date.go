package kernel

import (
	"time"

	"haulaway/internal/pkg/errs"
)

// serviceDateLayout is the wire and storage format for pickup days.
const serviceDateLayout = "2006-01-02"

// ErrServiceDateIsNotConstructed indicates a zero-value ServiceDate that was not
// created through NewServiceDate or ServiceDateFromString.
var ErrServiceDateIsNotConstructed = errs.NewValueIsRequiredError(
	"ServiceDate must be created via NewServiceDate or ServiceDateFromString",
)

// ServiceDate is an immutable value object identifying the calendar day a pickup
// is scheduled for. Route orders and vehicle assignments are scoped to a
// (driver, ServiceDate) pair, so the day boundary is a domain concept rather
// than a timestamp detail. Time-of-day and timezone are deliberately dropped.
type ServiceDate struct {
	day time.Time
}

// NewServiceDate creates a ServiceDate from a time.Time, truncating to the day.
func NewServiceDate(t time.Time) ServiceDate {
	y, m, d := t.Date()
	return ServiceDate{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ServiceDateFromString parses a "YYYY-MM-DD" string.
func ServiceDateFromString(s string) (ServiceDate, error) {
	t, err := time.Parse(serviceDateLayout, s)
	if err != nil {
		return ServiceDate{}, errs.NewValueIsInvalidErrorWithCause("serviceDate", err)
	}
	return NewServiceDate(t), nil
}

// String returns the "YYYY-MM-DD" representation.
func (d ServiceDate) String() string {
	return d.day.Format(serviceDateLayout)
}

// Time returns the day at midnight UTC for persistence adapters.
func (d ServiceDate) Time() time.Time {
	return d.day
}

// IsEqual reports whether both values name the same calendar day.
func (d ServiceDate) IsEqual(other ServiceDate) bool {
	return d.day.Equal(other.day)
}

// Validate returns ErrServiceDateIsNotConstructed for the zero value.
func (d ServiceDate) Validate() error {
	if d.day.IsZero() {
		return ErrServiceDateIsNotConstructed
	}
	return nil
}
