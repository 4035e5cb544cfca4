package user

import (
	"time"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

const maxTimezoneLen = 64

// UpdateSettingsInput is a partial settings update. Nil fields stay as they are.
type UpdateSettingsInput struct {
	Timezone     *string
	DefaultStyle *domain.InterpretationStyle
}

func (i UpdateSettingsInput) empty() bool {
	return i.Timezone == nil && i.DefaultStyle == nil
}

func (i UpdateSettingsInput) Validate() error {
	if i.empty() {
		return domain.NewValidationError("settings", "nothing to update")
	}

	var errs []domain.FieldError
	if i.Timezone != nil {
		if msg := checkTimezone(*i.Timezone); msg != "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: msg})
		}
	}
	if i.DefaultStyle != nil && !i.DefaultStyle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "default_style", Message: "unknown style"})
	}

	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(errs)
}

// checkTimezone returns a problem description, or "" for a storable IANA name.
// "Local" is rejected: it means the server's zone, not the user's.
func checkTimezone(tz string) string {
	switch {
	case tz == "":
		return "cannot be empty"
	case len(tz) > maxTimezoneLen:
		return "too long"
	case tz == "Local":
		return "invalid IANA timezone"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "invalid IANA timezone"
	}
	return ""
}
