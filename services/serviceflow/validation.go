// File: services/serviceflow/validation.go
package serviceflow

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

// Bounds shared by the validators below.
const (
	minNameLen        = 3
	maxNameLen        = 60
	minDescriptionLen = 10
	maxDescriptionLen = 250
	minDuration       = 5 // minutes
	maxPrice          = 10000
	maxBufferTime     = 120 // minutes
	maxAdvanceDays    = 365
)

func checkServiceName(name string) string {
	name = strings.TrimSpace(name)
	// Bounds are in characters, so multibyte names count by rune.
	switch {
	case name == "":
		return "Service name is required"
	case utf8.RuneCountInString(name) < minNameLen:
		return fmt.Sprintf("Service name must be at least %d characters", minNameLen)
	case utf8.RuneCountInString(name) > maxNameLen:
		return fmt.Sprintf("Service name must be at most %d characters", maxNameLen)
	}
	return ""
}

func checkDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	switch {
	case desc == "":
		return "Description is required"
	case utf8.RuneCountInString(desc) < minDescriptionLen:
		return fmt.Sprintf("Description must be at least %d characters", minDescriptionLen)
	case utf8.RuneCountInString(desc) > maxDescriptionLen:
		return fmt.Sprintf("Description must be at most %d characters", maxDescriptionLen)
	}
	return ""
}

func checkDuration(duration int, ok bool) string {
	if !ok || duration < minDuration {
		return fmt.Sprintf("Duration must be at least %d minutes", minDuration)
	}
	return ""
}

// ValidateBasicInfo is the authoritative step-1 check.
func ValidateBasicInfo(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	if msg := checkServiceName(form.String("serviceName")); msg != "" {
		errs["serviceName"] = msg
	}
	if msg := checkDescription(form.String("description")); msg != "" {
		errs["description"] = msg
	}
	if msg := checkDuration(form.Int("duration")); msg != "" {
		errs["duration"] = msg
	}
	return errs
}

// ValidateMeetingTypes requires at least one enabled type, and a price in
// (0, 10000] on every enabled type when payment collection is on.
func ValidateMeetingTypes(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}

	var types []models.MeetingTypeConfig
	if err := form.Decode("meetingTypes", &types); err != nil {
		errs["meetingTypes"] = "Select at least one meeting type"
		return errs
	}

	enabled := 0
	for _, mt := range types {
		if mt.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		errs["meetingTypes"] = "Select at least one meeting type"
		return errs
	}

	if form.Bool("collectPayment") {
		for _, mt := range types {
			if !mt.Enabled {
				continue
			}
			price, err := strconv.ParseFloat(strings.TrimSpace(mt.Price), 64)
			if err != nil || price <= 0 || price > maxPrice {
				errs["price_"+mt.ID] = fmt.Sprintf("Enter a price between 0 and %d for %s meetings", maxPrice, mt.ID)
			}
		}
	}
	return errs
}

// ValidateAdditionalSettings checks the buffer window, the advance-booking
// window, and every intake question.
func ValidateAdditionalSettings(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	settings := form.Section("additionalSettings")
	if settings == nil {
		errs["additionalSettings"] = "Additional settings are incomplete"
		return errs
	}

	if buffer, ok := settings.Int("bufferTime"); !ok || buffer < 0 || buffer > maxBufferTime {
		errs["bufferTime"] = fmt.Sprintf("Buffer time must be between 0 and %d minutes", maxBufferTime)
	}
	if advance, ok := settings.Int("maxAdvanceBooking"); !ok || advance < 1 || advance > maxAdvanceDays {
		errs["maxAdvanceBooking"] = fmt.Sprintf("Advance booking window must be between 1 and %d days", maxAdvanceDays)
	}

	var questions []models.ServiceQuestion
	if settings["questions"] != nil {
		if err := settings.Decode("questions", &questions); err != nil {
			errs["questions"] = "One or more questions are malformed"
			return errs
		}
	}
	for _, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			errs["question_"+q.ID] = "Question text is required"
			continue
		}
		if (q.Type == models.QuestionTypeSelect || q.Type == models.QuestionTypeCheckbox) && len(q.Options) == 0 {
			errs["question_"+q.ID] = "Add at least one option"
		}
	}
	return errs
}

// ValidateField is the cheap single-field check rerun per keystroke. Cross-field
// rules (meeting types, questions) only run at the step transition.
func ValidateField(name string, value any) string {
	switch name {
	case "serviceName":
		s, _ := value.(string)
		return checkServiceName(s)
	case "description":
		s, _ := value.(string)
		return checkDescription(s)
	case "duration":
		d, ok := toInt(value)
		return checkDuration(d, ok)
	case "bufferTime":
		if d, ok := toInt(value); !ok || d < 0 || d > maxBufferTime {
			return fmt.Sprintf("Buffer time must be between 0 and %d minutes", maxBufferTime)
		}
	case "maxAdvanceBooking":
		if d, ok := toInt(value); !ok || d < 1 || d > maxAdvanceDays {
			return fmt.Sprintf("Advance booking window must be between 1 and %d days", maxAdvanceDays)
		}
	}
	return ""
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
