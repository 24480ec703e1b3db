// File: services/onboarding/validation.go
package onboarding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

const (
	minNameLen        = 3
	maxNameLen        = 60
	minDescriptionLen = 10
	maxDescriptionLen = 250
	minDuration       = 15 // minutes
	maxDuration       = 480
	maxPrice          = 10000
	minPasswordLen    = 8
)

// Pricing models a provider can pick during onboarding.
const (
	PricingFixed    = "fixed"
	PricingHourly   = "hourly"
	PricingPackage  = "package"
	PricingDonation = "donation"
)

// categoryMinimums are advisory price floors per category. They produce
// warnings, never hard blocks, and the donation model bypasses them entirely.
var categoryMinimums = map[string]float64{
	"therapy":    75,
	"consulting": 50,
}

// ValidateWelcome gates step 1: the provider names themselves and picks a category.
func ValidateWelcome(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	if form.String("providerName") == "" {
		errs["providerName"] = "Tell us your name or business name"
	}
	if form.String("category") == "" {
		errs["category"] = "Pick a category to get started"
	}
	return errs
}

// ValidateServiceDetails gates step 2. Same name/description rules as the
// service-creation flow, but the duration window is [15,480] minutes here.
func ValidateServiceDetails(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	details := form.Section("serviceDetails")
	if details == nil {
		errs["serviceDetails"] = "Describe the service you offer"
		return errs
	}

	// Bounds are in characters, so multibyte names count by rune.
	name := details.String("name")
	switch {
	case name == "":
		errs["name"] = "Service name is required"
	case utf8.RuneCountInString(name) < minNameLen:
		errs["name"] = fmt.Sprintf("Service name must be at least %d characters", minNameLen)
	case utf8.RuneCountInString(name) > maxNameLen:
		errs["name"] = fmt.Sprintf("Service name must be at most %d characters", maxNameLen)
	}

	desc := details.String("description")
	switch {
	case desc == "":
		errs["description"] = "Description is required"
	case utf8.RuneCountInString(desc) < minDescriptionLen:
		errs["description"] = fmt.Sprintf("Description must be at least %d characters", minDescriptionLen)
	case utf8.RuneCountInString(desc) > maxDescriptionLen:
		errs["description"] = fmt.Sprintf("Description must be at most %d characters", maxDescriptionLen)
	}

	if d, ok := details.Int("duration"); !ok || d < minDuration || d > maxDuration {
		errs["duration"] = fmt.Sprintf("Duration must be between %d and %d minutes", minDuration, maxDuration)
	}
	return errs
}

// ValidateAvailability gates step 3. A start at or past the end is allowed
// here; the generator simply yields nothing for such a day.
func ValidateAvailability(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	var rule models.AvailabilityRule
	if err := form.Decode("availability", &rule); err != nil {
		errs["availability"] = "Set your weekly availability"
		return errs
	}

	if len(rule.SelectedDays) == 0 {
		errs["selectedDays"] = "Select at least one day of the week"
	}
	if _, err := ParseClock(rule.StartTime); err != nil {
		errs["startTime"] = "Enter a start time as HH:MM"
	}
	if _, err := ParseClock(rule.EndTime); err != nil {
		errs["endTime"] = "Enter an end time as HH:MM"
	}
	if rule.NumberOfWeeks < 1 {
		errs["numberOfWeeks"] = "Schedule at least one week ahead"
	}
	if rule.SlotDuration < 15 {
		errs["slotDuration"] = "Slots must be at least 15 minutes long"
	}
	return errs
}

// ValidatePricing gates step 5. Donation pricing accepts any amount; every
// other model needs a price in (0, 10000]. Category floors are advisory and
// reported separately by PricingWarnings.
func ValidatePricing(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	model := form.String("pricingModel")
	if model == "" {
		errs["pricingModel"] = "Choose how you want to charge"
		return errs
	}
	if model == PricingDonation {
		return errs
	}

	price, ok := form.Float("price")
	if !ok || price <= 0 || price > maxPrice {
		errs["price"] = fmt.Sprintf("Enter a price between 0 and %d", maxPrice)
	}
	return errs
}

// PricingWarnings reports advisory messages that never block the transition.
// The donation model bypasses the category floor check entirely.
func PricingWarnings(form wizard.FormData) wizard.ErrorMap {
	warnings := wizard.ErrorMap{}
	if form.String("pricingModel") == PricingDonation {
		return warnings
	}
	price, ok := form.Float("price")
	if !ok {
		return warnings
	}
	category := strings.ToLower(form.String("category"))
	if minimum, found := categoryMinimums[category]; found && price < minimum {
		warnings["price"] = fmt.Sprintf("Most %s providers charge at least $%.0f", category, minimum)
	}
	return warnings
}

// ValidatePaymentSetup gates step 6: a payout method is required once the
// provider opts into collecting payment.
func ValidatePaymentSetup(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	if !form.Bool("collectPayment") {
		return errs
	}
	switch form.String("paymentMethod") {
	case "stripe", "bank", "paypal":
	default:
		errs["paymentMethod"] = "Choose how you want to get paid"
	}
	return errs
}

// ValidateAccount gates step 8.
func ValidateAccount(form wizard.FormData) wizard.ErrorMap {
	errs := wizard.ErrorMap{}
	email := form.String("email")
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		errs["email"] = "Enter a valid email address"
	}
	if password, _ := form["password"].(string); len(password) < minPasswordLen {
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	}
	return errs
}

// ValidateField is the cheap single-field check for the onboarding flow.
func ValidateField(name string, value any) string {
	switch name {
	case "providerName":
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return "Tell us your name or business name"
		}
	case "name":
		s, _ := value.(string)
		n := utf8.RuneCountInString(strings.TrimSpace(s))
		if n < minNameLen || n > maxNameLen {
			return fmt.Sprintf("Service name must be %d to %d characters", minNameLen, maxNameLen)
		}
	case "description":
		s, _ := value.(string)
		n := utf8.RuneCountInString(strings.TrimSpace(s))
		if n < minDescriptionLen || n > maxDescriptionLen {
			return fmt.Sprintf("Description must be %d to %d characters", minDescriptionLen, maxDescriptionLen)
		}
	case "duration":
		if d, ok := toInt(value); !ok || d < minDuration || d > maxDuration {
			return fmt.Sprintf("Duration must be between %d and %d minutes", minDuration, maxDuration)
		}
	case "price":
		if p, ok := toFloat(value); !ok || p < 0 || p > maxPrice {
			return fmt.Sprintf("Enter a price between 0 and %d", maxPrice)
		}
	case "email":
		s, _ := value.(string)
		if !strings.Contains(s, "@") || !strings.Contains(s, ".") {
			return "Enter a valid email address"
		}
	case "password":
		if s, _ := value.(string); len(s) < minPasswordLen {
			return fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
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

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
