package serviceflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

func validBasicInfo() wizard.FormData {
	return wizard.FormData{
		"serviceName": "Deep Tissue Massage",
		"description": "A very relaxing full-hour massage session.",
		"duration":    60,
	}
}

func TestValidateBasicInfo(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(wizard.FormData)
		wantField string
	}{
		{"valid form passes", func(f wizard.FormData) {}, ""},
		{"name too short", func(f wizard.FormData) { f["serviceName"] = "Hi" }, "serviceName"},
		{"name missing", func(f wizard.FormData) { f["serviceName"] = "   " }, "serviceName"},
		{"description too short", func(f wizard.FormData) { f["description"] = "short" }, "description"},
		{"duration below minimum", func(f wizard.FormData) { f["duration"] = 4 }, "duration"},
		{"duration missing", func(f wizard.FormData) { delete(f, "duration") }, "duration"},
		// Bounds count characters, not bytes: 60 accented runes are 120 bytes
		// and must still pass.
		{"60-rune accented name passes", func(f wizard.FormData) { f["serviceName"] = strings.Repeat("é", 60) }, ""},
		{"61-rune accented name blocks", func(f wizard.FormData) { f["serviceName"] = strings.Repeat("é", 61) }, "serviceName"},
		{"two-rune accented name blocks", func(f wizard.FormData) { f["serviceName"] = "éé" }, "serviceName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBasicInfo()
			tt.mutate(form)
			errs := ValidateBasicInfo(form)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func meetingTypesForm(enabled bool, price string, collect bool) wizard.FormData {
	return wizard.FormData{
		"collectPayment": collect,
		"meetingTypes": []any{
			map[string]any{"id": "video", "enabled": enabled, "price": price},
			map[string]any{"id": "phone", "enabled": false, "price": ""},
		},
	}
}

func TestValidateMeetingTypes(t *testing.T) {
	t.Run("no enabled types blocks", func(t *testing.T) {
		errs := ValidateMeetingTypes(meetingTypesForm(false, "", false))
		assert.Contains(t, errs, "meetingTypes")
	})

	t.Run("enabled type without payment passes", func(t *testing.T) {
		errs := ValidateMeetingTypes(meetingTypesForm(true, "", false))
		assert.Empty(t, errs)
	})

	t.Run("zero price with collectPayment blocks", func(t *testing.T) {
		errs := ValidateMeetingTypes(meetingTypesForm(true, "0", true))
		assert.Contains(t, errs, "price_video")
	})

	t.Run("valid price with collectPayment passes", func(t *testing.T) {
		errs := ValidateMeetingTypes(meetingTypesForm(true, "25", true))
		assert.Empty(t, errs)
	})

	t.Run("price over ceiling blocks", func(t *testing.T) {
		errs := ValidateMeetingTypes(meetingTypesForm(true, "10001", true))
		assert.Contains(t, errs, "price_video")
	})

	t.Run("disabled types never need prices", func(t *testing.T) {
		errs := ValidateMeetingTypes(meetingTypesForm(true, "25", true))
		assert.NotContains(t, errs, "price_phone")
	})

	t.Run("malformed meeting types block", func(t *testing.T) {
		errs := ValidateMeetingTypes(wizard.FormData{"meetingTypes": "garbage"})
		assert.Contains(t, errs, "meetingTypes")
	})
}

func TestValidateAdditionalSettings(t *testing.T) {
	base := func() wizard.FormData {
		return wizard.FormData{
			"additionalSettings": map[string]any{
				"bufferTime":        15,
				"maxAdvanceBooking": 30,
				"questions": []any{
					map[string]any{"id": "q1", "text": "Any injuries?", "type": "text"},
				},
			},
		}
	}

	t.Run("valid settings pass", func(t *testing.T) {
		assert.Empty(t, ValidateAdditionalSettings(base()))
	})

	t.Run("buffer out of range blocks", func(t *testing.T) {
		form := base()
		form.Section("additionalSettings")["bufferTime"] = 121
		assert.Contains(t, ValidateAdditionalSettings(form), "bufferTime")
	})

	t.Run("advance window out of range blocks", func(t *testing.T) {
		form := base()
		form.Section("additionalSettings")["maxAdvanceBooking"] = 0
		assert.Contains(t, ValidateAdditionalSettings(form), "maxAdvanceBooking")
	})

	t.Run("question without text blocks", func(t *testing.T) {
		form := base()
		form.Section("additionalSettings")["questions"] = []any{
			map[string]any{"id": "q2", "text": "  ", "type": "text"},
		}
		assert.Contains(t, ValidateAdditionalSettings(form), "question_q2")
	})

	t.Run("select question needs options", func(t *testing.T) {
		form := base()
		form.Section("additionalSettings")["questions"] = []any{
			map[string]any{"id": "q3", "text": "Pick one", "type": "select"},
		}
		assert.Contains(t, ValidateAdditionalSettings(form), "question_q3")
	})
}

func TestValidateFieldPerKeystroke(t *testing.T) {
	assert.NotEmpty(t, ValidateField("serviceName", "Hi"))
	assert.Empty(t, ValidateField("serviceName", "Deep Tissue"))
	assert.NotEmpty(t, ValidateField("duration", 2))
	assert.Empty(t, ValidateField("duration", float64(30)), "JSON numbers arrive as float64")
	assert.NotEmpty(t, ValidateField("bufferTime", 200))
	assert.Empty(t, ValidateField("unknownField", "anything"))
}

func TestServiceFromForm(t *testing.T) {
	form := validBasicInfo()
	form.Update(meetingTypesForm(true, "25", true))
	form.Update(wizard.FormData{
		"providerId": "prov-1",
		"additionalSettings": map[string]any{
			"bufferTime":        10,
			"maxAdvanceBooking": 60,
		},
	})

	svc, err := ServiceFromForm(form)
	require.NoError(t, err)
	assert.Equal(t, "Deep Tissue Massage", svc.Name)
	assert.Equal(t, 60, svc.Duration)
	assert.Equal(t, 10, svc.AdditionalSettings.BufferTime)
	assert.True(t, svc.CollectPayment)
	assert.Equal(t, 25.0, svc.Price, "price falls back to the first enabled meeting type")

	_, err = ServiceFromForm(wizard.FormData{"meetingTypes": "garbage"})
	assert.Error(t, err)
}
