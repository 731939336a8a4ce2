package validator_test

import (
	"strings"
	"testing"

	"courtbook/shared/validator"

	"github.com/stretchr/testify/assert"
)

type selectionRequest struct {
	CourtID  string   `json:"court_id"  validate:"required"`
	SlotKeys []string `json:"slot_keys" validate:"required,min=1,dive,slotkey"`
	Time     string   `json:"time"      validate:"omitempty,clock"`
	Date     string   `json:"date"      validate:"omitempty,day"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        selectionRequest
		expectError string
	}{
		{
			name: "valid request",
			data: selectionRequest{CourtID: "c-1", SlotKeys: []string{"2025-07-10-18:00"}, Time: "18:00", Date: "2025-07-10"},
		},
		{
			name:        "missing court",
			data:        selectionRequest{SlotKeys: []string{"2025-07-10-18:00"}},
			expectError: "court_id is required",
		},
		{
			name:        "empty slot list",
			data:        selectionRequest{CourtID: "c-1", SlotKeys: []string{}},
			expectError: "slot_keys must contain at least 1 items",
		},
		{
			name:        "malformed slot key",
			data:        selectionRequest{CourtID: "c-1", SlotKeys: []string{"2025-07-10 18:00"}},
			expectError: "slot_keys[0] must be a slot key formatted as YYYY-MM-DD-HH:MM",
		},
		{
			name:        "malformed clock",
			data:        selectionRequest{CourtID: "c-1", SlotKeys: []string{"2025-07-10-18:00"}, Time: "25:00"},
			expectError: "must be a time formatted as HH:MM",
		},
		{
			name:        "malformed day",
			data:        selectionRequest{CourtID: "c-1", SlotKeys: []string{"2025-07-10-18:00"}, Date: "10/07/2025"},
			expectError: "must be a date formatted as YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-07-10-06:00", "slotkey"))
	assert.Error(t, validator.ValidateVar("2025-07-10", "slotkey"))
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed cancelled"))
	assert.Error(t, validator.ValidateVar("approved", "oneof=pending confirmed cancelled"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid body", body: `{"court_id":"c-1","slot_keys":["2025-07-10-10:00","2025-07-10-11:00"]}`},
		{name: "malformed json", body: `{"court_id":`, expectError: true},
		{name: "empty body object", body: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data selectionRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
