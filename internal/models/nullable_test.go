package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialposts/internal/models"
)

func TestNullableString_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		set   bool
		value *string
	}{
		{name: "absent", body: `{}`, set: false},
		{name: "null", body: `{"bio":null}`, set: true},
		{name: "empty", body: `{"bio":""}`, set: true, value: strPtr("")},
		{name: "value", body: `{"bio":"hi"}`, set: true, value: strPtr("hi")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.UpdateProfileRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.set, req.Bio.Set)
			assert.Equal(t, tt.value, req.Bio.Value)
		})
	}
}

func TestNullableString_RejectsNonString(t *testing.T) {
	var req models.UpdateProfileRequest
	assert.Error(t, json.Unmarshal([]byte(`{"avatar":12}`), &req))
}

func TestNullableString_ColumnValue(t *testing.T) {
	assert.Nil(t, models.SetNull().ColumnValue())
	assert.Equal(t, "x", models.SetString("x").ColumnValue())
}

func strPtr(s string) *string { return &s }
