package measurements

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntakeRejections(t *testing.T) {
	tests := []struct {
		name  string
		form  IntakeForm
		field string
		msg   string
	}{
		{name: "missing email", form: IntakeForm{Email: "   ", HeightCM: "170"}, field: "email", msg: "Email is required."},
		{name: "malformed email", form: IntakeForm{Email: "not-an-email", HeightCM: "170"}, field: "email", msg: "Please enter a valid email address."},
		{name: "missing height", form: IntakeForm{Email: "a@b.co"}, field: "height_cm", msg: "Height must be greater than 0."},
		{name: "zero height", form: IntakeForm{Email: "a@b.co", HeightCM: "0"}, field: "height_cm", msg: "Height must be greater than 0."},
		{name: "negative height", form: IntakeForm{Email: "a@b.co", HeightCM: "-5"}, field: "height_cm", msg: "Height must be greater than 0."},
		{name: "nan height", form: IntakeForm{Email: "a@b.co", HeightCM: "NaN"}, field: "height_cm", msg: "Height must be greater than 0."},
		{name: "unknown gender", form: IntakeForm{Email: "a@b.co", HeightCM: "170", Gender: "robot"}, field: "gender"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntake(tt.form)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, verr.Message)
			}
		})
	}
}

func TestParseIntakeOptionalMeasurementsNeverZero(t *testing.T) {
	got, err := ParseIntake(IntakeForm{
		Email:    "  shopper@example.com ",
		Gender:   "Female",
		HeightCM: "168.5",
		ChestCM:  "",
		WaistCM:  "0",
		HipsCM:   "-3",
		ArmCM:    "abc",
		LegCM:    "NaN",
		BicepCM:  "31",
		ThighCM:  " 55.5 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "shopper@example.com", got.Email)
	require.NotNil(t, got.Gender)
	assert.Equal(t, "female", *got.Gender)
	assert.Equal(t, 168.5, got.HeightCM)
	assert.Nil(t, got.ChestCM)
	assert.Nil(t, got.WaistCM)
	assert.Nil(t, got.HipsCM)
	assert.Nil(t, got.ArmCM)
	assert.Nil(t, got.LegCM)
	require.NotNil(t, got.BicepCM)
	assert.Equal(t, 31.0, *got.BicepCM)
	require.NotNil(t, got.ThighCM)
	assert.Equal(t, 55.5, *got.ThighCM)
}

func TestParseIntakeBlankGenderIsAbsent(t *testing.T) {
	got, err := ParseIntake(IntakeForm{Email: "a@b.co", HeightCM: "170"})
	require.NoError(t, err)
	assert.Nil(t, got.Gender)
}

func TestFormValueAcceptsNumbersStringsAndNull(t *testing.T) {
	var form IntakeForm
	raw := `{"email":"a@b.co","height_cm":172,"chest_cm":"90.5","waist_cm":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &form))

	assert.Equal(t, FormValue("172"), form.HeightCM)
	assert.Equal(t, FormValue("90.5"), form.ChestCM)
	assert.Equal(t, FormValue(""), form.WaistCM)
}
