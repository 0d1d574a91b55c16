package measurements

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GenderOptions are the accepted gender values.
var GenderOptions = []string{"female", "male", "other"}

// ParseIntake validates a raw intake form.
func ParseIntake(form IntakeForm) (NewMeasurement, error) {
	email := strings.TrimSpace(form.Email)
	if email == "" {
		return NewMeasurement{}, &ValidationError{Field: "email", Message: "Email is required."}
	}
	if err := validate.Var(email, "email"); err != nil {
		return NewMeasurement{}, &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}

	height, ok := positive(form.HeightCM)
	if !ok {
		return NewMeasurement{}, &ValidationError{Field: "height_cm", Message: "Height must be greater than 0."}
	}

	out := NewMeasurement{
		Email:    email,
		HeightCM: height,
		ChestCM:  optional(form.ChestCM),
		WaistCM:  optional(form.WaistCM),
		HipsCM:   optional(form.HipsCM),
		ArmCM:    optional(form.ArmCM),
		LegCM:    optional(form.LegCM),
		BicepCM:  optional(form.BicepCM),
		ThighCM:  optional(form.ThighCM),
	}

	gender := strings.ToLower(strings.TrimSpace(form.Gender))
	if gender != "" {
		if !isGender(gender) {
			return NewMeasurement{}, &ValidationError{Field: "gender", Message: "Gender must be one of female, male, other."}
		}
		out.Gender = &gender
	}
	return out, nil
}

func isGender(v string) bool {
	for _, opt := range GenderOptions {
		if v == opt {
			return true
		}
	}
	return false
}

func positive(raw FormValue) (float64, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

// optional never yields zero; anything not strictly positive is absent.
func optional(raw FormValue) *float64 {
	f, ok := positive(raw)
	if !ok {
		return nil
	}
	return &f
}
