package measurements

import (
	"bytes"
	"encoding/json"
	"time"
)

// MannequinStatus records whether a mannequin asset exists for a measurement.
type MannequinStatus string

const (
	StatusAbsent    MannequinStatus = "absent"
	StatusGenerated MannequinStatus = "generated"
)

// Measurement is one body-measurement intake record.
type Measurement struct {
	ID              string
	Email           string
	Gender          *string
	HeightCM        float64
	ChestCM         *float64
	WaistCM         *float64
	HipsCM          *float64
	ArmCM           *float64
	LegCM           *float64
	BicepCM         *float64
	ThighCM         *float64
	MannequinStatus MannequinStatus
	MannequinURL    *string
	CreatedAt       time.Time
	LastGeneratedAt *time.Time
}

// Ready reports whether the mannequin asset can be shown.
func (m Measurement) Ready() bool {
	return m.MannequinStatus == StatusGenerated && m.MannequinURL != nil && *m.MannequinURL != ""
}

// NewMeasurement is a validated intake ready to insert.
type NewMeasurement struct {
	Email    string
	Gender   *string
	HeightCM float64
	ChestCM  *float64
	WaistCM  *float64
	HipsCM   *float64
	ArmCM    *float64
	LegCM    *float64
	BicepCM  *float64
	ThighCM  *float64
}

// IntakeForm carries raw form values as submitted.
type IntakeForm struct {
	Email    string    `json:"email" form:"email"`
	Gender   string    `json:"gender" form:"gender"`
	HeightCM FormValue `json:"height_cm" form:"height_cm"`
	ChestCM  FormValue `json:"chest_cm" form:"chest_cm"`
	WaistCM  FormValue `json:"waist_cm" form:"waist_cm"`
	HipsCM   FormValue `json:"hips_cm" form:"hips_cm"`
	ArmCM    FormValue `json:"arm_cm" form:"arm_cm"`
	LegCM    FormValue `json:"leg_cm" form:"leg_cm"`
	BicepCM  FormValue `json:"bicep_cm" form:"bicep_cm"`
	ThighCM  FormValue `json:"thigh_cm" form:"thigh_cm"`
}

// FormValue accepts a JSON string, number, or null.
type FormValue string

// UnmarshalJSON keeps the raw text of numbers and strings.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}
