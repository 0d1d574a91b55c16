package surveys

import (
	"strconv"
	"strings"
)

// Visible reports whether a question is shown for the given answers.
func Visible(q Question, a Answers) bool {
	if q.ShownWhenARUsed {
		return strings.TrimSpace(a.ARUsed) == "yes"
	}
	return true
}

// Validate checks that every visible question is answered with an allowed
// option. Free-text questions are optional.
func Validate(a Answers) error {
	for _, q := range Questions {
		if !Visible(q, a) {
			continue
		}
		switch q.Kind {
		case KindTextarea:
			continue
		case KindCheckbox:
			if err := validateFitIssues(q, a); err != nil {
				return err
			}
		default:
			v := strings.TrimSpace(a.value(q.ID))
			if v == "" {
				return &ValidationError{Field: q.ID, Message: "Please answer: " + q.Question}
			}
			if !q.allows(v) {
				return &ValidationError{Field: q.ID, Message: "Invalid option for " + q.ID}
			}
		}
	}
	return nil
}

func validateFitIssues(q Question, a Answers) error {
	if len(a.FitIssues) == 0 {
		return &ValidationError{Field: q.ID, Message: "Please answer: " + q.Question}
	}
	otherSelected := false
	for _, v := range a.FitIssues {
		if !q.allows(v) {
			return &ValidationError{Field: q.ID, Message: "Invalid option for " + q.ID}
		}
		if v == OtherPlaceholder {
			otherSelected = true
		}
	}
	if !otherSelected {
		return nil
	}
	other := strings.TrimSpace(a.FitIssuesOther)
	if other == "" || isPlaceholder(other) {
		return &ValidationError{Field: "fitIssuesOther", Message: "Please describe your other fit issue."}
	}
	return nil
}

// Normalize converts validated answers into the stored shape. The placeholder
// option is replaced by its trimmed text, so stored fit issues never contain it.
func Normalize(a Answers) Response {
	out := Response{
		Identity:         optional(a.Identity),
		BodyShape:        optional(a.BodyShape),
		Size:             optional(a.Size),
		FitIssues:        normalizeFitIssues(a.FitIssues, a.FitIssuesOther),
		ShopFor:          optional(a.ShopFor),
		FabricDrape:      optional(a.FabricDrape),
		ARUsed:           yesNo(a.ARUsed),
		MannequinUsed:    yesNo(a.MannequinUsed),
		MannequinHelpful: yesNo(a.MannequinHelpful),
		ExtraNotes:       optional(a.ExtraNotes),
	}
	if out.ARUsed != nil && *out.ARUsed {
		out.ARExperienceRating = rating(a.ARExperienceRating)
		out.ARMethod = optional(a.ARMethod)
	}
	return out
}

func normalizeFitIssues(selected []string, other string) []string {
	out := make([]string, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	add := func(v string) {
		if _, ok := seen[v]; ok || v == "" || isPlaceholder(v) {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	otherSelected := false
	for _, v := range selected {
		if v == OtherPlaceholder {
			otherSelected = true
			continue
		}
		add(strings.TrimSpace(v))
	}
	if otherSelected {
		add(strings.TrimSpace(other))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isPlaceholder(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), OtherPlaceholder)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func yesNo(v string) *bool {
	switch strings.TrimSpace(v) {
	case "yes":
		b := true
		return &b
	case "no":
		b := false
		return &b
	}
	return nil
}

// rating reads the leading digit of "4 - Satisfied"; N/A is absent.
func rating(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "N/A") {
		return nil
	}
	n, err := strconv.Atoi(v[:1])
	if err != nil || n < 1 || n > 5 {
		return nil
	}
	return &n
}
