package surveys

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func completeAnswers() Answers {
	return Answers{
		Identity:         "female",
		BodyShape:        "curvy",
		Size:             "M",
		FitIssues:        []string{"sleeves too long or bunching at the wrist"},
		ShopFor:          "Jeans / Pants",
		FabricDrape:      "very important",
		ARUsed:           "no",
		MannequinUsed:    "no",
		MannequinHelpful: "yes",
	}
}

func TestValidateAcceptsCompleteAnswers(t *testing.T) {
	if err := Validate(completeAnswers()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Answers)
		field  string
	}{
		{name: "missing identity", mutate: func(a *Answers) { a.Identity = "" }, field: "identity"},
		{name: "unknown size", mutate: func(a *Answers) { a.Size = "XXXXXL" }, field: "size"},
		{name: "no fit issues", mutate: func(a *Answers) { a.FitIssues = nil }, field: "fitIssues"},
		{name: "unknown fit issue", mutate: func(a *Answers) { a.FitIssues = []string{"too sparkly"} }, field: "fitIssues"},
		{name: "other without text", mutate: func(a *Answers) {
			a.FitIssues = []string{OtherPlaceholder}
			a.FitIssuesOther = "   "
		}, field: "fitIssuesOther"},
		{name: "other text repeats the placeholder", mutate: func(a *Answers) {
			a.FitIssues = []string{OtherPlaceholder}
			a.FitIssuesOther = "  Other (please specify) "
		}, field: "fitIssuesOther"},
		{name: "ar follow-up required when ar used", mutate: func(a *Answers) { a.ARUsed = "yes" }, field: "arExperienceRating"},
		{name: "ar method required when ar used", mutate: func(a *Answers) {
			a.ARUsed = "yes"
			a.ARExperienceRating = "N/A"
		}, field: "arMethod"},
		{name: "missing mannequin helpful", mutate: func(a *Answers) { a.MannequinHelpful = "" }, field: "mannequinHelpful"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := completeAnswers()
			tt.mutate(&a)
			err := Validate(a)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput in chain")
			}
		})
	}
}

func TestValidateIgnoresHiddenFollowUps(t *testing.T) {
	a := completeAnswers()
	a.ARExperienceRating = "not a rating"
	if err := Validate(a); err != nil {
		t.Fatalf("hidden questions must not be validated: %v", err)
	}
}

func TestNormalizeReplacesPlaceholder(t *testing.T) {
	a := completeAnswers()
	a.FitIssues = []string{"sleeves too long or bunching at the wrist", OtherPlaceholder}
	a.FitIssuesOther = "  collars too stiff  "

	got := Normalize(a)
	want := []string{"sleeves too long or bunching at the wrist", "collars too stiff"}
	if diff := cmp.Diff(want, got.FitIssues); diff != "" {
		t.Fatalf("fit issues mismatch (-want +got):\n%s", diff)
	}
	for _, v := range got.FitIssues {
		if v == OtherPlaceholder {
			t.Fatalf("placeholder must never be stored")
		}
	}
}

func TestNormalizeEmptyFitIssuesIsNull(t *testing.T) {
	got := Normalize(Answers{FitIssues: []string{}})
	if got.FitIssues != nil {
		t.Fatalf("expected nil fit issues, got %v", got.FitIssues)
	}
}

func TestNormalizeARFollowUps(t *testing.T) {
	a := completeAnswers()
	a.ARUsed = "yes"
	a.ARExperienceRating = "4 - Satisfied"
	a.ARMethod = "captured your measurements"

	got := Normalize(a)
	if got.ARUsed == nil || !*got.ARUsed {
		t.Fatalf("expected arUsed true")
	}
	if got.ARExperienceRating == nil || *got.ARExperienceRating != 4 {
		t.Fatalf("expected rating 4, got %v", got.ARExperienceRating)
	}
	if got.ARMethod == nil || *got.ARMethod != "captured your measurements" {
		t.Fatalf("unexpected method %v", got.ARMethod)
	}

	a.ARExperienceRating = "N/A"
	if got := Normalize(a); got.ARExperienceRating != nil {
		t.Fatalf("N/A must normalize to null")
	}

	a.ARUsed = "no"
	a.ARExperienceRating = "5 - Very satisfied"
	got = Normalize(a)
	if got.ARExperienceRating != nil || got.ARMethod != nil {
		t.Fatalf("hidden follow-ups must be dropped when arUsed is no")
	}
	if got.ARUsed == nil || *got.ARUsed {
		t.Fatalf("expected arUsed false")
	}
}

func TestNormalizeEmptyStringsAreNull(t *testing.T) {
	got := Normalize(Answers{ExtraNotes: "   ", MannequinHelpful: ""})
	if got.ExtraNotes != nil || got.MannequinHelpful != nil || got.Identity != nil {
		t.Fatalf("expected nulls, got %+v", got)
	}
}

func TestNormalizeNeverStoresPlaceholder(t *testing.T) {
	a := completeAnswers()
	a.FitIssues = []string{OtherPlaceholder, "sleeves too long or bunching at the wrist"}
	a.FitIssuesOther = OtherPlaceholder

	got := Normalize(a).FitIssues
	for _, v := range got {
		if isPlaceholder(v) {
			t.Fatalf("placeholder stored in fit issues: %v", got)
		}
	}
	if diff := cmp.Diff([]string{"sleeves too long or bunching at the wrist"}, got); diff != "" {
		t.Fatalf("fit issues mismatch (-want +got):\n%s", diff)
	}
}
