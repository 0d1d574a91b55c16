package surveys

// Question kinds.
const (
	KindRadio    = "radio"
	KindCheckbox = "checkbox"
	KindTextarea = "textarea"
)

// OtherPlaceholder is the fit-issue option that asks for free text.
const OtherPlaceholder = "other (please specify)"

// Question is one entry in the survey catalogue.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Kind     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	// ShownWhenARUsed marks follow-ups that only appear after arUsed == "yes".
	ShownWhenARUsed bool `json:"shownWhenArUsed,omitempty"`
}

// Questions is the catalogue in display order: general fit, AR experience,
// mannequin, free text.
var Questions = []Question{
	{
		ID:       "identity",
		Question: "What describes you best?",
		Kind:     KindRadio,
		Options:  []string{"male", "female", "other"},
	},
	{
		ID:       "bodyShape",
		Question: "What category best describes your body shape?",
		Kind:     KindRadio,
		Options:  []string{"slim", "athletic", "curvy", "plus", "tall", "petite"},
	},
	{
		ID:       "size",
		Question: "What size do you usually order?",
		Kind:     KindRadio,
		Options:  []string{"XXXS", "XXS", "XS", "S", "M", "L", "XL", "XXL", "XXXL", "XXXXL", "other"},
	},
	{
		ID:       "fitIssues",
		Question: "What fit issues bother you most?",
		Kind:     KindCheckbox,
		Options: []string{
			"gaping or pulling at the bust in button-up tops and dresses",
			"waistband issues including slipping, digging, or pants riding up in back",
			"tight hips with loose waist (pants fit in one area but not another)",
			"shoulders too wide or shoulder seams hanging past the shoulder",
			"sleeves too long or bunching at the wrist",
			"neckline that doesn’t lie flat or gaps at the chest",
			"inconsistent sizing across brands for the same labeled size",
			"dress bodice too long or too short for torso length",
			"hems on pants either dragging on the floor or sitting too high",
			"fabric pulling lines that point to fit stress around hips or thighs",
			"waist gap in jeans where back waistband pulls away from lower back",
			"bust fit good but waist too tight or vice versa",
			"rise too low or too high in pants causing discomfort",
			"general “one size fits none” problems from vanity sizing",
			OtherPlaceholder,
		},
	},
	{
		ID:       "fabricDrape",
		Question: "How important is fabric drape? (Fabric drape describes how a fabric hangs and flows on the body)",
		Kind:     KindRadio,
		Options:  []string{"not important", "somewhat important", "very important"},
	},
	{
		ID:       "shopFor",
		Question: "What do you shop for most often?",
		Kind:     KindRadio,
		Options:  []string{"Tops", "Jeans / Pants", "Dresses / Skirts", "Activewear", "Everything"},
	},
	{
		ID:       "arUsed",
		Question: "Have you used an augmented reality try-on app to preview outfits?",
		Kind:     KindRadio,
		Options:  []string{"yes", "no"},
	},
	{
		ID:       "arExperienceRating",
		Question: "If yes, how was your experience?",
		Kind:     KindRadio,
		Options: []string{
			"1 - Very dissatisfied",
			"2 - Dissatisfied",
			"3 - Neutral",
			"4 - Satisfied",
			"5 - Very satisfied",
			"N/A",
		},
		ShownWhenARUsed: true,
	},
	{
		ID:              "arMethod",
		Question:        "Which best describes what the app did?",
		Kind:            KindRadio,
		Options:         []string{"captured your measurements", "projected garments onto your camera image", "other"},
		ShownWhenARUsed: true,
	},
	{
		ID:       "mannequinUsed",
		Question: "Have you used an app that creates a mannequin/avatar of you and dresses it?",
		Kind:     KindRadio,
		Options:  []string{"yes", "no"},
	},
	{
		ID:       "mannequinHelpful",
		Question: "Would a personalized mannequin be helpful for you?",
		Kind:     KindRadio,
		Options:  []string{"yes", "no"},
	},
	{
		ID:       "extraNotes",
		Question: "Anything else we should know?",
		Kind:     KindTextarea,
	},
}

func (q Question) allows(v string) bool {
	for _, opt := range q.Options {
		if opt == v {
			return true
		}
	}
	return false
}
