package surveys

import "time"

// Answers is a raw survey submission keyed like the catalogue.
type Answers struct {
	Identity           string   `json:"identity"`
	BodyShape          string   `json:"bodyShape"`
	Size               string   `json:"size"`
	FitIssues          []string `json:"fitIssues"`
	FitIssuesOther     string   `json:"fitIssuesOther"`
	ShopFor            string   `json:"shopFor"`
	FabricDrape        string   `json:"fabricDrape"`
	ARUsed             string   `json:"arUsed"`
	ARExperienceRating string   `json:"arExperienceRating"`
	ARMethod           string   `json:"arMethod"`
	MannequinUsed      string   `json:"mannequinUsed"`
	MannequinHelpful   string   `json:"mannequinHelpful"`
	ExtraNotes         string   `json:"extraNotes"`
}

func (a Answers) value(id string) string {
	switch id {
	case "identity":
		return a.Identity
	case "bodyShape":
		return a.BodyShape
	case "size":
		return a.Size
	case "shopFor":
		return a.ShopFor
	case "fabricDrape":
		return a.FabricDrape
	case "arUsed":
		return a.ARUsed
	case "arExperienceRating":
		return a.ARExperienceRating
	case "arMethod":
		return a.ARMethod
	case "mannequinUsed":
		return a.MannequinUsed
	case "mannequinHelpful":
		return a.MannequinHelpful
	case "extraNotes":
		return a.ExtraNotes
	}
	return ""
}

// Response is a stored, normalized survey result. It is never updated.
type Response struct {
	ID                 string    `json:"id"`
	Identity           *string   `json:"identity"`
	BodyShape          *string   `json:"bodyShape"`
	Size               *string   `json:"size"`
	FitIssues          []string  `json:"fitIssues"`
	ShopFor            *string   `json:"shopFor"`
	FabricDrape        *string   `json:"fabricDrape"`
	ARUsed             *bool     `json:"arUsed"`
	ARExperienceRating *int      `json:"arExperienceRating"`
	ARMethod           *string   `json:"arMethod"`
	MannequinUsed      *bool     `json:"mannequinUsed"`
	MannequinHelpful   *bool     `json:"mannequinHelpful"`
	ExtraNotes         *string   `json:"extraNotes"`
	CreatedAt          time.Time `json:"createdAt"`
}
