package products

// SizeOption is a size a product is offered in.
type SizeOption struct {
	Size      string  `json:"size"`
	Available bool    `json:"available"`
	Price     *string `json:"price"`
}

// MeasurementValue is one dimension in a size chart row.
type MeasurementValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// SizeChartEntry is one row of a size chart.
type SizeChartEntry struct {
	Size         string             `json:"size"`
	Measurements []MeasurementValue `json:"measurements"`
}

// ProductDimensions are package or item dimensions.
type ProductDimensions struct {
	Length     *float64 `json:"length"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	UnitLength string   `json:"unit_length"`
	UnitWeight string   `json:"unit_weight"`
}

// ProductInfo is what the extractor knows about a clothing product.
type ProductInfo struct {
	ASIN             *string            `json:"asin"`
	Title            string             `json:"title"`
	Brand            *string            `json:"brand"`
	Price            *string            `json:"price"`
	OriginalPrice    *string            `json:"original_price"`
	Currency         string             `json:"currency"`
	MainImage        *string            `json:"main_image"`
	Images           []string           `json:"images"`
	AvailableSizes   []SizeOption       `json:"available_sizes"`
	SizeChart        []SizeChartEntry   `json:"size_chart"`
	FitType          *string            `json:"fit_type"`
	Material         *string            `json:"material"`
	CareInstructions *string            `json:"care_instructions"`
	Category         *string            `json:"category"`
	ClothingType     *string            `json:"clothing_type"`
	Gender           *string            `json:"gender"`
	Dimensions       *ProductDimensions `json:"dimensions"`
	Color            *string            `json:"color"`
	AvailableColors  []string           `json:"available_colors"`
	Features         []string           `json:"features"`
	Description      *string            `json:"description"`
	Rating           *float64           `json:"rating"`
	ReviewCount      *int               `json:"review_count"`
	URL              string             `json:"url"`
	ScrapedAt        *string            `json:"scraped_at"`
}

// ExtractionRequest asks the extractor for a product page.
type ExtractionRequest struct {
	URL              string `json:"url"`
	IncludeSizeChart bool   `json:"include_size_chart"`
	IncludeAllImages bool   `json:"include_all_images"`
}

// ExtractionResponse is the extractor's answer. Validation failures are
// reported with Success false rather than an HTTP error.
type ExtractionResponse struct {
	Success  bool         `json:"success"`
	Product  *ProductInfo `json:"product"`
	Error    *string      `json:"error"`
	Warnings []string     `json:"warnings"`
}

func failure(msg string) ExtractionResponse {
	return ExtractionResponse{Success: false, Error: &msg, Warnings: []string{}}
}
