package products

func strPtr(s string) *string { return &s }

// DemoProduct returns a canned product for exercising the front end without
// calling the extractor.
func DemoProduct() ProductInfo {
	rating := 4.5
	reviews := 2847
	inches := func(name string, v float64) MeasurementValue {
		return MeasurementValue{Name: name, Value: v, Unit: "inches"}
	}
	return ProductInfo{
		ASIN:          strPtr("B0DEMO12345"),
		Title:         "Men's Classic Fit Cotton T-Shirt - Premium Quality Crew Neck Tee",
		Brand:         strPtr("FitCheck Demo Brand"),
		Price:         strPtr("$29.99"),
		OriginalPrice: strPtr("$39.99"),
		Currency:      "USD",
		MainImage:     strPtr("https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500"),
		Images: []string{
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			"https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=500",
		},
		AvailableSizes: []SizeOption{
			{Size: "S", Available: true},
			{Size: "M", Available: true},
			{Size: "L", Available: true},
			{Size: "XL", Available: true},
			{Size: "XXL", Available: false},
		},
		SizeChart: []SizeChartEntry{
			{Size: "S", Measurements: []MeasurementValue{inches("chest", 36), inches("length", 27), inches("sleeve", 8)}},
			{Size: "M", Measurements: []MeasurementValue{inches("chest", 38), inches("length", 28), inches("sleeve", 8.5)}},
			{Size: "L", Measurements: []MeasurementValue{inches("chest", 41), inches("length", 29), inches("sleeve", 9)}},
			{Size: "XL", Measurements: []MeasurementValue{inches("chest", 44), inches("length", 30), inches("sleeve", 9.5)}},
		},
		Material:        strPtr("100% Premium Cotton, 180 GSM"),
		FitType:         strPtr("Classic Fit"),
		ClothingType:    strPtr("shirt"),
		Gender:          strPtr("men"),
		Color:           strPtr("Navy Blue"),
		AvailableColors: []string{"Navy Blue", "Black", "White", "Heather Gray", "Forest Green"},
		Features: []string{
			"100% Premium Combed Cotton for ultimate softness",
			"Pre-shrunk fabric maintains size after washing",
			"Reinforced shoulder seams for durability",
			"Tagless design for comfort",
			"Classic crew neck fit",
		},
		Description: strPtr("Experience comfort like never before with our Premium Classic Fit T-Shirt. " +
			"Made from 100% combed cotton, this tee offers exceptional softness while maintaining durability."),
		Rating:      &rating,
		ReviewCount: &reviews,
		URL:         "https://www.amazon.com/dp/B0DEMO12345",
	}
}
