package catalog

// SeedProducts is the built-in clothing catalog, used when the storefront
// runs without Postgres and as fixture data in tests.
func SeedProducts() []Product {
	return []Product{
		{
			ID:       "vogue-0001",
			Slug:     "mens-classic-linen-shirt",
			Title:    "Men's Classic Linen Shirt",
			Category: "men",
			Price:    1599,
			Currency: "INR",
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors: []Color{
				{Name: "Navy", Hex: "#0a2a6c"},
				{Name: "White", Hex: "#ffffff"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80",
				"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80",
			},
			Description: "Lightweight linen shirt, perfect for summer. Breathable fabric with a relaxed fit that transitions seamlessly from casual to formal occasions.",
			SKU:         "VV-M-001",
			Inventory:   120,
			Tags:        []string{"linen", "summer", "formal"},
		},
		{
			ID:       "vogue-0002",
			Slug:     "mens-premium-chinos",
			Title:    "Men's Premium Chinos",
			Category: "men",
			Price:    1899,
			Currency: "INR",
			Sizes:    []string{"30", "32", "34", "36"},
			Colors: []Color{
				{Name: "Khaki", Hex: "#c3b091"},
				{Name: "Olive", Hex: "#556b2f"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=800&q=80",
				"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=800&q=80",
			},
			Description: "Premium cotton chinos with a modern slim fit. Perfect for both office wear and weekend outings.",
			SKU:         "VV-M-002",
			Inventory:   85,
			Tags:        []string{"cotton", "formal", "casual"},
		},
		{
			ID:       "vogue-0003",
			Slug:     "mens-wool-blazer",
			Title:    "Men's Wool Blend Blazer",
			Category: "men",
			Price:    4999,
			Currency: "INR",
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors: []Color{
				{Name: "Charcoal", Hex: "#36454f"},
				{Name: "Navy", Hex: "#0a2a6c"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&q=80",
				"https://images.unsplash.com/photo-1593030761757-71fae45fa0e7?w=800&q=80",
			},
			Description: "Elegant wool blend blazer with a contemporary cut. Features notch lapels and a two-button closure.",
			SKU:         "VV-M-003",
			Inventory:   45,
			Tags:        []string{"wool", "formal", "blazer"},
		},
		{
			ID:       "vogue-0004",
			Slug:     "mens-cotton-polo",
			Title:    "Men's Cotton Polo",
			Category: "men",
			Price:    999,
			Currency: "INR",
			Sizes:    []string{"S", "M", "L", "XL", "XXL"},
			Colors: []Color{
				{Name: "Black", Hex: "#000000"},
				{Name: "White", Hex: "#ffffff"},
				{Name: "Rose", Hex: "#b5838d"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1625910513413-5fc03c064369?w=800&q=80",
				"https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=800&q=80",
			},
			Description: "Classic cotton polo with a comfortable fit. Features ribbed collar and cuffs with a subtle brand embroidery.",
			SKU:         "VV-M-004",
			Inventory:   200,
			Tags:        []string{"cotton", "casual", "polo"},
		},
		{
			ID:       "vogue-0005",
			Slug:     "mens-denim-jacket",
			Title:    "Men's Classic Denim Jacket",
			Category: "men",
			Price:    2499,
			Currency: "INR",
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors: []Color{
				{Name: "Indigo", Hex: "#3f51b5"},
				{Name: "Light Wash", Hex: "#87ceeb"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=800&q=80",
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&q=80",
			},
			Description: "Timeless denim jacket with a modern fit. Perfect layering piece for all seasons.",
			SKU:         "VV-M-005",
			Inventory:   60,
			Tags:        []string{"denim", "casual", "jacket"},
		},
		{
			ID:       "vogue-0006",
			Slug:     "mens-formal-trousers",
			Title:    "Men's Formal Trousers",
			Category: "men",
			Price:    1799,
			Currency: "INR",
			Sizes:    []string{"30", "32", "34", "36", "38"},
			Colors: []Color{
				{Name: "Black", Hex: "#000000"},
				{Name: "Grey", Hex: "#808080"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800&q=80",
				"https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800&q=80",
			},
			Description: "Tailored formal trousers with a flat front design. Premium fabric with excellent drape.",
			SKU:         "VV-M-006",
			Inventory:   95,
			Tags:        []string{"formal", "office", "trousers"},
		},
		{
			ID:       "vogue-0007",
			Slug:     "womens-silk-blouse",
			Title:    "Women's Silk Blouse",
			Category: "women",
			Price:    2299,
			Currency: "INR",
			Sizes:    []string{"XS", "S", "M", "L"},
			Colors: []Color{
				{Name: "Blush", Hex: "#de5d83"},
				{Name: "Ivory", Hex: "#fffff0"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1564257631407-4deb1f99d992?w=800&q=80",
				"https://images.unsplash.com/photo-1485462537746-965f33f7f6a7?w=800&q=80",
			},
			Description: "Luxurious silk blouse with a relaxed silhouette. Features delicate button details and elegant draping.",
			SKU:         "VV-W-001",
			Inventory:   70,
			Tags:        []string{"silk", "formal", "blouse"},
		},
		{
			ID:       "vogue-0008",
			Slug:     "womens-midi-dress",
			Title:    "Women's Floral Midi Dress",
			Category: "women",
			Price:    2799,
			Currency: "INR",
			Sizes:    []string{"XS", "S", "M", "L", "XL"},
			Colors: []Color{
				{Name: "Rose Garden", Hex: "#b5838d"},
				{Name: "Navy Floral", Hex: "#0a2a6c"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=800&q=80",
				"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800&q=80",
			},
			Description: "Elegant floral midi dress perfect for special occasions. Features a flattering A-line silhouette with a cinched waist.",
			SKU:         "VV-W-002",
			Inventory:   55,
			Tags:        []string{"floral", "dress", "midi"},
		},
		{
			ID:       "vogue-0009",
			Slug:     "womens-tailored-blazer",
			Title:    "Women's Tailored Blazer",
			Category: "women",
			Price:    3999,
			Currency: "INR",
			Sizes:    []string{"XS", "S", "M", "L"},
			Colors: []Color{
				{Name: "Black", Hex: "#000000"},
				{Name: "Camel", Hex: "#c19a6b"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1591369822096-ffd140ec948f?w=800&q=80",
				"https://images.unsplash.com/photo-1548624313-0396c75e4b1a?w=800&q=80",
			},
			Description: "Sophisticated tailored blazer with a feminine cut. Perfect for power dressing with peak lapels and structured shoulders.",
			SKU:         "VV-W-003",
			Inventory:   40,
			Tags:        []string{"formal", "blazer", "office"},
		},
		{
			ID:       "vogue-0010",
			Slug:     "womens-high-waist-jeans",
			Title:    "Women's High Waist Jeans",
			Category: "women",
			Price:    1999,
			Currency: "INR",
			Sizes:    []string{"26", "28", "30", "32", "34"},
			Colors: []Color{
				{Name: "Dark Wash", Hex: "#1a237e"},
				{Name: "Light Blue", Hex: "#64b5f6"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=800&q=80",
				"https://images.unsplash.com/photo-1584370848010-d7fe6bc767ec?w=800&q=80",
			},
			Description: "Flattering high-waist jeans with a straight leg. Premium stretch denim for comfort and style.",
			SKU:         "VV-W-004",
			Inventory:   110,
			Tags:        []string{"denim", "jeans", "casual"},
		},
		{
			ID:       "vogue-0011",
			Slug:     "womens-cashmere-sweater",
			Title:    "Women's Cashmere Sweater",
			Category: "women",
			Price:    3499,
			Currency: "INR",
			Sizes:    []string{"XS", "S", "M", "L"},
			Colors: []Color{
				{Name: "Cream", Hex: "#fffdd0"},
				{Name: "Dusty Rose", Hex: "#b5838d"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800&q=80",
				"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=800&q=80",
			},
			Description: "Ultra-soft cashmere sweater with a relaxed fit. Perfect for layering or wearing on its own.",
			SKU:         "VV-W-005",
			Inventory:   35,
			Tags:        []string{"cashmere", "winter", "sweater"},
		},
		{
			ID:       "vogue-0012",
			Slug:     "womens-pleated-skirt",
			Title:    "Women's Pleated Midi Skirt",
			Category: "women",
			Price:    1699,
			Currency: "INR",
			Sizes:    []string{"XS", "S", "M", "L", "XL"},
			Colors: []Color{
				{Name: "Champagne", Hex: "#f7e7ce"},
				{Name: "Black", Hex: "#000000"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1583496661160-fb5886a0ebb2?w=800&q=80",
				"https://images.unsplash.com/photo-1577900232427-18219b9166a0?w=800&q=80",
			},
			Description: "Elegant pleated midi skirt with a flowing silhouette. Features an elastic waistband for comfort.",
			SKU:         "VV-W-006",
			Inventory:   65,
			Tags:        []string{"skirt", "pleated", "elegant"},
		},
	}
}
