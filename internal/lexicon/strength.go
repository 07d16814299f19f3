package lexicon

// strengths are the positive brand-strength categories. Weights range 2.0 to 4.0.
func strengths() []KeywordCategory {
	return []KeywordCategory{
		{Name: "loyalty", Weight: 4.0, Keywords: []string{
			"loyal", "loyalty", "second one", "buying again", "will buy again", "dobara lunga",
			"phir se lunga", "family ke liye", "upgraded to", "long term", "since day one",
			"proud owner", "never going back", "fan", "trust",
		}},
		{Name: "recommendation", Weight: 3.5, Keywords: []string{
			"recommend", "recommended", "highly recommend", "must buy", "go for it", "le lo",
			"zaroor lo", "suggest", "worth buying", "blindly go",
		}},
		{Name: "quality", Weight: 3.0, Keywords: []string{
			"build quality", "quality", "solid", "sturdy", "premium", "well built", "finish",
			"durable", "reliable", "mazboot",
		}},
		{Name: "satisfaction", Weight: 3.0, Keywords: []string{
			"happy", "satisfied", "khush", "love", "no regrets", "paisa vasool", "no complaints",
			"koi problem nahi", "delighted", "pleased", "santusht",
		}},
		{Name: "performance", Weight: 2.5, Keywords: []string{
			"performance", "pickup", "acceleration", "range", "speed", "smooth", "powerful",
			"top speed", "mileage", "torque",
		}},
		{Name: "value", Weight: 2.0, Keywords: []string{
			"value for money", "affordable", "worth", "saving", "savings", "bachat", "cheap to run",
			"low maintenance", "zero maintenance",
		}},
		{Name: "innovation", Weight: 2.0, Keywords: []string{
			"feature", "features", "technology", "tech", "smart", "ota", "update", "app",
			"connected", "innovative", "futuristic",
		}},
	}
}

// weaknesses are the negative brand-strength categories. Weights range -2.0 to -4.0.
func weaknesses() []KeywordCategory {
	return []KeywordCategory{
		{Name: "service_issues", Weight: -4.0, Keywords: []string{
			"service center", "service centre", "poor service", "bad service", "no response",
			"customer care", "waiting", "spare parts", "koi response nahi", "service bekar",
			"delay", "delayed",
		}},
		{Name: "quality_issues", Weight: -3.5, Keywords: []string{
			"broken", "broke", "defect", "defective", "faulty", "rust", "crack", "cracked",
			"suspension", "fire", "kharab", "tuta", "leak",
		}},
		{Name: "defection", Weight: -4.0, Keywords: []string{
			"sold it", "selling it", "switched to", "moving to", "never again", "regret",
			"bech diya", "bechne", "wapas petrol", "going back to petrol", "dont buy",
			"don't buy", "mat lena",
		}},
		{Name: "dissatisfaction", Weight: -3.0, Keywords: []string{
			"disappointed", "worst", "pathetic", "frustrated", "unhappy", "not satisfied",
			"bekar", "bakwas", "waste", "fraud", "froud", "scam",
		}},
		{Name: "performance_issues", Weight: -2.0, Keywords: []string{
			"range drop", "battery drain", "slow", "lag", "hang", "overheating", "jerk",
			"software issue", "not charging", "range kam",
		}},
	}
}
