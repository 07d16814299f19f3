package lexicon

// neutralInquiry holds regular expressions for factual questions. A match forces
// a neutral result regardless of any sentiment words in the comment.
func neutralInquiry() []string {
	return []string{
		`\b(real|true|sach|sahi)\b.{0,40}\b(or|ya|yaa|or is it)\b.{0,20}\b(fake|false|jhooth|jhoot|jhuth|galat|rumou?r)\b`,
		`\b(fake|false|rumou?r)\b.{0,20}\b(or|ya|yaa)\b.{0,20}\b(real|true|sach)\b`,
		`\b(is|are|was|were)\s+(it|this|that|the|there)\b[^?]{0,80}\b(true|real|confirmed|official)\b[^?]*\?`,
		`\bkya\s+(ye|yeh|yah|ya|wo|woh)\s+(sach|sahi|true|real)\b`,
		`\b(any|koi)\s+(official\s+)?(update|news|confirmation)\b[^?]*\?`,
		`\bfact\s*check\b`,
		`\b(kab|when)\b[^?]{0,60}\b(launch|aayega|ayega|aaega|release|available)\b[^?]*\?`,
	}
}

func strongPositiveRecommendations() []string {
	return []string{
		"highly recommend", "highly recommended", "strongly recommend", "strongly recommended",
		"must buy", "must have", "go for it", "go for this", "blindly go", "blindly buy",
		"zaroor lo", "zarur lo", "zaroor lena", "zarur lena", "le lo bhai", "best scooter",
		"best ev", "best electric scooter", "best purchase", "best decision", "totally worth",
		"worth every penny", "100% recommend", "recommend it to everyone", "10/10",
		"best in the market", "no brainer", "aankh band karke lo",
	}
}

func strongNegatives() []string {
	return []string{
		"worst", "never buy", "never again", "dont buy", "don't buy", "do not buy",
		"mat lena", "mat lo", "fraud", "froud", "froad", "scam", "scammer", "scammers",
		"cheater", "cheaters", "bakwas", "bakwaas", "ghatiya", "waste of money",
		"paisa barbad", "pathetic", "horrible", "disgusting", "chor company",
		"looteri company", "stay away", "biggest mistake", "regret buying", "useless company",
		"rip off", "ripoff", "dhokebaaz", "dhokebaz", "worst decision", "bekar company",
	}
}

func negativePhrases() []string {
	return []string{
		"same issue", "same problem", "again and again", "baar baar", "no response",
		"koi response nahi", "not working", "stopped working", "band ho gaya",
		"band ho gayi", "band pad gaya", "not worth", "not recommended", "still waiting",
		"abhi tak nahi", "delivery delayed", "refund nahi", "no refund", "battery drain",
		"range drop", "range kam", "poor service", "bad service", "worst service",
		"bad experience", "third class", "3rd class", "beech raste", "towing",
		"customer care is useless", "nobody responds", "koi sunta nahi", "not satisfied",
		"not happy", "khush nahi", "caught fire", "aag lag gayi", "jhatka", "broke down",
	}
}

func adviceSeeking() []string {
	return []string{
		"which scooter should i buy", "which one should i buy", "which ev should i",
		"which one to buy", "which should i buy", "should i buy", "should i go for",
		"konsa lu", "konsa lun", "kaunsa lu", "kaunsa lun", "kaunsa lena", "konsa lena",
		"kon sa lena", "kya lena chahiye", "le lu kya", "lu ya nahi", "lun ya nahi",
		"suggest me", "suggest karo", "please suggest", "pls suggest", "plz suggest",
		"help me choose", "help me decide", "which is better", "kaun sa better",
		"konsa better", "is it worth buying", "worth buying", "any suggestions",
		"what should i buy", "confused between",
	}
}

func informationSeeking() []string {
	return []string{
		"give me", "sales numbers", "sales figures", "sales data", "how many",
		"what is the price", "what's the price", "price kya", "price kitna", "kitne ka",
		"kitne ki", "on road price", "what is the range", "real range kitni",
		"mileage kitna", "range kitni", "details please", "specs", "specifications",
		"launch date", "when is", "where is the showroom", "how much", "how long",
		"warranty kitni", "what is the warranty", "emi kitni",
	}
}

func adviceGiving() []string {
	return []string{
		"i recommend", "i would recommend", "i'd recommend", "i suggest", "i would suggest",
		"my advice", "my suggestion", "you should", "u should", "go for", "mat lena",
		"mat lo", "le lo", "lelo", "avoid", "dont buy", "don't buy", "better to buy",
		"better to go", "trust me", "take my word", "meri maano", "meri salah",
	}
}

// irrelevantProducts are non-EV vehicles whose praise says nothing about an EV brand
func irrelevantProducts() []string {
	return []string{
		"petrol", "petrol scooter", "petrol bike", "activa", "splendor", "pulsar", "jupiter",
		"access 125", "bullet", "royal enfield", "ice vehicle", "ice scooter", "cng",
		"diesel", "classic 350", "shine", "apache", "fz", "dio",
	}
}

// evTerms anchor a comment in the EV domain; brand names are added by the scorer
func evTerms() []string {
	return []string{
		"ev", "evs", "electric", "battery", "charging", "charger", "charge", "range",
		"motor", "kwh", "fast charging", "bijli",
	}
}

func sarcasm() SarcasmLexicon {
	return SarcasmLexicon{
		PraiseWords: []string{
			"great", "excellent", "amazing", "awesome", "wonderful", "fantastic", "superb",
			"brilliant", "best", "love", "perfect", "outstanding", "wow", "wah", "waah",
			"kya baat", "shabash", "badhiya", "mast", "nice", "good job", "well done",
			"bravo", "impressive", "kamaal",
		},
		NegativeContext: []string{
			"service center", "service centre", "problem", "problems", "repair", "repaired",
			"issue", "issues", "complaint", "complaints", "breakdown", "broke", "broken",
			"defect", "fault", "delay", "delayed", "waiting", "refund", "fire", "stuck",
			"not working", "stopped", "tow", "towing", "dead", "drain", "glitch", "hang",
			"customer care", "replaced", "replacement", "mechanic", "garage",
		},
		ComplaintWords: []string{
			"worst", "pathetic", "bekar", "bekaar", "kharab", "useless", "waste", "no response",
			"problem", "issue", "broken", "not working", "stopped working", "delay", "waiting",
			"refund", "complaint", "nothing", "fire", "dead", "stuck", "repair", "same issue",
		},
		GratitudeWords: []string{
			"thanks", "thank you", "thanku", "thankyou", "thnx", "grateful", "appreciate",
			"shukriya", "dhanyavad", "dhanyawad",
		},
		RepeatedVisit: []string{
			`\b\d+\s*(st|nd|rd|th)?\s*(times?|baar|bar|visits?)\b`,
			`\b(second|third|fourth|fifth|2nd|3rd|4th|5th)\s+(time|visit)\b`,
			`\b(two|three|four|five|do|teen|char|paanch)\s+(times|baar)\b`,
			`\bagain\b`,
			`\bphir\s+se\b`,
			`\bdobara\b`,
			`\bbaar\s+baar\b`,
		},
	}
}
