package lexicon

func englishPositive() []string {
	return []string{
		"good", "great", "excellent", "amazing", "awesome", "fantastic", "superb", "super",
		"best", "love", "loved", "loving", "lovely", "nice", "smooth", "comfortable",
		"reliable", "perfect", "impressive", "impressed", "recommend", "recommended",
		"satisfied", "happy", "worth", "brilliant", "outstanding", "solid", "efficient",
		"stylish", "beautiful", "premium", "affordable", "powerful", "quiet", "wonderful",
		"fabulous", "favourite", "favorite", "helpful", "responsive", "improved", "enjoy",
		"enjoying", "fun", "cool", "classy", "sturdy", "peppy", "zippy", "seamless",
		"hassle-free", "trustworthy", "incredible", "phenomenal", "superior", "flawless",
		"delighted", "pleased", "glad", "thrilled", "gem", "beast", "rocks",
		"rocking", "winner", "value", "economical", "convenient", "polite", "quick",
	}
}

func englishNegative() []string {
	return []string{
		"bad", "worst", "poor", "terrible", "horrible", "awful", "pathetic", "useless",
		"waste", "fraud", "scam", "cheat", "cheated", "cheating", "problem", "problems",
		"issue", "issues", "fault", "faulty", "defect", "defective", "broken", "broke",
		"fail", "failed", "fails", "failure", "disappointed", "disappointing",
		"disappointment", "hate", "hated", "slow", "delay", "delayed", "overpriced",
		"fire", "complaint", "complaints", "worse", "regret", "noisy", "unreliable", "rude",
		"ignored", "stuck", "lag", "lagging", "glitch", "glitches", "bug", "bugs", "buggy",
		"breakdown", "rust", "rusted", "leak", "leaking", "overheating", "overheat", "dead",
		"angry", "frustrated", "frustrating", "annoying", "unsafe", "dangerous", "nightmare",
		"rubbish", "garbage", "trash", "sucks", "sucked", "avoid", "horrendous", "lousy",
		"mediocre", "misleading", "liar", "liars", "lies", "cheap", "flimsy", "drained",
		"irresponsible", "unprofessional", "scammed", "looted", "crap", "ripoff",
	}
}

func hindiPositive() []string {
	return []string{
		"achha", "acha", "accha", "achchha", "achhi", "achi", "acchi", "badhiya", "badiya",
		"badhia", "badia", "bdhiya", "mast", "zabardast", "jabardast", "zabrdast", "shandar",
		"shandaar", "shaandar", "behtareen", "behtarin", "kamaal", "kamal", "sahi", "sundar",
		"khush", "pasand", "dhansu", "jhakaas", "jhakas", "lajawab", "lajawaab", "bindaas",
		"tagda", "tagdi", "khatarnak", "dhamakedar", "solid", "baap", "shaandaar", "vadiya",
		"vadhiya", "changa", "sukoon", "aaram", "aramdayak", "umda", "badiyaa",
	}
}

func hindiNegative() []string {
	return []string{
		"bekar", "bekaar", "bakwas", "bakwaas", "ghatiya", "ghatia", "kharab", "kharaab",
		"bura", "buri", "dhokha", "dhoka", "faltu", "pareshan", "pareshani", "dikkat",
		"lafda", "jhol", "chor", "loot", "lootere", "looteri", "barbad", "barbaad",
		"nuksan", "nuksaan", "ganda", "gandi", "tuta", "tuti", "kachra", "dhokebaaz",
		"dhokebaz", "bhikari", "pachtawa", "takleef", "musibat", "jhanjhat",
		"bekaam", "nakli", "fattu", "chutiyapa", "ghaploo", "ghotala",
	}
}

func devanagariPositive() []string {
	return []string{
		"अच्छा", "अच्छी", "अच्छे", "बढ़िया", "बढिया", "बेहतरीन", "शानदार", "मस्त",
		"ज़बरदस्त", "जबरदस्त", "सुंदर", "खुश", "पसंद", "सही", "कमाल", "लाजवाब", "उम्दा",
		"धांसू", "संतुष्ट",
	}
}

func devanagariNegative() []string {
	return []string{
		"बुरा", "बुरी", "खराब", "ख़राब", "बेकार", "बकवास", "घटिया", "धोखा", "परेशान",
		"परेशानी", "समस्या", "दिक्कत", "नुकसान", "बर्बाद", "धोखेबाज", "चोर", "लूट",
		"फालतू", "नकली",
	}
}

// regionalPositive covers Tamil, Malayalam, Telugu, Kannada and Bengali in both
// native script and common Latin transliteration.
func regionalPositive() []string {
	return []string{
		// Tamil
		"நல்ல", "நல்லது", "சூப்பர்", "அருமை", "semma", "nalla", "arumai", "sema",
		// Malayalam
		"നല്ല", "കിടിലൻ", "അടിപൊളി", "kidilan", "adipoli", "nannayittund",
		// Telugu
		"మంచి", "బాగుంది", "సూపర్", "bagundi", "manchi", "keka",
		// Kannada
		"ಚೆನ್ನಾಗಿದೆ", "ಒಳ್ಳೆಯ", "chennagide", "olle",
		// Bengali
		"ভালো", "দারুণ", "bhalo", "darun",
	}
}

func regionalNegative() []string {
	return []string{
		// Tamil
		"மோசம்", "கெட்ட", "mosam", "kevalam",
		// Malayalam
		"മോശം", "mosham", "chetta",
		// Telugu
		"చెడు", "బాగాలేదు", "chedu", "baagaledu",
		// Kannada
		"ಕೆಟ್ಟ", "ketta",
		// Bengali
		"খারাপ", "kharap", "baje",
	}
}

// commonEnglish is a lightweight list used only to estimate the English word ratio
func commonEnglish() []string {
	return []string{
		"the", "a", "an", "is", "are", "was", "were", "be", "been", "am", "i", "you", "he",
		"she", "it", "we", "they", "me", "my", "your", "our", "their", "this", "that",
		"these", "those", "and", "or", "but", "not", "no", "yes", "so", "very", "too",
		"of", "in", "on", "at", "to", "for", "with", "from", "by", "about", "after",
		"before", "than", "then", "just", "also", "only", "all", "any", "some", "more",
		"most", "much", "many", "what", "which", "who", "when", "where", "why", "how",
		"do", "does", "did", "have", "has", "had", "can", "could", "will", "would",
		"should", "may", "might", "must", "get", "got", "buy", "bought", "go", "went",
		"come", "came", "take", "make", "use", "used", "need", "want", "like", "know",
		"think", "say", "said", "see", "look", "give", "time", "day", "year", "month",
		"week", "km", "price", "cost", "money", "range", "battery", "charge", "charging",
		"charger", "speed", "performance", "service", "center", "centre", "scooter",
		"bike", "vehicle", "car", "ev", "electric", "company", "customer", "care", "ride",
		"riding", "road", "city", "highway", "mileage", "delivery", "booking", "booked",
		"showroom", "dealer", "software", "update", "app", "feature", "features", "review",
		"video", "bro", "sir", "please", "thanks", "thank", "really", "highly",
		"recommend", "good", "great", "best", "bad", "worst", "nice", "love", "problem",
		"issue", "same", "again", "visited", "times", "real", "fake", "case", "true",
		"false", "better", "worse", "still", "even", "never", "always", "every", "one",
		"two", "three", "first", "second", "new", "old", "build", "quality",
		"i'm", "i've", "don't", "dont", "doesn't", "didn't", "isn't", "wasn't", "can't",
		"won't", "it's", "that's", "there's", "you're", "they're", "we're", "i'd", "i'll",
		"should've", "would've", "could've", "ain't", "let's",
	}
}

// negations invert a keyword that follows within two tokens
func negations() []string {
	return []string{
		"not", "no", "never", "dont", "don't", "didnt", "didn't", "doesnt", "doesn't",
		"isnt", "isn't", "wasnt", "wasn't", "arent", "aren't", "cant", "can't", "cannot",
		"wont", "won't", "neither", "nor", "without", "hardly", "barely",
		"nahi", "nahin", "mat", "नहीं", "मत",
	}
}

// postNegations invert a keyword that precedes them ("acha nahi hai")
func postNegations() []string {
	return []string{
		"nahi", "nahin", "nai", "nhi", "नहीं",
	}
}

func intensifiers() []string {
	return []string{
		"very", "really", "extremely", "highly", "so", "too", "totally", "absolutely",
		"truly", "quite", "most", "super", "damn", "insanely", "incredibly", "bahut",
		"bohot", "bhot", "bahot", "bhut", "boht", "bht", "ekdum", "ekdam", "sabse",
		"bilkul", "itna", "itni", "kaafi", "kafi", "zyada", "jyada", "बहुत", "एकदम",
		"सबसे", "बिल्कुल",
	}
}
