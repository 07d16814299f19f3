package lexicon

// idioms maps code-switched Hindi/English expressions and common misspellings
// to a polarity. Matches here mask the matched words from keyword scoring.
func idioms() []Idiom {
	pos := func(phrases ...string) []Idiom { return tag(Positive, phrases) }
	neg := func(phrases ...string) []Idiom { return tag(Negative, phrases) }
	neu := func(phrases ...string) []Idiom { return tag(Neutral, phrases) }
	ctx := func(phrases ...string) []Idiom { return tag(ContextDependent, phrases) }

	var out []Idiom

	out = append(out, pos(
		"bhot badhiya", "bahut badhiya", "bohot badhiya", "bahut acha", "bahut achha",
		"bohot acha", "bhot acha", "paisa vasool", "paisa wasool", "paise vasool",
		"full paisa vasool", "dil jeet liya", "dil khush", "maza aa gaya", "mazaa aa gaya",
		"maja aa gaya", "mza aa gya", "ek number", "number one", "no tension", "tension free",
		"value for money", "worth the money", "worth every penny", "not bad", "no complaints",
		"no complaint", "koi dikkat nahi", "koi problem nahi", "koi issue nahi",
		"koi shikayat nahi", "superb experience", "best in segment", "best in class",
		"game changer", "top notch", "love it", "loving it", "happy with", "satisfied with",
		"kamaal ki", "kamaal ka", "ekdum mast", "chaa gaya", "chha gaye", "aag laga di",
		"dhamaal", "kya baat hai", "waah kya", "mast chal raha", "mast chal rahi",
		"badhiya chal raha", "badhiya chal rahi", "no regrets", "zero maintenance",
		"saves a lot", "bachat hi bachat", "petrol ka kharcha bacha", "proud owner",
		"happy customer", "happy owner", "smooth ride", "smooth experience",
		"बहुत अच्छा", "बहुत बढ़िया", "पैसा वसूल", "मज़ा आ गया",
	)...)

	out = append(out, neg(
		"froud", "froad", "fraud company", "froud company", "dont buy", "don't buy",
		"do not buy", "never buy", "mat lena", "mat lo", "mat khareedna", "mat kharido",
		"paisa barbad", "paise barbad", "paisa doob gaya", "waste of money",
		"chuna laga diya", "chuna lagaya", "choona laga", "ullu bana", "ullu banaya",
		"sar dard", "sir dard", "headache hai", "pachta raha", "pachta rahi", "pachtaoge",
		"regret buying", "worst experience", "worst service", "service bekar",
		"service is pathetic", "no response", "koi response nahi", "bhagwan bharose",
		"dabba hai", "khatara", "rip off", "band pad gaya", "band pad gayi",
		"beech raste", "beech me band", "tow karna pada", "not worth", "not recommended",
		"stay away", "stay away from", "biggest mistake", "big mistake", "galti kar di",
		"gadha", "third class", "3rd class", "ghatiya service", "chor company",
		"looteri company", "time pass company", "customer ko pagal", "pagal bana",
		"बेकार है", "पैसा बर्बाद", "मत लेना",
	)...)

	out = append(out, neu(
		"let's see", "lets see", "dekhte hai", "dekhte hain", "time will tell",
		"depends on", "on the other hand", "no idea", "pata nahi", "pta nahi",
		"not sure", "koi idea nahi", "abhi pata nahi",
	)...)

	out = append(out, ctx(
		"dil se bol raha", "dil se bol rha", "dil se bol rahi", "sach bolu to",
		"sach bolun to", "sach bataun", "honestly speaking", "ek baat bolu",
		"koi jawab nahi", "bas itna kahunga", "mera experience",
	)...)

	return out
}

// contextRules resolve context-dependent idioms. A rule with an empty phrase is the
// fallback for idioms without a dedicated rule.
func contextRules() []ContextRule {
	defaultNegative := []string{
		"mat", "avoid", "warning", "bekar", "bekaar", "never", "dont", "don't", "mistake",
		"galti", "pachta", "regret", "kharab", "worst",
	}
	defaultPositive := []string{
		"recommend", "achha", "acha", "accha", "best", "le lo", "lelo", "badhiya",
		"go for", "mast", "zabardast", "happy",
	}

	return []ContextRule{
		{Phrase: "", NegativeCues: defaultNegative, PositiveCues: defaultPositive},
		{
			Phrase:       "koi jawab nahi",
			NegativeCues: []string{"customer care", "service", "call", "complaint", "mail", "email", "refund"},
			PositiveCues: []string{"performance", "range", "design", "pickup", "iska", "best", "look"},
		},
		{
			Phrase:       "mera experience",
			NegativeCues: []string{"bura", "kharab", "worst", "bekar", "bad", "pathetic"},
			PositiveCues: []string{"acha", "achha", "badhiya", "great", "best", "mast", "good"},
		},
	}
}

func tag(p Polarity, phrases []string) []Idiom {
	out := make([]Idiom, 0, len(phrases))
	for _, phrase := range phrases {
		out = append(out, Idiom{Phrase: phrase, Polarity: p})
	}
	return out
}
