package lexicon

// emojiScores assigns a sentiment score in [-0.9, 0.9] to common emoji.
// 🙏 is positive here: in Indian comment threads it reads as thanks/respect.
func emojiScores() map[string]float64 {
	return map[string]float64{
		// strongly positive
		"😍": 0.9, "🥰": 0.9, "🤩": 0.9, "❤️": 0.9, "❤": 0.8, "💖": 0.8, "💕": 0.8,
		"💯": 0.8, "🥳": 0.8, "😘": 0.8,
		// positive
		"🔥": 0.7, "😊": 0.7, "😀": 0.7, "😃": 0.7, "😄": 0.7, "😁": 0.7, "🎉": 0.7,
		"👏": 0.7, "🙌": 0.7, "🚀": 0.7, "🌟": 0.7, "💪": 0.6, "👍": 0.6, "👌": 0.6,
		"⭐": 0.6, "😎": 0.6, "🏆": 0.7, "💚": 0.7, "💙": 0.7, "✨": 0.5, "⚡": 0.5,
		"✅": 0.5, "🤝": 0.5, "🙂": 0.4, "😇": 0.6, "🤗": 0.6,
		// culturally positive in this domain
		"🙏": 0.6, "🇮🇳": 0.5, "🛵": 0.1,
		// ambiguous laughter, mildly positive
		"😂": 0.3, "🤣": 0.3, "😅": 0.1,
		// neutral to mildly negative
		"😐": 0.0, "😶": 0.0, "🤔": -0.1, "😑": -0.2, "😬": -0.3, "🥵": -0.3,
		// negative
		"🙄": -0.6, "😒": -0.6, "😔": -0.6, "😭": -0.6, "😤": -0.6, "🤦": -0.6,
		"🤦‍♂️": -0.6, "🤦‍♀️": -0.6, "😱": -0.6, "🪫": -0.6, "😞": -0.7, "😢": -0.7,
		"😩": -0.7, "😫": -0.7, "👎": -0.7, "🤡": -0.7, "😠": -0.8, "💩": -0.8, "💔": -0.8,
		"🖕": -0.9, "😡": -0.9, "🤬": -0.9, "🤮": -0.9, "❌": -0.5, "⚠️": -0.4,
	}
}
