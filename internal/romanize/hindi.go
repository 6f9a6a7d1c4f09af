package romanize

// hindiWords maps common Hindi words to casual romanized spellings.
var hindiWords = map[string]string{
	// Pronouns
	"मैं": "main", "तुम": "tum", "आप": "aap", "हम": "hum",
	"वह": "vah", "ये": "ye", "यह": "yeh", "वे": "ve",
	"मेरा": "mera", "मेरी": "meri", "मेरे": "mere",
	"हमारा": "hamara", "हमारी": "hamari", "हमारे": "hamare",

	// Greetings and basics
	"नमस्ते": "namaste", "शुभ": "shubh", "प्रणाम": "pranam",
	"कैसे": "kaise", "हो": "ho", "हूँ": "hoon", "हैं": "hain", "है": "hai",
	"हाँ": "haan", "नहीं": "nahin", "ठीक": "theek",

	// Common verbs
	"करना": "karna", "करते": "karte", "करती": "kartii", "कर": "kar",
	"जाना": "jana", "जाता": "jata", "जाती": "jati",
	"खाना": "khana", "पीना": "peena", "सोना": "sona",
	"देखना": "dekhna", "आना": "aana", "देना": "dena", "लेना": "lena",

	// Time and daily
	"आज": "aaj", "कल": "kal", "अब": "ab", "फिर": "phir",
	"सुबह": "subah", "शाम": "shaam", "रात": "raat", "दिन": "din",
	"सप्ताह": "saptah", "महीना": "mahina", "साल": "saal",

	// Feelings
	"प्यार": "pyaar", "प्रेम": "prem", "खुशी": "khushi",
	"दुख": "dukh", "जीवन": "jeevan", "दिल": "dil",
	"दुनिया": "duniya", "भगवान": "bhagwan",

	// Numbers 1-10
	"एक": "ek", "दो": "do", "तीन": "teen", "चार": "chaar", "पांच": "paanch",
	"छह": "chhah", "सात": "saat", "आठ": "aath", "नौ": "nau", "दस": "das",
}

var hindiChars = map[rune]string{
	// Vowels
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ee",
	'उ': "u", 'ऊ': "oo", 'ऋ': "ri", 'ॠ': "ri",
	'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
	'ॐ': "om",

	// Consonants
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "n",
	'च': "ch", 'छ': "chh", 'ज': "j", 'झ': "jh", 'ञ': "n",
	'ट': "t", 'ठ': "th", 'ड': "d", 'ढ': "dh", 'ण': "n",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",

	// Sibilants and aspirate
	'श': "sh", 'ष': "sh", 'स': "s", 'ह': "h",

	// Nukta letters (borrowed sounds), precomposed U+0958..U+095E
	'\u0958': "q", '\u0959': "kh", '\u095A': "gh", '\u095B': "z",
	'\u095C': "r", '\u095D': "rh", '\u095E': "f",

	// Signs and diacritics
	'ं': "n", 'ँ': "n", 'ः': "h", '़': "", '्': "",
	'ा': "a", 'ि': "i", 'ी': "i", 'ु': "u", 'ू': "u",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au", 'ॉ': "o",
	'ॆ': "e", 'ॊ': "o", 'ृ': "ri",
}

// RomanizeHindi is the dictionary-backed fallback used when the Devanagari
// engine is unavailable. It shares the Urdu token algorithm, including
// punctuation stripping. Decomposed nukta letters are composed first so the
// char map sees one rune per letter.
func RomanizeHindi(text string) string {
	return romanizeTokens(nuktaComposer.Replace(text), hindiWords, hindiChars)
}
