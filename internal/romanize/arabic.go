package romanize

// arabicChars is a crude readable transliteration for Arabic and Persian
// script. Not IPA; just enough to pronounce.
var arabicChars = map[rune]string{
	'ا': "a", 'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j", 'ح': "h", 'خ': "kh",
	'د': "d", 'ذ': "dh", 'ر': "r", 'ز': "z", 'س': "s", 'ش': "sh", 'ص': "s",
	'ض': "d", 'ط': "t", 'ظ': "z", 'ع': "'", 'غ': "gh", 'ف': "f", 'ق': "q",
	'ک': "k", 'گ': "g", 'ل': "l", 'م': "m", 'ن': "n", 'و': "u", 'ه': "h",
	'ی': "y", 'ء': "'", 'أ': "a", 'إ': "i", 'ؤ': "u", 'ئ': "i", 'ى': "a",
	'آ': "aa", 'ة': "a", 'چ': "che", 'ي': "i", 'ك': "ek", 'پ': "p",
}

// RomanizeArabic maps every character independently; unknown characters
// pass through, so the output is stable under repeated application.
func RomanizeArabic(text string) string {
	return mapRunes(text, arabicChars)
}
