package translit

// Mapping tables for Uyghur Arabic script ↔ ULY conversion.
//
// All tables are built once at package initialization and are exposed for
// callers that need the raw data. They must not be modified.

// CoreArabicLatin maps the 32 letters of the Uyghur Arabic alphabet to their
// ULY equivalents. Values may be multi-character ("ch", "ng") or empty: the
// hamza carrier ئ is a vowel-initial marker with no Latin counterpart.
var CoreArabicLatin = map[rune]string{
	'ا': "a",  // ا
	'ە': "e",  // ە
	'ب': "b",  // ب
	'پ': "p",  // پ
	'ت': "t",  // ت
	'ج': "j",  // ج
	'چ': "ch", // چ
	'خ': "x",  // خ
	'د': "d",  // د
	'ر': "r",  // ر
	'ز': "z",  // ز
	'ژ': "zh", // ژ
	'س': "s",  // س
	'ش': "sh", // ش
	'غ': "gh", // غ
	'ف': "f",  // ف
	'ق': "q",  // ق
	'ك': "k",  // ك
	'گ': "g",  // گ
	'ڭ': "ng", // ڭ
	'ل': "l",  // ل
	'م': "m",  // م
	'ن': "n",  // ن
	'ھ': "h",  // ھ
	'و': "o",  // و
	'ۇ': "u",  // ۇ
	'ۆ': "ö",  // ۆ
	'ۈ': "ü",  // ۈ
	'ۋ': "w",  // ۋ
	'ې': "é",  // ې
	'ى': "i",  // ى
	'ي': "y",  // ي
	'ئ': "",   // ئ — hamza carrier, dropped
}

// CoreLatinArabic maps lowercase ULY single letters to Uyghur Arabic letters.
// Both é (common ULY) and ë (older romanizations) map to ې, and v is accepted
// as an alias for w. Digraphs are handled separately (see Digraphs).
var CoreLatinArabic = map[rune]rune{
	'a': 'ا', // ا
	'e': 'ە', // ە
	'b': 'ب', // ب
	'p': 'پ', // پ
	't': 'ت', // ت
	'j': 'ج', // ج
	'x': 'خ', // خ
	'd': 'د', // د
	'r': 'ر', // ر
	'z': 'ز', // ز
	's': 'س', // س
	'f': 'ف', // ف
	'q': 'ق', // ق
	'k': 'ك', // ك
	'g': 'گ', // گ
	'l': 'ل', // ل
	'm': 'م', // م
	'n': 'ن', // ن
	'h': 'ھ', // ھ
	'o': 'و', // و
	'u': 'ۇ', // ۇ
	'ö': 'ۆ', // ۆ
	'ü': 'ۈ', // ۈ
	'w': 'ۋ', // ۋ
	'v': 'ۋ', // ۋ (alias)
	'é': 'ې', // ې
	'ë': 'ې', // ې (alias)
	'i': 'ى', // ى
	'y': 'ي', // ي
}

// SpecialChars maps Arabic-script punctuation and formatting characters to
// ASCII equivalents or to deletion (empty string).
var SpecialChars = map[rune]string{
	'ـ': "",   // ـ tatweel
	'ً': "",   // ً fathatan
	'ٌ': "",   // ٌ dammatan
	'ٍ': "",   // ٍ kasratan
	'َ': "",   // َ fatha
	'ُ': "",   // ُ damma
	'ِ': "",   // ِ kasra
	'ّ': "",   // ّ shadda
	'ْ': "",   // ْ sukun
	'،': ",",  // ، Arabic comma
	'؛': ";",  // ؛ Arabic semicolon
	'؟': "?",  // ؟ Arabic question mark
	'۔': ".",  // ۔ Arabic full stop
	'٪': "%",  // ٪ Arabic percent sign
	'«': "\"", // « left guillemet
	'»': "\"", // » right guillemet
}

// Loanwords maps Arabic and Persian letters that occur only in loanwords to
// their nearest ULY approximation. These mappings are many-to-one and lossy:
// ح/ھ both become h, ص/س/ث all become s, ط/ت both become t.
var Loanwords = map[rune]string{
	'ح': "h", // ح
	'ص': "s", // ص
	'ط': "t", // ط
	'ظ': "z", // ظ
	'ض': "d", // ض
	'ذ': "z", // ذ
	'ث': "s", // ث
	'ع': "",  // ع — ayn, dropped
	'ء': "",  // ء — standalone hamza, dropped
	'أ': "a", // أ
	'إ': "a", // إ
	'آ': "a", // آ
	'ؤ': "u", // ؤ
	'ة': "e", // ة
	'ه': "h", // ه Arabic heh
	'ی': "i", // ی Farsi yeh
	'ک': "k", // ک kehah
}

// ArabicIndicDigits maps the Arabic-Indic digits U+0660–U+0669 to ASCII.
var ArabicIndicDigits = map[rune]rune{
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// ExtendedArabicIndicDigits maps the Extended Arabic-Indic (Persian/Urdu)
// digits U+06F0–U+06F9 to ASCII. One-directional: no Western→Extended
// conversion exists anywhere in this module.
var ExtendedArabicIndicDigits = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
}

// CompleteArabicLatin is CoreArabicLatin overlaid with SpecialChars,
// Loanwords, and both digit maps, in that order (later entries win on key
// collision). This is the table ArabicToLatin scans with.
var CompleteArabicLatin = buildComplete()

func buildComplete() map[rune]string {
	m := make(map[rune]string, len(CoreArabicLatin)+len(SpecialChars)+
		len(Loanwords)+len(ArabicIndicDigits)+len(ExtendedArabicIndicDigits))
	for k, v := range CoreArabicLatin {
		m[k] = v
	}
	for k, v := range SpecialChars {
		m[k] = v
	}
	for k, v := range Loanwords {
		m[k] = v
	}
	for k, v := range ArabicIndicDigits {
		m[k] = string(v)
	}
	for k, v := range ExtendedArabicIndicDigits {
		m[k] = string(v)
	}
	return m
}

// Digraphs lists the ULY letter pairs that map to a single Arabic letter.
// They are matched before single letters in LatinToArabic. No digraph is a
// prefix of another, so match order among them is irrelevant.
var Digraphs = []string{"ch", "zh", "sh", "gh", "ng"}

// digraphArabic maps each digraph to its Arabic letter.
var digraphArabic = map[string]rune{
	"ch": 'چ', // چ
	"zh": 'ژ', // ژ
	"sh": 'ش', // ش
	"gh": 'غ', // غ
	"ng": 'ڭ', // ڭ
}
