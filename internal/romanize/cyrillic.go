package romanize

import iuliia "github.com/mehanizm/iuliia-go"

// romanizeCyrillic transliterates Russian Cyrillic using the Wikipedia
// scheme. Serbian and other Cyrillic text gets a best-effort rendering
// through the same tables.
func romanizeCyrillic(text string) string {
	return iuliia.Wikipedia.Translate(text)
}
