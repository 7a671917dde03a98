package catalog

import "fmt"

const defaultLanguage = "english"

// BuildQuery composes the free-text catalog search string from the detected
// emotion and the caller's preferences. All four tokens are always present;
// an empty artist leaves a trailing space, which the catalog tolerates.
// This is the single point coupling the emotion taxonomy to search semantics.
func BuildQuery(emotion, language, artist string) string {
	if language == "" {
		language = defaultLanguage
	}
	return fmt.Sprintf("%s mood %s songs %s", emotion, language, artist)
}
