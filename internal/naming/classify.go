package naming

import "regexp"

// MediaType represents the detected type of media content.
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeMovie
	MediaTypeTV
)

// String returns a human-readable media type name.
func (m MediaType) String() string {
	switch m {
	case MediaTypeMovie:
		return "Movie"
	case MediaTypeTV:
		return "TV Show"
	default:
		return "Unknown"
	}
}

var (
	// S01E02, s1e2, S2024E01 - season/episode marker, any digit width
	seasonEpisodePattern = regexp.MustCompile(`(?i)S[0-9]+E[0-9]+`)
	// four consecutive digits, usually a release year
	yearPattern = regexp.MustCompile(`[0-9]{4}`)
)

// Classify decides what kind of media a filename holds. Season/episode
// markers win over years so "Show.2019.S01E01" is a TV episode, not a
// movie. Filenames with neither marker are unknown; callers leave those
// files alone.
func Classify(filename string) MediaType {
	if seasonEpisodePattern.MatchString(filename) {
		return MediaTypeTV
	}
	if yearPattern.MatchString(filename) {
		return MediaTypeMovie
	}
	return MediaTypeUnknown
}

// TruncateAtYear cuts the string after the leftmost run of four
// consecutive digits. Strings without such a run come back unchanged.
func TruncateAtYear(s string) string {
	loc := yearPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[1]]
}

// TruncateAtSeasonEpisode cuts the string after the leftmost
// season/episode marker. Strings without a marker come back unchanged.
func TruncateAtSeasonEpisode(s string) string {
	loc := seasonEpisodePattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[1]]
}
