package naming

import (
	"regexp"
	"strings"
)

// ShowIdentity names the library folders a TV episode lands in:
// tv_root/ShowName/SeasonTag/episode file.
type ShowIdentity struct {
	// ShowName is the sanitized, title-cased show name, e.g.
	// "My.Favourite.Tv.Show".
	ShowName string

	// SeasonTag combines the show name and the captured season token,
	// e.g. "My.Favourite.Tv.Show-S01". Used as the season folder name.
	SeasonTag string
}

var (
	leadingSeasonPattern  = regexp.MustCompile(`(?i)^S[0-9]+`)
	seasonTokenPattern    = regexp.MustCompile(`(?i)S[0-9]+`)
	trailingSeasonSuffix  = regexp.MustCompile(`(?i)[-._]S[0-9]+`)
	trailingEpisodeSuffix = regexp.MustCompile(`(?i)[-._]S[0-9]+E[0-9]+`)
)

// NormalizeTVFilename produces the canonical episode filename (without
// extension): lowercase, sanitize, cut after the season/episode marker,
// title-case. "My Favourite Tv Show-S01E01 [x264]" becomes
// "My.Favourite.Tv.Show-S01E01".
func NormalizeTVFilename(name string) string {
	name = strings.ToLower(name)
	name = Sanitize(name)
	name = TruncateAtSeasonEpisode(name)
	return TitleCase(name)
}

// NormalizeMovieTitle produces the canonical movie title from the full
// original filename, extension text included. Case is kept as-is before
// title-casing, so no lowercase pass here.
func NormalizeMovieTitle(filename string) string {
	title := Sanitize(filename)
	title = TruncateAtYear(title)
	return TitleCase(title)
}

// ResolveShowIdentity derives the show name and season tag for a TV
// episode from its filename (without extension) and the first directory
// component under the incoming root.
//
// When the episode filename starts with the season marker itself
// ("S03E03.mkv") the show name has to come from the containing directory;
// otherwise it is the filename with its trailing season/episode suffix
// stripped. When neither carries a recognizable suffix the name is used
// unchanged rather than failing.
func ResolveShowIdentity(firstPathComponent, filename string) ShowIdentity {
	normalized := NormalizeTVFilename(filename)

	var showName string
	if leadingSeasonPattern.MatchString(normalized) {
		dir := TitleCase(Sanitize(firstPathComponent))
		showName = stripFromLastMatch(dir, trailingSeasonSuffix)
	} else {
		showName = stripFromLastMatch(normalized, trailingEpisodeSuffix)
	}

	// The season folder keeps the first season token found in the
	// filename. Episodes without one fall back to the whole normalized
	// name, which keeps them grouped under a stable folder.
	token := seasonTokenPattern.FindString(normalized)
	if token == "" {
		token = normalized
	}

	return ShowIdentity{
		ShowName:  showName,
		SeasonTag: showName + "-" + token,
	}
}

// stripFromLastMatch cuts s just before the last match of re, returning s
// unchanged when re does not match.
func stripFromLastMatch(s string, re *regexp.Regexp) string {
	locs := re.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	return s[:locs[len(locs)-1][0]]
}
