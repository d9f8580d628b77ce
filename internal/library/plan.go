// Package library places classified media files into a scraper-friendly
// library layout and cleans up the incoming directories they came from.
// Planning is pure; applying a plan performs exactly one filesystem move.
package library

import (
	"path/filepath"
	"strings"

	"github.com/litescript/ls-media-sort/internal/naming"
)

// RawEntry describes one file discovered under the incoming root.
type RawEntry struct {
	SourceDir string // absolute directory holding the file
	Filename  string // base name including extension
	Ext       string // lowercase extension without the leading period
}

// SourcePath returns the full path of the entry's file.
func (e RawEntry) SourcePath() string {
	return filepath.Join(e.SourceDir, e.Filename)
}

// MovePlan is one planned relocation of a recognized media file.
type MovePlan struct {
	Source string
	Dest   string
	Type   naming.MediaType

	// Show is set for TV episodes only.
	Show naming.ShowIdentity

	// Candidate is the first directory component of the source relative
	// to the incoming root, "" for files sitting in the root itself. It
	// becomes a cleanup candidate once the move succeeds.
	Candidate string
}

// Planner computes destination paths for entries below the incoming root.
type Planner struct {
	IncomingRoot string
	MovieRoot    string
	TVRoot       string
}

// Plan classifies the entry and computes where it belongs. ok is false
// when the filename carries no recognizable pattern; such files are left
// alone and never produce a cleanup candidate.
func (p Planner) Plan(entry RawEntry) (plan MovePlan, ok bool) {
	candidate := FirstPathComponent(entry.SourceDir, p.IncomingRoot)

	switch naming.Classify(entry.Filename) {
	case naming.MediaTypeTV:
		base := strings.TrimSuffix(entry.Filename, filepath.Ext(entry.Filename))
		show := naming.ResolveShowIdentity(candidate, base)
		filename := naming.NormalizeTVFilename(base) + "." + entry.Ext

		return MovePlan{
			Source:    entry.SourcePath(),
			Dest:      filepath.Join(p.TVRoot, show.ShowName, show.SeasonTag, filename),
			Type:      naming.MediaTypeTV,
			Show:      show,
			Candidate: candidate,
		}, true

	case naming.MediaTypeMovie:
		// The title is derived from the whole original filename,
		// extension text included; the real extension is re-appended
		// from the separately captured value.
		title := naming.NormalizeMovieTitle(entry.Filename)

		return MovePlan{
			Source:    entry.SourcePath(),
			Dest:      filepath.Join(p.MovieRoot, title+"."+entry.Ext),
			Type:      naming.MediaTypeMovie,
			Candidate: candidate,
		}, true

	default:
		return MovePlan{}, false
	}
}

// FirstPathComponent returns the first directory of fullPath relative to
// base, or "" when fullPath is base itself.
func FirstPathComponent(fullPath, base string) string {
	rel, err := filepath.Rel(base, fullPath)
	if err != nil || rel == "." {
		return ""
	}
	return strings.Split(rel, string(filepath.Separator))[0]
}
