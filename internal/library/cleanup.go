package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Cleaner deletes incoming subdirectories once their media files have
// moved out, as long as nothing recognizable is left behind.
type Cleaner struct {
	// Root is the incoming directory. Candidates resolve below it; the
	// root itself is never deleted.
	Root string

	// Recognized holds every configured extension (video, audio,
	// document and other sets combined), lowercase without the period.
	// A directory holding any file with a recognized extension survives
	// the sweep, whatever the reason it is still there.
	Recognized map[string]bool

	Log Logger
}

// Sweep evaluates each candidate directory once (duplicates and the ""
// candidate are skipped) and removes the ones that hold nothing
// recognizable. Returns the number of directories removed.
func (c *Cleaner) Sweep(candidates []string) int {
	seen := make(map[string]bool, len(candidates))
	removed := 0

	for _, candidate := range candidates {
		// "" means the file sat in the incoming root itself; there is
		// no directory to clean and the root must never be deleted.
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true

		target := filepath.Clean(filepath.Join(c.Root, candidate))
		if _, err := os.Stat(target); err != nil {
			// Already gone, e.g. removed as part of an earlier
			// candidate's subtree.
			continue
		}

		if !c.deletable(target) {
			c.Log.Debugf("keeping %s: recognized files remain", target)
			continue
		}

		// Re-check right before the destructive call; the target may
		// have vanished since the scan.
		if _, err := os.Stat(target); err != nil {
			continue
		}
		if err := os.RemoveAll(target); err != nil {
			c.Log.Errorf("remove %s: %v", target, err)
			continue
		}
		c.Log.Infof("removed directory: %s", target)
		removed++
	}

	return removed
}

// deletable reports whether the directory may be removed: it is empty,
// or its whole subtree holds no file with a recognized extension.
func (c *Cleaner) deletable(target string) bool {
	entries, err := os.ReadDir(target)
	if err != nil {
		return false
	}
	if len(entries) == 0 {
		return true
	}

	found := false
	filepath.WalkDir(target, func(path string, d fs.DirEntry, walkErr error) error {
		if found {
			return fs.SkipAll
		}
		if walkErr != nil {
			// Can't prove the subtree is safe to delete, keep it.
			found = true
			return fs.SkipAll
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name()), "."))
		if c.Recognized[ext] {
			found = true
			return fs.SkipAll
		}
		return nil
	})

	return !found
}
