// Package sorter orchestrates one sweep of the incoming tree: discover
// video files, move each recognized one into its library spot, then clean
// up the directories the moves emptied.
package sorter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/litescript/ls-media-sort/internal/config"
	"github.com/litescript/ls-media-sort/internal/library"
	"github.com/litescript/ls-media-sort/internal/naming"
)

// Stats tracks aggregate counters across one sweep.
type Stats struct {
	Scanned     int // video files found
	MovedTV     int
	MovedMovies int
	Skipped     int // video files with no recognizable pattern
	Failures    int
	DirsRemoved int
}

// Moved returns the total number of files that were (or, on a dry run,
// would have been) relocated.
func (s Stats) Moved() int {
	return s.MovedTV + s.MovedMovies
}

// PlanResult holds the moves a scan produced plus the scan counters.
type PlanResult struct {
	Plans   []library.MovePlan
	Scanned int
	Skipped int
}

// ProgressEvent reports one processed plan. Err is set when the move failed.
type ProgressEvent struct {
	Index int // 1-based
	Total int
	Plan  library.MovePlan
	Err   error
}

// Runner wires the planner, the mover and the cleaner together for one
// incoming root.
type Runner struct {
	cfg     config.Config
	log     library.Logger
	planner library.Planner
	videos  map[string]bool

	// DryRun logs every planned move without touching the filesystem.
	DryRun bool
}

// New builds a Runner from the config.
func New(cfg config.Config, log library.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: log,
		planner: library.Planner{
			IncomingRoot: cfg.Folders.Incoming,
			MovieRoot:    cfg.Folders.Movies,
			TVRoot:       cfg.Folders.TV,
		},
		videos: cfg.Extensions.VideoSet(),
	}
}

// Plan scans the incoming tree and computes every move without performing
// any. The result feeds Apply directly or a review UI first.
func (r *Runner) Plan() (PlanResult, error) {
	root := r.cfg.Folders.Incoming
	if _, err := os.Stat(root); err != nil {
		return PlanResult{}, err
	}

	var result PlanResult
	r.scan(root, &result)
	return result, nil
}

// scan visits subdirectories before the files of dir itself, so nested
// episodes are handled before the files sitting next to their folder.
func (r *Runner) scan(dir string, result *PlanResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.log.Warnf("scan %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			r.scan(filepath.Join(dir, entry.Name()), result)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if !r.videos[ext] {
			continue
		}
		result.Scanned++

		plan, ok := r.planner.Plan(library.RawEntry{
			SourceDir: dir,
			Filename:  entry.Name(),
			Ext:       ext,
		})
		if !ok {
			r.log.Debugf("no pattern in %s, leaving it", filepath.Join(dir, entry.Name()))
			result.Skipped++
			continue
		}
		result.Plans = append(result.Plans, plan)
	}
}

// Apply performs the planned moves and, unless this is a dry run, sweeps
// the source directories afterwards. progress may be nil; when set it is
// called once per plan, failed or not.
func (r *Runner) Apply(result PlanResult, progress func(ProgressEvent)) Stats {
	stats := Stats{Scanned: result.Scanned, Skipped: result.Skipped}
	candidates := make([]string, 0, len(result.Plans))

	for i, plan := range result.Plans {
		var err error
		if r.DryRun {
			r.log.Infof("dry run: would move %s to %s", plan.Source, plan.Dest)
		} else {
			r.log.Infof("moving %s to %s", plan.Source, plan.Dest)
			err = library.Apply(plan)
		}

		if err != nil {
			r.log.Errorf("%v: unable to move %s to %s", err, plan.Source, plan.Dest)
			stats.Failures++
		} else {
			if plan.Type == naming.MediaTypeTV {
				stats.MovedTV++
			} else {
				stats.MovedMovies++
			}
			if !r.DryRun {
				candidates = append(candidates, plan.Candidate)
			}
		}

		if progress != nil {
			progress(ProgressEvent{Index: i + 1, Total: len(result.Plans), Plan: plan, Err: err})
		}
	}

	if !r.DryRun {
		cleaner := library.Cleaner{
			Root:       r.cfg.Folders.Incoming,
			Recognized: r.cfg.Extensions.RecognizedSet(),
			Log:        r.log,
		}
		stats.DirsRemoved = cleaner.Sweep(candidates)
	}

	return stats
}

// Run plans and applies in one shot.
func (r *Runner) Run() (Stats, error) {
	result, err := r.Plan()
	if err != nil {
		return Stats{}, err
	}
	return r.Apply(result, nil), nil
}
