package library

import (
	"testing"

	"github.com/litescript/ls-media-sort/internal/naming"
)

func TestPlannerPlan(t *testing.T) {
	planner := Planner{
		IncomingRoot: "/data/incoming",
		MovieRoot:    "/data/movies",
		TVRoot:       "/data/tv",
	}

	cases := []struct {
		name  string
		entry RawEntry

		wantOK        bool
		wantDest      string
		wantType      naming.MediaType
		wantCandidate string
	}{
		{
			name: "tv episode in its own folder",
			entry: RawEntry{
				SourceDir: "/data/incoming/My Favourite Tv Show-S01",
				Filename:  "My Favourite Tv Show-S01E01.avi",
				Ext:       "avi",
			},
			wantOK:        true,
			wantDest:      "/data/tv/My.Favourite.Tv.Show/My.Favourite.Tv.Show-S01/My.Favourite.Tv.Show-S01E01.avi",
			wantType:      naming.MediaTypeTV,
			wantCandidate: "My Favourite Tv Show-S01",
		},
		{
			name: "episode named by marker only uses directory",
			entry: RawEntry{
				SourceDir: "/data/incoming/Just A Season-S03",
				Filename:  "S03E03.mkv",
				Ext:       "mkv",
			},
			wantOK:        true,
			wantDest:      "/data/tv/Just.A.Season/Just.A.Season-S03/S03E03.mkv",
			wantType:      naming.MediaTypeTV,
			wantCandidate: "Just A Season-S03",
		},
		{
			name: "movie in a release folder",
			entry: RawEntry{
				SourceDir: "/data/incoming/Some Movie Release",
				Filename:  "My Test Movie (2001) [x264].mkv",
				Ext:       "mkv",
			},
			wantOK:        true,
			wantDest:      "/data/movies/My.Test.Movie.2001.mkv",
			wantType:      naming.MediaTypeMovie,
			wantCandidate: "Some Movie Release",
		},
		{
			name: "movie directly in the incoming root",
			entry: RawEntry{
				SourceDir: "/data/incoming",
				Filename:  "the.matrix.1999.mp4",
				Ext:       "mp4",
			},
			wantOK:        true,
			wantDest:      "/data/movies/The.Matrix.1999.mp4",
			wantType:      naming.MediaTypeMovie,
			wantCandidate: "",
		},
		{
			name: "nested episode keeps the first level as candidate",
			entry: RawEntry{
				SourceDir: "/data/incoming/Pack/Disc 2",
				Filename:  "cool show s02e04.mkv",
				Ext:       "mkv",
			},
			wantOK:        true,
			wantDest:      "/data/tv/Cool.Show/Cool.Show-S02/Cool.Show.S02E04.mkv",
			wantType:      naming.MediaTypeTV,
			wantCandidate: "Pack",
		},
		{
			name: "unrecognized pattern is skipped",
			entry: RawEntry{
				SourceDir: "/data/incoming",
				Filename:  "holiday.clip.avi",
				Ext:       "avi",
			},
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, ok := planner.Plan(tc.entry)

			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if plan.Dest != tc.wantDest {
				t.Errorf("dest: got %q, want %q", plan.Dest, tc.wantDest)
			}
			if plan.Type != tc.wantType {
				t.Errorf("type: got %v, want %v", plan.Type, tc.wantType)
			}
			if plan.Candidate != tc.wantCandidate {
				t.Errorf("candidate: got %q, want %q", plan.Candidate, tc.wantCandidate)
			}
			if plan.Source != tc.entry.SourcePath() {
				t.Errorf("source: got %q, want %q", plan.Source, tc.entry.SourcePath())
			}
		})
	}
}

func TestFirstPathComponent(t *testing.T) {
	cases := []struct {
		full string
		base string
		want string
	}{
		{"/data/incoming/Show-S01", "/data/incoming", "Show-S01"},
		{"/data/incoming/Pack/Disc 2", "/data/incoming", "Pack"},
		{"/data/incoming", "/data/incoming", ""},
	}

	for _, tc := range cases {
		if got := FirstPathComponent(tc.full, tc.base); got != tc.want {
			t.Errorf("FirstPathComponent(%q, %q): got %q, want %q", tc.full, tc.base, got, tc.want)
		}
	}
}
