package naming

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "brackets parens quotes and ampersand",
			in:   "my.test.movie (2001) file.has[bracket's & parnthesis]",
			want: "my.test.movie.2001.file.has.bracket.s.and.parnthesis",
		},
		{
			name: "ampersand between words",
			in:   "me & my dog-S01E02-halfbaked",
			want: "me.and.my.dog-S01E02-halfbaked",
		},
		{
			name: "mixed separator runs collapse",
			in:   "some..other-.stuff'S05E01-and more stuff",
			want: "some.other.stuff.S05E01-and.more.stuff",
		},
		{
			name: "trailing period stripped",
			in:   "name.",
			want: "name",
		},
		{
			name: "long period run collapses fully",
			in:   "a...b",
			want: "a.b",
		},
		{
			name: "dash period run",
			in:   "a-..b",
			want: "a.b",
		},
		{
			name: "already clean",
			in:   "Already.Clean-Name",
			want: "Already.Clean-Name",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q): got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"my.test.movie (2001) file.has[bracket's & parnthesis]",
		"a...b",
		"a-..b",
		"trailing..",
		"-.-.-.",
		"plain",
		"spaces here   and..there",
		"&&",
		"",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent on %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSanitizeLeavesNoForbiddenCharacters(t *testing.T) {
	inputs := []string{
		"my movie (2001) [x264]",
		"it's a 'quoted' name",
		"ends with period.",
		"ends with many....",
		"[]()' &",
	}

	for _, in := range inputs {
		got := Sanitize(in)
		if strings.ContainsAny(got, " []()'") {
			t.Errorf("Sanitize(%q) = %q still contains a forbidden character", in, got)
		}
		if strings.HasSuffix(got, ".") {
			t.Errorf("Sanitize(%q) = %q ends with a period", in, got)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"s01e01", "S01E01"},
		{"my.favourite.tv.show-s01e01", "My.Favourite.Tv.Show-S01E01"},
		{"x264-group", "X264-Group"},
		{"UPPER CASE", "Upper Case"},
		{"bracket.s.and", "Bracket.S.And"},
		{"", ""},
		{"1234", "1234"},
	}

	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
