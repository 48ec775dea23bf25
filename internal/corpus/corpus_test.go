package corpus

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

func testSource(t *testing.T, files map[string]string) *zfilesystem.MemFS {
	t.Helper()
	fs := zfilesystem.NewMemFS()
	for name, content := range files {
		if err := fs.WriteFile(name, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fs
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// countingRand records the population size it was asked to draw from.
type countingRand struct {
	n    int
	pick int
}

func (c *countingRand) IntN(n int) int {
	c.n = n
	return c.pick
}

func TestSample(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		pattern   *regexp.Regexp
		transform Transform
		want      string
	}{
		{"male name", "JAMES          3.318  3.318         1\n", NamePattern, Capitalize, "James"},
		{"female name", "MARY           2.629  2.629         1\n", NamePattern, Capitalize, "Mary"},
		{"last name", "SMITH          1.006  1.006         1\n", NamePattern, Capitalize, "Smith"},
		{"occupation", "Doctor\n", OccupationPattern, Title, "Doctor"},
		{"occupation title cased", "software engineer\n", OccupationPattern, Title, "Software Engineer"},
		{"hyphenated occupation", "air-traffic controller\n", OccupationPattern, Title, "Air-Traffic Controller"},
		{"no trailing newline", "JAMES 3.318", NamePattern, Capitalize, "James"},
		{"nil transform", "Doctor\n", OccupationPattern, nil, "Doctor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(testSource(t, map[string]string{"corpus": tt.content}), testRand())
			got, err := r.Sample("corpus", tt.pattern, tt.transform)
			if err != nil {
				t.Fatalf("Sample: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sample = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSampleErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		path    string
		wantErr error
	}{
		{"missing resource", map[string]string{}, "missing.txt", ErrResourceNotFound},
		{"empty file", map[string]string{"empty.txt": ""}, "empty.txt", ErrNoCandidates},
		{"numbers only", map[string]string{"numbers.txt": "12345\n67890\n"}, "numbers.txt", ErrNoCandidates},
		{"blank lines", map[string]string{"blank.txt": "\n\n   \n"}, "blank.txt", ErrNoCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(testSource(t, tt.files), testRand())
			got, err := r.Sample(tt.path, NamePattern, Capitalize)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Sample err = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Sample = %q on error, want empty", got)
			}
		})
	}
}

func TestCandidatesKeepsDuplicates(t *testing.T) {
	content := "JAMES 1\nJAMES 2\n12345\nJOHN 3\n"
	r := NewReader(testSource(t, map[string]string{"m": content}), testRand())

	got, err := r.Candidates("m", NamePattern, Capitalize)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}

	want := []string{"James", "James", "John"}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidatesLongLines(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	content := "JAMES " + long + "\n" + "JOHN\n"
	r := NewReader(testSource(t, map[string]string{"m": content}), testRand())

	got, err := r.Candidates("m", NamePattern, Capitalize)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(got) != 2 || got[0] != "James" || got[1] != "John" {
		t.Errorf("Candidates = %v, want [James John]", got)
	}
}

func TestSampleDrawsFromWholePopulation(t *testing.T) {
	content := "ALPHA\nBRAVO\nCHARLIE\n"
	rng := &countingRand{pick: 2}
	r := NewReader(testSource(t, map[string]string{"c": content}), rng)

	got, err := r.Sample("c", NamePattern, Capitalize)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if rng.n != 3 {
		t.Errorf("drew from population of %d, want 3", rng.n)
	}
	if got != "Charlie" {
		t.Errorf("Sample = %q, want Charlie", got)
	}
}

func TestSampleRereadsResource(t *testing.T) {
	fs := testSource(t, map[string]string{"c": "ALPHA\n"})
	r := NewReader(fs, testRand())

	if got, _ := r.Sample("c", NamePattern, Capitalize); got != "Alpha" {
		t.Fatalf("first Sample = %q, want Alpha", got)
	}

	if err := fs.WriteFile("c", []byte("BRAVO\n"), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if got, _ := r.Sample("c", NamePattern, Capitalize); got != "Bravo" {
		t.Errorf("second Sample = %q, want Bravo (no caching)", got)
	}
}

func TestRepeatedLinesWeightSelection(t *testing.T) {
	content := "ALPHA\nALPHA\nALPHA\nBRAVO\n"
	r := NewReader(testSource(t, map[string]string{"c": content}), testRand())

	counts := map[string]int{}
	for range 2000 {
		got, err := r.Sample("c", NamePattern, Capitalize)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		counts[got]++
	}

	// expected ratio is 3:1
	if counts["Alpha"] < 2*counts["Bravo"] {
		t.Errorf("repeated line not favored: %v", counts)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"JAMES", "James"},
		{"james", "James"},
		{"mCdONALD", "Mcdonald"},
		{"a", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"doctor", "Doctor"},
		{"SOFTWARE ENGINEER", "Software Engineer"},
		{"real estate agent", "Real Estate Agent"},
	}
	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmbeddedCorpus(t *testing.T) {
	r := NewReader(Embedded(), testRand())
	cfg := DefaultConfig()

	for _, path := range []string{cfg.MaleNames, cfg.FemaleNames, cfg.Surnames} {
		got, err := r.Sample(path, NamePattern, Capitalize)
		if err != nil {
			t.Fatalf("Sample %s: %v", path, err)
		}
		if got == "" || got != Capitalize(got) {
			t.Errorf("Sample %s = %q, want capitalized name", path, got)
		}
	}

	job, err := r.Sample(cfg.Occupations, OccupationPattern, Title)
	if err != nil {
		t.Fatalf("Sample occupations: %v", err)
	}
	if job != Title(job) {
		t.Errorf("occupation %q not title cased", job)
	}
}
