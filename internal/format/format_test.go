package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/zarlcorp/zperson/internal/person"
)

func testPerson() person.Person {
	return person.Person{
		FirstName: "Kory",
		LastName:  "Ahrns",
		Sex:       person.Male,
		Email:     "kory.ahrns@fastmail.com",
		Age:       68,
		Job:       "Retired",
		Phone:     "(705) 385-7324",
	}
}

func TestLine(t *testing.T) {
	want := "Kory Ahrns            68 Male   Retired                       " +
		"(705) 385-7324 kory.ahrns@fastmail.com"
	if got := Line(testPerson()); got != want {
		t.Errorf("Line =\n%q\nwant\n%q", got, want)
	}
}

func TestDetails(t *testing.T) {
	want := strings.Join([]string{
		Border,
		"          PERSON DETAILS",
		Border,
		"First Name     : Kory",
		"Last Name      : Ahrns",
		"Sex            : Male",
		"Age            : 68",
		"Job            : Retired",
		"Phone Num      : (705) 385-7324",
		"Email          : kory.ahrns@fastmail.com",
		Border,
	}, "\n") + "\n"

	if got := Details(testPerson()); got != want {
		t.Errorf("Details =\n%s\nwant\n%s", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"oneline", Oneline, false},
		{"table", Table, false},
		{"pretty", Pretty, false},
		{"json", JSON, false},
		{"JSON", JSON, false},
		{"xml", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("Parse(%q) err = %v, want ErrUnknownFormat", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	for _, name := range Names() {
		f, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if f.String() != name {
			t.Errorf("Format(%d).String() = %q, want %q", f, f.String(), name)
		}
	}
	if got := Format(99).String(); got != "Format(99)" {
		t.Errorf("out of range String() = %q", got)
	}
}

func TestRenderOneline(t *testing.T) {
	var buf bytes.Buffer
	people := []person.Person{testPerson(), testPerson()}
	if err := Oneline.Render(&buf, people); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != Line(testPerson()) {
		t.Errorf("line = %q", lines[0])
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table.Render(&buf, []person.Person{testPerson()}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.String() != Details(testPerson()) {
		t.Errorf("table output =\n%s", buf.String())
	}
}

func TestRenderPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty.Render(&buf, []person.Person{testPerson()}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `{
  "first_name": "Kory",
  "last_name":  "Ahrns",
  "sex":        "Male",
  "email":      "kory.ahrns@fastmail.com",
  "age":        68,
  "job":        "Retired",
  "phone_num":  "(705) 385-7324",
}
`
	if buf.String() != want {
		t.Errorf("pretty output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON.Render(&buf, []person.Person{testPerson()}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}

	keys := []string{"first_name", "last_name", "sex", "email", "age", "job", "phone_num"}
	for _, k := range keys {
		if _, ok := got[0][k]; !ok {
			t.Errorf("missing key %q in %v", k, got[0])
		}
	}
	if got[0]["age"] != float64(68) {
		t.Errorf("age = %v, want 68", got[0]["age"])
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON.Render(&buf, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty render = %q, want []", buf.String())
	}
}

func TestRenderUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := Format(42).Render(&buf, []person.Person{testPerson()})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Render err = %v, want ErrUnknownFormat", err)
	}
}
