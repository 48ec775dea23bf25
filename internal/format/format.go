// Package format renders person records for display.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zarlcorp/zperson/internal/person"
)

// ErrUnknownFormat is returned by Parse for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown format")

// Border frames the table view.
const Border = "---------------------------------------------"

// Format selects one of the known renderers.
type Format int

const (
	Oneline Format = iota
	Table
	Pretty
	JSON
)

type renderFunc func(io.Writer, []person.Person) error

var formats = [...]struct {
	name   string
	render renderFunc
}{
	Oneline: {"oneline", renderOneline},
	Table:   {"table", renderTable},
	Pretty:  {"pretty", renderPretty},
	JSON:    {"json", renderJSON},
}

// Names lists every format name accepted by Parse.
func Names() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.name
	}
	return names
}

// Parse maps a format name to its Format.
func Parse(name string) (Format, error) {
	for i, f := range formats {
		if strings.EqualFold(name, f.name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formats) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formats[f].name
}

// Render writes people to w.
func (f Format) Render(w io.Writer, people []person.Person) error {
	if f < 0 || int(f) >= len(formats) {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return formats[f].render(w, people)
}

// Line formats a record as a single fixed-width line.
func Line(p person.Person) string {
	return fmt.Sprintf("%-20s %3d %-6s %-29s %-14s %s",
		p.FullName(), p.Age, p.Sex, p.Job, p.Phone, p.Email)
}

// Details formats a record as a bordered block of label: value lines.
func Details(p person.Person) string {
	var b strings.Builder
	b.WriteString(Border + "\n")
	b.WriteString("          PERSON DETAILS\n")
	b.WriteString(Border + "\n")
	for _, f := range Fields(p) {
		fmt.Fprintf(&b, "%-15s: %s\n", f.Label, f.Value)
	}
	b.WriteString(Border + "\n")
	return b.String()
}

// Field is one labeled value of a record.
type Field struct {
	Key   string
	Label string
	Value string
}

// Fields returns the record's values in table order.
func Fields(p person.Person) []Field {
	return []Field{
		{"first_name", "First Name", p.FirstName},
		{"last_name", "Last Name", p.LastName},
		{"sex", "Sex", string(p.Sex)},
		{"age", "Age", strconv.Itoa(p.Age)},
		{"job", "Job", p.Job},
		{"phone_num", "Phone Num", p.Phone},
		{"email", "Email", p.Email},
	}
}

func renderOneline(w io.Writer, people []person.Person) error {
	for _, p := range people {
		if _, err := fmt.Fprintln(w, Line(p)); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, people []person.Person) error {
	for _, p := range people {
		if _, err := io.WriteString(w, Details(p)); err != nil {
			return err
		}
	}
	return nil
}

// pretty dump key order
var prettyKeys = []string{"first_name", "last_name", "sex", "email", "age", "job", "phone_num"}

func renderPretty(w io.Writer, people []person.Person) error {
	for i, p := range people {
		values := make(map[string]string, len(prettyKeys))
		for _, f := range Fields(p) {
			values[f.Key] = f.Value
		}

		var b strings.Builder
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("{\n")
		for _, k := range prettyKeys {
			v := strconv.Quote(values[k])
			if k == "age" {
				v = values[k]
			}
			fmt.Fprintf(&b, "  %-13s %s,\n", strconv.Quote(k)+":", v)
		}
		b.WriteString("}\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, people []person.Person) error {
	if people == nil {
		people = []person.Person{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(people); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
