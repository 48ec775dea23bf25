// Package person generates synthetic person records from name and
// occupation corpora. Records are plain values; nothing is stored.
package person

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSex is returned by ParseSex for unrecognized input.
var ErrInvalidSex = errors.New("invalid sex")

// Sex is the sex of a generated person.
type Sex string

const (
	Male   Sex = "Male"
	Female Sex = "Female"
)

var sexes = []Sex{Male, Female}

// ParseSex normalizes s to a canonical Sex. It accepts "male", "m",
// "female" and "f" in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSex, s)
}

// Person holds one generated record.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Sex       Sex    `json:"sex"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Job       string `json:"job"`
	Phone     string `json:"phone_num"`
}

// FullName returns "first last".
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
