package corpus

import (
	"embed"
	"io/fs"
)

//go:embed data/*
var embedded embed.FS

// Config names the four corpus resources within a Source.
type Config struct {
	MaleNames   string
	FemaleNames string
	Surnames    string
	Occupations string
}

// DefaultConfig returns the standard resource names, matching the files
// shipped in the embedded corpus.
func DefaultConfig() Config {
	return Config{
		MaleNames:   "dist.male.first",
		FemaleNames: "dist.female.first",
		Surnames:    "dist.all.last",
		Occupations: "occupations.txt",
	}
}

// Paths returns every resource name in the config.
func (c Config) Paths() []string {
	return []string{c.MaleNames, c.FemaleNames, c.Surnames, c.Occupations}
}

// Embedded returns the corpus compiled into the binary.
func Embedded() Source {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic("corpus: embedded data: " + err.Error())
	}
	return FromFS(sub)
}

// FromFS adapts an fs.FS into a Source.
func FromFS(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}
