package person

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/zarlcorp/zperson/internal/corpus"
)

// Rand is the random source threaded through generation.
type Rand = corpus.Rand

// Generator produces person records. Each call re-reads the corpora it
// needs; a Generator holds no state besides its configuration and random
// source.
type Generator struct {
	reader    *corpus.Reader
	cfg       corpus.Config
	rng       Rand
	providers []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source. Use a seeded source for reproducible
// output.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithConfig sets the corpus resource names.
func WithConfig(cfg corpus.Config) Option {
	return func(g *Generator) { g.cfg = cfg }
}

// WithProviders overrides the email provider list.
func WithProviders(p []string) Option {
	return func(g *Generator) { g.providers = p }
}

// New creates a generator reading corpora from src. Without WithRand it
// draws from a PCG source seeded by crypto/rand.
func New(src corpus.Source, opts ...Option) *Generator {
	g := &Generator{
		cfg:       corpus.DefaultConfig(),
		providers: Providers,
	}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(seed(), seed()))
	}
	g.reader = corpus.NewReader(src, g.rng)
	return g
}

// GenerateOptions bounds a generated record. The caller guarantees
// 0 <= MinAge <= MaxAge.
type GenerateOptions struct {
	Sex    Sex // empty for random
	MinAge int
	MaxAge int
}

// Generate produces a complete record. Fields are built in dependency
// order so the email uses the chosen names and the job follows the age.
func (g *Generator) Generate(opts GenerateOptions) (Person, error) {
	sex := g.SelectSex(opts.Sex)

	first, err := g.FirstName(sex)
	if err != nil {
		return Person{}, fmt.Errorf("first name: %w", err)
	}

	last, err := g.LastName()
	if err != nil {
		return Person{}, fmt.Errorf("last name: %w", err)
	}

	email := g.Email(first, last)
	age := g.Age(opts.MinAge, opts.MaxAge)

	job, err := g.Occupation(age)
	if err != nil {
		return Person{}, fmt.Errorf("occupation: %w", err)
	}

	return Person{
		FirstName: first,
		LastName:  last,
		Sex:       sex,
		Email:     email,
		Age:       age,
		Job:       job,
		Phone:     g.Phone(),
	}, nil
}

// SelectSex returns forced in canonical form, or a random sex when forced
// is empty or unrecognized.
func (g *Generator) SelectSex(forced Sex) Sex {
	if forced != "" {
		if s, err := ParseSex(string(forced)); err == nil {
			return s
		}
	}
	return sexes[g.rng.IntN(len(sexes))]
}

// FirstName draws from the female corpus for Female and the male corpus
// otherwise.
func (g *Generator) FirstName(sex Sex) (string, error) {
	path := g.cfg.MaleNames
	if sex == Female {
		path = g.cfg.FemaleNames
	}
	return g.reader.Sample(path, corpus.NamePattern, corpus.Capitalize)
}

// LastName draws from the surname corpus.
func (g *Generator) LastName() (string, error) {
	return g.reader.Sample(g.cfg.Surnames, corpus.NamePattern, corpus.Capitalize)
}

// Age returns a random age in [minAge, maxAge].
func (g *Generator) Age(minAge, maxAge int) int {
	return minAge + g.rng.IntN(maxAge-minAge+1)
}

// Occupation maps an age to a job. Bands are checked in order:
// over RetirementAge is retired, AdultAge and up draws from the
// occupation corpus, anything younger is a child.
func (g *Generator) Occupation(age int) (string, error) {
	switch {
	case age > RetirementAge:
		return JobRetired, nil
	case age >= AdultAge:
		return g.reader.Sample(g.cfg.Occupations, corpus.OccupationPattern, corpus.Title)
	default:
		return JobChild, nil
	}
}

// Email builds first.last@provider from the given names.
func (g *Generator) Email(first, last string) string {
	provider := g.providers[g.rng.IntN(len(g.providers))]
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + provider
}

// Phone generates a fictional number: (AAA) EEE-LLLL.
func (g *Generator) Phone() string {
	// area and exchange codes never start with 0 or 1
	area := 200 + g.rng.IntN(800)
	exchange := 200 + g.rng.IntN(800)
	line := g.rng.IntN(10000)
	return fmt.Sprintf("(%03d) %03d-%04d", area, exchange, line)
}

// seed returns a random uint64 from crypto/rand.
func seed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
