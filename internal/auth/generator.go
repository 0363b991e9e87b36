package auth

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"strconv"
	"sync"
)

const (
	codeMin   = 100000
	codeRange = 900000
)

// Generator produces six-digit numeric codes.
type Generator interface {
	Generate() (string, error)
}

type GeneratorFunc func() (string, error)

func (f GeneratorFunc) Generate() (string, error) { return f() }

// RandomGenerator draws codes from crypto/rand.
type RandomGenerator struct{}

func (RandomGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// SeededGenerator yields a reproducible sequence of codes.
type SeededGenerator struct {
	mu sync.Mutex
	r  *mrand.Rand
}

func NewSeededGenerator(seed uint64) *SeededGenerator {
	return &SeededGenerator{r: mrand.New(mrand.NewPCG(seed, seed^0x5eed))}
}

func (g *SeededGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strconv.Itoa(codeMin + g.r.IntN(codeRange)), nil
}

// SequenceGenerator returns the given codes in order, then
// ErrGeneratorExhausted.
type SequenceGenerator struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func NewSequenceGenerator(codes ...string) *SequenceGenerator {
	return &SequenceGenerator{codes: codes}
}

func (g *SequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next >= len(g.codes) {
		return "", ErrGeneratorExhausted
	}
	c := g.codes[g.next]
	g.next++
	return c, nil
}
