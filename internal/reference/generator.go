// Package reference produces human-facing booking codes: two uppercase
// letters followed by eight decimal digits, e.g. "QT50931268". Codes are not
// guaranteed globally unique; lookups go through the numeric booking id.
package reference

import (
	"math/rand"
	"strings"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Generator interface {
	Generate() string
}

// RandGenerator draws from math/rand's shared source, which is safe for
// concurrent use without extra locking.
type RandGenerator struct{}

func NewGenerator() *RandGenerator {
	return &RandGenerator{}
}

func (g *RandGenerator) Generate() string {
	var sb strings.Builder
	sb.Grow(10)
	for i := 0; i < 2; i++ {
		sb.WriteByte(letters[rand.Intn(len(letters))])
	}
	for i := 0; i < 8; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

var _ Generator = (*RandGenerator)(nil)
