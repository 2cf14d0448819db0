package credential

import "math/rand/v2"

// Character classes for the generator
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// DefaultLength is the default length for generated secrets
const DefaultLength = 16

// Generate produces a random secret of the given length containing at least
// one character from each of the four classes. One character is seeded from
// each class, the remainder is drawn uniformly from the combined alphabet,
// and the result is shuffled so the seeded characters are not positionally
// predictable. This is a convenience generator, not a security primitive, so
// math/rand is sufficient.
func Generate(length int) string {
	if length < 4 {
		length = 4
	}
	all := upperChars + lowerChars + digitChars + symbolChars

	buf := make([]byte, 0, length)
	buf = append(buf,
		upperChars[rand.IntN(len(upperChars))],
		lowerChars[rand.IntN(len(lowerChars))],
		digitChars[rand.IntN(len(digitChars))],
		symbolChars[rand.IntN(len(symbolChars))],
	)
	for len(buf) < length {
		buf = append(buf, all[rand.IntN(len(all))])
	}

	rand.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})
	return string(buf)
}
