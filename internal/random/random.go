package random

import (
	"crypto/rand"
	"math/big"

	"github.com/myrjola/detective/internal/errors"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Letters returns n cryptographically random ASCII letters. They name in-memory databases and serve as CSP nonces.
func Letters(n uint) (string, error) {
	var (
		letters = make([]rune, n)
		upper   = big.NewInt(int64(len(allowedLetters)))
	)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, upper)
		if err != nil {
			return "", errors.Wrap(err, "random letter index")
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}
