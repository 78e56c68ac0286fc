package password

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

const (
	ModePlain  = "plain"
	ModeBcrypt = "bcrypt"
)

// Hasher turns a password into its stored form and checks a candidate
// against that stored form.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(stored, candidate string) bool
}

// New returns the hasher for mode; anything other than bcrypt stores plaintext.
func New(mode string) Hasher {
	if mode == ModeBcrypt {
		return bcryptHasher{cost: bcrypt.DefaultCost}
	}
	return plainHasher{}
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Compare(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (bcryptHasher) Compare(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
