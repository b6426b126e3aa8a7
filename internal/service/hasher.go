package service

import "golang.org/x/crypto/bcrypt"

// CredentialHasher digests plaintext credentials. The user service depends
// on this interface only, so the hashing policy stays swappable.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// BcryptHasher is the default CredentialHasher.
type BcryptHasher struct {
	// Cost overrides bcrypt.DefaultCost when positive.
	Cost int
}

func (h BcryptHasher) cost() int {
	if h.Cost > 0 {
		return h.Cost
	}
	return bcrypt.DefaultCost
}

// Hash returns the bcrypt digest of the plaintext.
func (h BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether the plaintext matches the digest.
func (h BcryptHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
