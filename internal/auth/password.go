package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the admin console password. A non-positive cost falls
// back to the bcrypt default so a missing AUTH_BCRYPT_COST cannot weaken the
// hash below the library floor.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a login attempt against the stored admin hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
