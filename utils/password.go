package utils

import "github.com/matthewhartstonge/argon2"

// One config for every hash so stored credentials stay comparable across
// restarts; the encoded form carries its own parameters for verification.
var passwordConfig = argon2.DefaultConfig()

func HashPassword(password string) (string, error) {
	encoded, err := passwordConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
