package user

import (
	"crypto/rand"
	"math/big"
)

const (
	tempPasswordPrefix = "AmHRIS-"
	tempPasswordSuffix = "!"
	tempPasswordChars  = "abcdefghijklmnopqrstuvwxyz0123456789"
	tempPasswordLength = 8
)

// generateTempPassword returns AmHRIS-xxxxxxxx! with eight random base36 chars.
func generateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordChars[n.Int64()]
	}
	return tempPasswordPrefix + string(buf) + tempPasswordSuffix, nil
}
