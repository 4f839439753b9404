package session

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
)

var userClaims = []string{"sub", "email", "uid", "userId"}

// userKeyFromToken reads the token claims without verifying the signature;
// the key only partitions local data, the backend does the real check.
func userKeyFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		for _, name := range userClaims {
			if v := claimString(claims[name]); v != "" {
				return v
			}
		}
	}

	sum := sha256.Sum256([]byte(token))
	return "t" + hex.EncodeToString(sum[:8])
}

func claimString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}
