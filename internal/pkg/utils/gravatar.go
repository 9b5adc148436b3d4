package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const gravatarDefaultSize = 200

// GetGravatarURL builds the avatar URL the account endpoint returns for a
// user. Gravatar expects the MD5 of the trimmed, lowercased email; "d=mp"
// falls back to the generic silhouette for addresses without a profile.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = gravatarDefaultSize
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=mp", hex.EncodeToString(hash[:]), size)
}
