package tablediff

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint computes a stable content digest for a row. Each value is
// trimmed of surrounding whitespace (missing cells are empty strings already),
// the values are joined with "|" and the result is hashed with MD5, returned
// as lowercase hex. Values containing the separator can collide; the digest
// is used for equality at spreadsheet scale, not for security.
func Fingerprint(row []string) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strings.TrimSpace(v)
	}
	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
