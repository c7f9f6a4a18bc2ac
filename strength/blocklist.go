package strength

import "strings"

// defaultBlocklist holds literal passwords that are trivially guessable.
// Matching is exact and case-insensitive; substring containment is not
// considered a match.
var defaultBlocklist = []string{
	"123456", "password", "12345678", "qwerty", "123456789",
	"12345", "1234", "111111", "1234567", "dragon",
	"123123", "baseball", "abc123", "football", "monkey",
	"letmein", "shadow", "master", "666666", "qwertyuiop",
	"123321", "mustang", "1234567890", "michael", "superman",
}

type blocklist struct {
	entries map[string]struct{}
}

func newBlocklist(extra []string) *blocklist {
	entries := make(map[string]struct{}, len(defaultBlocklist)+len(extra))
	for _, entry := range defaultBlocklist {
		entries[strings.ToLower(entry)] = struct{}{}
	}
	for _, entry := range extra {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		entries[entry] = struct{}{}
	}

	return &blocklist{entries: entries}
}

func (b *blocklist) Contains(password string) bool {
	if b == nil {
		return false
	}

	_, ok := b.entries[strings.ToLower(password)]
	return ok
}

func (b *blocklist) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
