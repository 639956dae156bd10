package security

import (
	"crypto/rand"
	"math/big"
)

// Word lists for generating readable invite codes
var codeAdjectives = []string{
	"amber", "bold", "bright", "calm", "cedar", "clear", "coral", "crisp",
	"eager", "early", "fair", "golden", "grand", "hazel", "ivory", "keen",
	"lively", "lunar", "maple", "noble", "north", "olive", "prime", "quiet",
	"rapid", "royal", "silver", "solar", "steady", "summit", "swift", "vivid",
}

var codeNouns = []string{
	"anchor", "beacon", "bridge", "campus", "cedar", "compass", "falcon",
	"harbor", "heron", "lantern", "meadow", "orchard", "osprey", "pioneer",
	"quill", "ridge", "river", "scholar", "sparrow", "summit", "tower",
	"trail", "valley", "voyage",
}

const codeSuffixChars = "abcdefghjkmnpqrstuvwxyz23456789"

// GenerateInviteCode generates a readable registration invite code in the
// format "adjective-noun-xxxx". Used when invite-only mode is enabled.
func GenerateInviteCode() (string, error) {
	adjective, err := randomElement(codeAdjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(codeNouns)
	if err != nil {
		return "", err
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeSuffixChars))))
		if err != nil {
			return "", err
		}
		suffix[i] = codeSuffixChars[num.Int64()]
	}

	return adjective + "-" + noun + "-" + string(suffix), nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
