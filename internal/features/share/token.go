package share

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const suffixLength = 6

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// SuffixGenerator yields the random part appended to a share token's slug.
type SuffixGenerator interface {
	GenerateSuffix() (string, error)
}

type randomSuffixGenerator struct{}

func (g *randomSuffixGenerator) GenerateSuffix() (string, error) {
	var builder strings.Builder

	for i := 0; i < suffixLength; i++ {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate token suffix: %w", err)
		}

		builder.WriteByte(suffixAlphabet[index.Int64()])
	}

	return builder.String(), nil
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify derives the human-readable token prefix from a client name:
// lowercased, punctuation stripped, whitespace collapsed to single hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return slug
}
