package referral

import (
	"context"
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"

	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/pkg/domain"
)

const (
	// CodeLength is the length of generated referral codes.
	CodeLength = 8

	// maxCodeAttempts bounds the collision retry loop. When every candidate
	// collides we fail loudly instead of handing out a duplicate code.
	maxCodeAttempts = 10

	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// codePattern matches codes accepted at attribution time. Generated codes
// are always 8 characters; imported campaign codes may be 6-12.
var codePattern = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

// ValidCodeFormat reports whether a code has the accepted charset and length.
func ValidCodeFormat(code string) bool {
	return codePattern.MatchString(code)
}

// GenerateCode produces a referral code that is unique among all referral
// accounts. The first candidate is derived from the seed (usually the owner's
// username) so codes stay recognizable; subsequent candidates are random.
func (s *Service) GenerateCode(ctx context.Context, seed string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		var candidate string
		var err error

		if attempt == 0 && seed != "" {
			candidate, err = seededCandidate(seed)
		} else {
			candidate, err = randomChars(CodeLength)
		}
		if err != nil {
			return "", fmt.Errorf("failed to generate code candidate: %w", err)
		}

		exists, err := s.db.ReferralAccount.
			Query().
			Where(referralaccount.CodeEQ(candidate)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}

		if !exists {
			return candidate, nil
		}
	}

	return "", domain.NewCodeExhaustedError(maxCodeAttempts)
}

// seededCandidate builds a code from the first four usable characters of the
// seed followed by four random base-36 characters.
func seededCandidate(seed string) (string, error) {
	prefix := sanitizeSeed(seed)

	pad, err := randomChars(CodeLength - len(prefix))
	if err != nil {
		return "", err
	}

	return prefix + pad, nil
}

// sanitizeSeed uppercases the seed and strips everything outside the code
// charset, keeping at most four characters.
func sanitizeSeed(seed string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(seed) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 4 {
				break
			}
		}
	}
	return b.String()
}

// randomChars returns n cryptographically random characters from the code
// charset.
func randomChars(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(out), nil
}
