package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source is a uniform random selection primitive.
// Implementations must be safe for concurrent use by multiple callers;
// no ordering between draws from different callers is guaranteed.
// Tests substitute a deterministic Source to count and script draws.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n).
	// n must be positive.
	IntN(n int) (int, error)
}

// CryptoSource draws from the operating system's CSPRNG via crypto/rand.
// It is stateless: every draw is independent and unpredictable, and the
// zero value is ready to use.
type CryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// IntN returns a uniformly distributed integer in [0, n).
//
// Range reduction uses rejection sampling rather than a bare modulo.
// A modulo over a range that does not evenly divide 2^64 would favor
// small values; instead, draws below 2^64 mod n are discarded and
// redrawn. The rejection probability is below n/2^64, so the loop
// terminates after one iteration in virtually all cases.
func (s *CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: IntN range must be positive, got %d", n)
	}

	// 2^64 mod n, computed in uint64 arithmetic as (-n) mod n.
	reject := (-uint64(n)) % uint64(n)

	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("random: read from CSPRNG: %w", err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v >= reject {
			return int(v % uint64(n)), nil
		}
	}
}

// PickByte returns one uniformly selected byte from the alphabet.
// The alphabet must be non-empty single-byte characters.
func PickByte(s Source, alphabet string) (byte, error) {
	if len(alphabet) == 0 {
		return 0, fmt.Errorf("random: cannot pick from empty alphabet")
	}
	i, err := s.IntN(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// PickString returns one uniformly selected element of candidates.
func PickString(s Source, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("random: cannot pick from empty candidate list")
	}
	i, err := s.IntN(len(candidates))
	if err != nil {
		return "", err
	}
	return candidates[i], nil
}
