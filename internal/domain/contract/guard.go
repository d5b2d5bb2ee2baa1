package contract

import (
	"crypto/subtle"
	"errors"
	"strings"

	"pazes_checkout/internal/domain/entities"
)

var (
	ErrContractNotAccepted       = errors.New("contract not accepted")
	ErrContractVersionMismatch   = errors.New("contract version mismatch")
	ErrContractIntegrityMismatch = errors.New("contract integrity mismatch")
)

// Guard verifies that a submitted contract acceptance matches the single
// currently-published contract revision.
//
// ContentHash is the SHA-256 hex digest of the published document; binding
// acceptance to it prevents accepting a stale or tampered contract text.

type Guard struct {
	version     string
	contentHash string
}

func NewGuard(version, contentHash string) *Guard {
	return &Guard{version: version, contentHash: contentHash}
}

// Verify checks acceptance, version and content hash in order and reports the
// first violation only. Reporting a single failure keeps the hash comparison
// from acting as an oracle for the other checks.
func (g *Guard) Verify(a entities.ContractAcceptance) error {
	if !a.Accepted {
		return ErrContractNotAccepted
	}
	if a.Version != g.version {
		return ErrContractVersionMismatch
	}
	if !hexEqualFold(a.ContentHash, g.contentHash) {
		return ErrContractIntegrityMismatch
	}
	return nil
}

// hexEqualFold compares two hex digests case-insensitively in constant time.
func hexEqualFold(a, b string) bool {
	al, bl := strings.ToLower(a), strings.ToLower(b)
	if len(al) != len(bl) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(al), []byte(bl)) == 1
}
