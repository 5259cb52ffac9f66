package http

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// PinSet is a set of SHA-256 fingerprints of DER-encoded subject public key
// infos. An empty or nil set accepts every key.
type PinSet struct {
	fingerprints map[string]struct{}
}

// NewPinSet validates and normalizes fingerprints. Each one is 64 hexadecimal
// characters, case-insensitive, optionally separated by colons.
func NewPinSet(fingerprints ...string) (*PinSet, error) {
	pins := &PinSet{fingerprints: make(map[string]struct{}, len(fingerprints))}

	for _, fingerprint := range fingerprints {
		normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(fingerprint), ":", ""))

		decoded, err := hex.DecodeString(normalized)
		if err != nil || len(decoded) != sha256.Size {
			return nil, fmt.Errorf("%w: %q", eventline.ErrInvalidFingerprint, fingerprint)
		}

		pins.fingerprints[normalized] = struct{}{}
	}

	return pins, nil
}

// Fingerprint returns the lowercase hex SHA-256 digest of the public key of
// cert.
func Fingerprint(cert *x509.Certificate) string {
	sum := sha256.Sum256(cert.RawSubjectPublicKeyInfo)

	return hex.EncodeToString(sum[:])
}

// Len returns the number of pinned keys.
func (p *PinSet) Len() int {
	if p == nil {
		return 0
	}

	return len(p.fingerprints)
}

// Contains reports whether fingerprint is pinned.
func (p *PinSet) Contains(fingerprint string) bool {
	if p == nil {
		return false
	}

	_, found := p.fingerprints[strings.ToLower(fingerprint)]

	return found
}

// Fingerprints returns the pinned fingerprints in sorted order.
func (p *PinSet) Fingerprints() []string {
	if p == nil {
		return nil
	}

	fingerprints := make([]string, 0, len(p.fingerprints))
	for fingerprint := range p.fingerprints {
		fingerprints = append(fingerprints, fingerprint)
	}

	sort.Strings(fingerprints)

	return fingerprints
}

// VerifyConnection is installed as tls.Config.VerifyConnection. It runs after
// standard chain validation and only inspects connections whose chain was
// verified; the leaf key must then match one of the pins.
func (p *PinSet) VerifyConnection(cs tls.ConnectionState) error {
	if p.Len() == 0 || len(cs.VerifiedChains) == 0 {
		return nil
	}

	if len(cs.PeerCertificates) == 0 {
		return constants.ErrNoPeerCertificate
	}

	fingerprint := Fingerprint(cs.PeerCertificates[0])
	if !p.Contains(fingerprint) {
		return fmt.Errorf("%w: %s", constants.ErrPinMismatch, fingerprint)
	}

	return nil
}
