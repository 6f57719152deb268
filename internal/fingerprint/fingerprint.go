// Package fingerprint computes 64-bit DCT perceptual hashes for submitted
// photos and compares them by Hamming distance. Hashes survive JPEG
// requantization but move far apart on real content changes, which is what
// the duplicate check relies on.
package fingerprint

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/corona10/goimagehash"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Fingerprint is a 64-bit perceptual hash rendered as 16 lowercase hex
// characters, the form it is stored in on sighting and cleanup rows.
type Fingerprint string

const hexLen = 16

// SimilarityThreshold is the Hamming distance below which two photos are
// treated as the same image. Tuned for "same photo, different compression".
const SimilarityThreshold = 5

// IncomparableDistance is returned when either fingerprint is malformed. It
// sits far above any plausible threshold so broken rows never match.
const IncomparableDistance = 100

// ErrUndecodable reports image bytes no registered decoder accepts. It is a
// client error, not a server fault.
var ErrUndecodable = errors.New("image bytes are not a recognizable image")

// Compute decodes imageBytes (JPEG, PNG, GIF or WebP) and derives its
// perceptual hash. Deterministic for identical pixel content.
func Compute(imageBytes []byte) (Fingerprint, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUndecodable, err.Error())
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return "", fmt.Errorf("perception hash: %w", err)
	}

	return Fingerprint(fmt.Sprintf("%016x", hash.GetHash())), nil
}

// Distance returns the Hamming distance between two fingerprints, or
// IncomparableDistance when either side cannot be parsed.
func Distance(a, b Fingerprint) int {
	ha, err := a.imageHash()
	if err != nil {
		return IncomparableDistance
	}

	hb, err := b.imageHash()
	if err != nil {
		return IncomparableDistance
	}

	d, err := ha.Distance(hb)
	if err != nil {
		return IncomparableDistance
	}

	return d
}

// Similar reports whether two fingerprints fall inside the duplicate
// threshold.
func Similar(a, b Fingerprint) bool {
	return Distance(a, b) < SimilarityThreshold
}

func (f Fingerprint) String() string { return string(f) }

func (f Fingerprint) imageHash() (*goimagehash.ImageHash, error) {
	if len(f) != hexLen {
		return nil, fmt.Errorf("fingerprint %q: want %d hex chars", string(f), hexLen)
	}

	bits, err := strconv.ParseUint(string(f), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("fingerprint %q: %w", string(f), err)
	}

	return goimagehash.NewImageHash(bits, goimagehash.PHash), nil
}
