package fingerprint_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidewatch/backend/internal/fingerprint"
)

// gradientImage is a smooth diagonal ramp, a stand-in for a real photo's
// low-frequency structure.
func gradientImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			v := uint8((x + y) / 2)
			img.Set(x, y, color.RGBA{R: v, G: uint8(255 - int(v)), B: v / 2, A: 255})
		}
	}
	return img
}

func noiseImage(seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image, quality int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func TestCompute(t *testing.T) {
	t.Run("deterministic for identical bytes", func(t *testing.T) {
		data := encodePNG(t, gradientImage())

		first, err := fingerprint.Compute(data)
		require.NoError(t, err)

		second, err := fingerprint.Compute(data)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, string(first), 16)
	})

	t.Run("undecodable bytes rejected", func(t *testing.T) {
		_, err := fingerprint.Compute([]byte("definitely not an image"))
		assert.ErrorIs(t, err, fingerprint.ErrUndecodable)
	})

	t.Run("empty bytes rejected", func(t *testing.T) {
		_, err := fingerprint.Compute(nil)
		assert.ErrorIs(t, err, fingerprint.ErrUndecodable)
	})
}

func TestDistance(t *testing.T) {
	t.Run("same pixels across containers", func(t *testing.T) {
		img := gradientImage()

		fromPNG, err := fingerprint.Compute(encodePNG(t, img))
		require.NoError(t, err)

		fromJPEG, err := fingerprint.Compute(encodeJPEG(t, img, 85))
		require.NoError(t, err)

		assert.Less(t, fingerprint.Distance(fromPNG, fromJPEG), fingerprint.SimilarityThreshold)
	})

	t.Run("jpeg requantization stays under threshold", func(t *testing.T) {
		img := gradientImage()

		high, err := fingerprint.Compute(encodeJPEG(t, img, 90))
		require.NoError(t, err)

		low, err := fingerprint.Compute(encodeJPEG(t, img, 60))
		require.NoError(t, err)

		assert.Less(t, fingerprint.Distance(high, low), fingerprint.SimilarityThreshold)
		assert.True(t, fingerprint.Similar(high, low))
	})

	t.Run("unrelated images are far apart", func(t *testing.T) {
		photo, err := fingerprint.Compute(encodePNG(t, gradientImage()))
		require.NoError(t, err)

		noise, err := fingerprint.Compute(encodePNG(t, noiseImage(42)))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, fingerprint.Distance(photo, noise), fingerprint.SimilarityThreshold)
		assert.False(t, fingerprint.Similar(photo, noise))
	})

	t.Run("identical fingerprints have distance zero", func(t *testing.T) {
		fp, err := fingerprint.Compute(encodePNG(t, gradientImage()))
		require.NoError(t, err)

		assert.Equal(t, 0, fingerprint.Distance(fp, fp))
	})

	t.Run("malformed fingerprints are incomparable", func(t *testing.T) {
		valid, err := fingerprint.Compute(encodePNG(t, gradientImage()))
		require.NoError(t, err)

		cases := []fingerprint.Fingerprint{"", "zzzz", "0123", fingerprint.Fingerprint("xx23456789abcdef")}
		for _, malformed := range cases {
			assert.Equal(t, fingerprint.IncomparableDistance, fingerprint.Distance(valid, malformed))
			assert.Equal(t, fingerprint.IncomparableDistance, fingerprint.Distance(malformed, valid))
			assert.False(t, fingerprint.Similar(valid, malformed))
		}
	})
}
