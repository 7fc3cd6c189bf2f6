package validate

import (
	"bytes"
	"io"
	"os"

	"ffslot/internal/services"
)

var (
	aiffMagic = []byte("FORM")
	wavMagic  = []byte("RIFF")
)

// IsAIFF reports whether the file starts with the AIFF-family container
// signature. A file shorter than the signature is a read failure, not a
// negative answer.
func IsAIFF(path string) (bool, error) {
	return hasMagic(path, aiffMagic)
}

// IsWAV reports whether the file starts with the WAV-family container
// signature.
func IsWAV(path string) (bool, error) {
	return hasMagic(path, wavMagic)
}

func hasMagic(path string, magic []byte) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, services.Wrap(services.ErrValidation, "validate", "magic", path, err)
	}
	defer f.Close()

	header := make([]byte, len(magic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false, services.Wrap(services.ErrValidation, "validate", "magic", path, err)
	}
	return bytes.Equal(header, magic), nil
}
