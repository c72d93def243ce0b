package guideline

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Document is an opaque guideline text blob fetched from a source.
// The text is never interpreted, only copied verbatim.
type Document struct {
	SourceURI string
	Text      string
	Checksum  string
	FetchedAt time.Time
}

// NewDocument wraps fetched text with its source and content checksum.
func NewDocument(sourceURI, text string) *Document {
	return &Document{
		SourceURI: sourceURI,
		Text:      text,
		Checksum:  ChecksumOf(text),
		FetchedAt: time.Now(),
	}
}

// ChecksumOf returns the SHA-256 hex digest of text.
func ChecksumOf(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
