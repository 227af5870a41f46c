package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	modelRegex   = regexp.MustCompile(`iphone\s*(\d+)`)
	storageRegex = regexp.MustCompile(`(\d+)\s*gb`)
)

// signature is the structural fingerprint parsed from a listing title.
// Model and Storage are empty when the title carries no such token.
type signature struct {
	Model   string
	Variant string
	Storage string
}

// extractSignature parses a listing title into its structural fingerprint.
// It is total: any title, however malformed, yields a signature with
// possibly-empty model/storage and variant defaulting to "base".
func extractSignature(title string) signature {
	t := strings.ToLower(title)

	sig := signature{Variant: "base"}

	if m := modelRegex.FindStringSubmatch(t); m != nil {
		sig.Model = m[1]
	}
	if m := storageRegex.FindStringSubmatch(t); m != nil {
		sig.Storage = m[1]
	}

	// Priority order matters: "pro max" contains "pro"
	switch {
	case strings.Contains(t, "pro max"):
		sig.Variant = "pro max"
	case strings.Contains(t, "pro"):
		sig.Variant = "pro"
	case strings.Contains(t, "plus"):
		sig.Variant = "plus"
	}

	return sig
}

// sameVariant reports whether two signatures describe the same product variant.
// Model and variant must match exactly; storage must match only when both
// sides specify it — a missing storage token acts as a wildcard, which makes
// this relation symmetric but not transitive.
func sameVariant(a, b signature) bool {
	if a.Model != b.Model {
		return false
	}
	if a.Variant != b.Variant {
		return false
	}
	if a.Storage != "" && b.Storage != "" && a.Storage != b.Storage {
		return false
	}
	return true
}
