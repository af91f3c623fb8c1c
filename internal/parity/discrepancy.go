package parity

// Kind classifies a discrepancy.
type Kind int

const (
	// KindMissingFile marks a locale directory without its resource file.
	KindMissingFile Kind = iota + 1
	// KindMissingKeys marks baseline keys absent from a locale.
	KindMissingKeys
	// KindExtraKeys marks locale keys absent from the baseline.
	KindExtraKeys
	// KindPlaceholderMismatch marks a shared key whose placeholders differ.
	KindPlaceholderMismatch
)

// String returns the machine-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMissingFile:
		return "missing_file"
	case KindMissingKeys:
		return "missing_keys"
	case KindExtraKeys:
		return "extra_keys"
	case KindPlaceholderMismatch:
		return "placeholder_mismatch"
	default:
		return "unknown"
	}
}

// Discrepancy is one parity violation for a locale.
type Discrepancy struct {
	Kind   Kind
	Locale string
	// Keys is set for KindMissingKeys and KindExtraKeys, sorted.
	Keys []string
	// Key, Expected and Actual are set for KindPlaceholderMismatch.
	Key      string
	Expected Placeholders
	Actual   Placeholders
}

// MissingFile builds a KindMissingFile discrepancy.
func MissingFile(locale string) Discrepancy {
	return Discrepancy{Kind: KindMissingFile, Locale: locale}
}

// MissingKeys builds a KindMissingKeys discrepancy.
func MissingKeys(locale string, keys []string) Discrepancy {
	return Discrepancy{Kind: KindMissingKeys, Locale: locale, Keys: keys}
}

// ExtraKeys builds a KindExtraKeys discrepancy.
func ExtraKeys(locale string, keys []string) Discrepancy {
	return Discrepancy{Kind: KindExtraKeys, Locale: locale, Keys: keys}
}

// PlaceholderMismatch builds a KindPlaceholderMismatch discrepancy.
func PlaceholderMismatch(locale string, key string, expected Placeholders, actual Placeholders) Discrepancy {
	return Discrepancy{
		Kind:     KindPlaceholderMismatch,
		Locale:   locale,
		Key:      key,
		Expected: expected,
		Actual:   actual,
	}
}
