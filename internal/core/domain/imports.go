package domain

// ImportSpec is a logical import target as written in a stylesheet,
// after quote stripping and extension defaulting.
type ImportSpec struct {
	// Target is the path as it appears in the directive, e.g. "sub.css" or "../base/reset.css".
	Target string
}
