package types

// Result is the outcome of processing one input document.
type Result struct {
	RunID    RunID
	Angle    Angle
	Declared uint32 // count from the header
	Count    int    // inhabitants actually added
	Merged   int    // disjoint shadow intervals after merging
	Total    float64
	Digest   Digest
}
