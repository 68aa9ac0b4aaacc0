package external

// ListSpellsInput narrows the SRD spell listing
type ListSpellsInput struct {
	Level   *int
	ClassID string
}
