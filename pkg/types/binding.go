package types

// Binding pairs a trigger key with the directory images move to when it
// is pressed. Bindings are supplied in order (config first, then flags);
// resolution is last-wins per key.
type Binding struct {
	Key    rune
	Target string
}
