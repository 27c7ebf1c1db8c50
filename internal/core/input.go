package core

// KeySet is the live "currently pressed" input state.
// It is owned and mutated by the platform layer; game entities only read it.
type KeySet map[string]bool

// NewKeySet creates an empty key set.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Press marks a key as held.
func (k KeySet) Press(key string) {
	k[key] = true
}

// Release marks a key as no longer held.
func (k KeySet) Release(key string) {
	k[key] = false
}

// Pressed reports whether the key is currently held.
// Reading a nil set is allowed and reports nothing pressed.
func (k KeySet) Pressed(key string) bool {
	return k[key]
}

// Clear releases every key.
func (k KeySet) Clear() {
	for key := range k {
		delete(k, key)
	}
}
