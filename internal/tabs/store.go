package tabs

// Store is the persistence dependency for the last-selected language.
// Implementations must treat "" as "nothing persisted". Failures are not
// part of the contract: a store that cannot read returns "", a store that
// cannot write drops the value. The controller never learns the difference.
type Store interface {
	// Get returns the persisted language code, or "" when nothing was
	// ever persisted.
	Get() string

	// Set persists the language code, replacing any previous value.
	Set(code string)
}

// MemoryStore is an in-process Store. It backs tests and sessions where no
// configuration file is available; selections then last for the process
// lifetime only.
type MemoryStore struct {
	code string
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored language code, or "" when nothing was stored.
func (s *MemoryStore) Get() string {
	return s.code
}

// Set stores the language code.
func (s *MemoryStore) Set(code string) {
	s.code = code
}
