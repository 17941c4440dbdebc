package prefs

// Medium is the storage surface preferences are written to. Implementations
// return ok=false for missing keys and reserve errors for real faults.
type Medium interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Memory is a map-backed Medium for tests and for running without a usable
// preferences database.
type Memory struct {
	m map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.m[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.m[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
