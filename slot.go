package pixelwriter

// Slot holds the single writer of a surface for the lifetime of the program.
//
// A writer is installed at most once. There is no way to remove or replace it; callers
// pass the [Writer] returned by [Slot.Install] (or the slot itself) to whatever draws.
// A Slot is not safe for concurrent use.
type Slot struct {
	w Writer
}

// Install selects and constructs the writer for config and keeps it in the slot.
//
// It fails with [ErrAlreadyInstalled] once a writer is installed. A failed install,
// for example because of an unsupported format, leaves the slot empty.
func (s *Slot) Install(config *Config) (Writer, error) {
	if s.w != nil {
		return nil, ErrAlreadyInstalled
	}
	w, err := New(config)
	if err != nil {
		return nil, err
	}
	s.w = w
	return w, nil
}

// Writer returns the installed writer, or nil.
func (s *Slot) Writer() Writer {
	return s.w
}

// Installed reports whether a writer is installed.
func (s *Slot) Installed() bool {
	return s.w != nil
}
