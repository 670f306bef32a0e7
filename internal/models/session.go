package models

// Session is the in-memory navigation state of one labeling run. Label files
// on disk stay authoritative; annotated only mirrors their existence.
type Session struct {
	dirPath    string
	files      []string
	annotated  []bool
	current    int
	hasCurrent bool
}

// NewSession returns a session with no folder open.
func NewSession() *Session {
	return &Session{}
}

// Reset replaces the whole file sequence. The current index is cleared.
func (s *Session) Reset(dirPath string, files []string, annotated []bool) {
	s.dirPath = dirPath
	s.files = append([]string(nil), files...)
	s.annotated = make([]bool, len(files))
	copy(s.annotated, annotated)
	s.current = 0
	s.hasCurrent = false
}

// IsOpen reports whether a directory has been opened.
func (s *Session) IsOpen() bool {
	return s.dirPath != ""
}

// DirPath returns the open directory, or "" if none.
func (s *Session) DirPath() string {
	return s.dirPath
}

// Current returns the active index, if an image is being shown.
func (s *Session) Current() (int, bool) {
	return s.current, s.hasCurrent
}

// SetCurrent moves to index. It returns false when index is out of range.
func (s *Session) SetCurrent(index int) bool {
	if index < 0 || index >= len(s.files) {
		return false
	}
	s.current = index
	s.hasCurrent = true
	return true
}

// Len returns the number of images in the sequence.
func (s *Session) Len() int {
	return len(s.files)
}

// Files returns a copy of the ordered file names.
func (s *Session) Files() []string {
	return append([]string(nil), s.files...)
}

// File returns the file name at index.
func (s *Session) File(index int) (string, bool) {
	if index < 0 || index >= len(s.files) {
		return "", false
	}
	return s.files[index], true
}

// IndexOf returns the position of name in the sequence, or -1.
func (s *Session) IndexOf(name string) int {
	for i, file := range s.files {
		if file == name {
			return i
		}
	}
	return -1
}

// IsAnnotated reports the annotated flag of an entry.
func (s *Session) IsAnnotated(index int) bool {
	if index < 0 || index >= len(s.annotated) {
		return false
	}
	return s.annotated[index]
}

// MarkAnnotated sets the annotated flag of an entry.
func (s *Session) MarkAnnotated(index int) {
	if index < 0 || index >= len(s.annotated) {
		return
	}
	s.annotated[index] = true
}

// AnnotatedCount returns how many entries have a label file.
func (s *Session) AnnotatedCount() int {
	count := 0
	for _, done := range s.annotated {
		if done {
			count++
		}
	}
	return count
}
