package storage

// MemStorage is an in-memory Storage for tests.
type MemStorage struct {
	Objects map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{Objects: map[string][]byte{}}
}

func (s *MemStorage) Store(path string, content []byte, contentType string, overwrite bool) error {
	if _, ok := s.Objects[path]; ok && !overwrite {
		return ErrAlreadyExists
	}
	s.Objects[path] = content
	return nil
}

func (s *MemStorage) Delete(path string) error {
	delete(s.Objects, path)
	return nil
}

func (s *MemStorage) PublicURL(path string) string {
	return "/receipts/" + path
}

func (s *MemStorage) Cleanup() {
	s.Objects = map[string][]byte{}
}
