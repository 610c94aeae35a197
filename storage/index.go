package storage

import (
	"errors"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/vek/vector"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidID is returned when a vector name can not be used as a file name.
	ErrInvalidID = errors.New("invalid vector name")
	// ErrExists is returned by Create when the name is already taken.
	ErrExists = errors.New("vector already exists")
	// ErrRecordNotFound is returned when no vector is mapped to the queried name.
	ErrRecordNotFound = errors.New("vector not found")

	pathSep   = string(os.PathSeparator)
	nameParse = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_\-]*$`)
)

// ValidName returns true if name can identify a vector of a Store.
func ValidName(name string) bool {
	return nameParse.MatchString(name)
}

// Store maps names to vectors and persists each of them in its own data file
// inside a folder, every mutation is flushed to disk before it becomes visible.
type Store[T vector.Float] struct {
	sync.RWMutex
	dataPath    string
	compression Compression
	index       map[string]*vector.Vector[T]
	files       map[string]string
}

// Open creates a Store for the folder dataPath, new files are written with
// the given compression. Nothing is read until Load is called.
func Open[T vector.Float](dataPath string, compression Compression) *Store[T] {
	if !strings.HasSuffix(dataPath, pathSep) {
		dataPath += pathSep
	}
	return &Store[T]{
		dataPath:    dataPath,
		compression: compression,
		index:       make(map[string]*vector.Vector[T]),
		files:       make(map[string]string),
	}
}

// Load enumerates data files in the folder, deserializing them and mapping
// them by name. Previously loaded vectors are dropped.
func (s *Store[T]) Load() error {
	s.Lock()
	defer s.Unlock()

	absPath, files, err := ListPath(s.dataPath)
	if err != nil {
		return err
	}

	s.dataPath = absPath + pathSep
	s.index = make(map[string]*vector.Vector[T])
	s.files = make(map[string]string)
	if nfiles := len(files); nfiles > 0 {
		log.Info("loading %d data files from %s ...", nfiles, s.dataPath)
		for name, fileName := range files {
			if !ValidName(name) {
				log.Warning("skipping %s: invalid vector name", fileName)
				continue
			}
			v, err := vector.New[T](0, vector.Undefined)
			if err != nil {
				return err
			} else if err = Load(fileName, v); err != nil {
				return err
			}
			s.index[name] = v
			s.files[name] = fileName
			logrus.WithFields(logrus.Fields{
				"name": name,
				"dim":  v.Dim(),
				"file": fileName,
			}).Debug("vector loaded")
		}
	}

	return nil
}

// Path returns the folder of the store.
func (s *Store[T]) Path() string {
	s.RLock()
	defer s.RUnlock()
	return s.dataPath
}

// Compression returns the compression used for new data files.
func (s *Store[T]) Compression() Compression {
	s.RLock()
	defer s.RUnlock()
	return s.compression
}

// FileFor returns the data file of a stored vector.
func (s *Store[T]) FileFor(name string) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	fileName, found := s.files[name]
	return fileName, found
}

// must be called with the lock held
func (s *Store[T]) flush(name string, v *vector.Vector[T]) error {
	fileName := s.dataPath + name + s.compression.Ext()
	if err := Flush[T](v, fileName); err != nil {
		return err
	}
	// the compression changed since the last flush
	if prev, found := s.files[name]; found && prev != fileName {
		if err := os.Remove(prev); err != nil && !os.IsNotExist(err) {
			log.Warning("could not remove %s: %v", prev, err)
		}
	}
	s.files[name] = fileName

	logrus.WithFields(logrus.Fields{
		"name":        name,
		"dim":         v.Dim(),
		"file":        fileName,
		"compression": s.compression.String(),
	}).Debug("vector flushed")
	return nil
}

// Create stores a copy of v under a new name.
func (s *Store[T]) Create(name string, v vector.Viewer[T]) error {
	if !ValidName(name) {
		return ErrInvalidID
	}

	s.Lock()
	defer s.Unlock()

	if _, found := s.index[name]; found {
		return ErrExists
	}

	stored := vector.Clone[T](v)
	if err := s.flush(name, stored); err != nil {
		return err
	}
	s.index[name] = stored
	return nil
}

// Update replaces the content of an existing vector with a copy of v, the
// dimension may change.
func (s *Store[T]) Update(name string, v vector.Viewer[T]) error {
	s.Lock()
	defer s.Unlock()

	if _, found := s.index[name]; !found {
		return ErrRecordNotFound
	}

	stored := vector.Clone[T](v)
	if err := s.flush(name, stored); err != nil {
		return err
	}
	s.index[name] = stored
	return nil
}

// Find returns the vector mapped to name or nil. The returned vector is owned
// by the store, changes to it are persisted only by a following Update.
func (s *Store[T]) Find(name string) *vector.Vector[T] {
	s.RLock()
	defer s.RUnlock()
	return s.index[name]
}

// Delete removes a vector and its data file, returning the vector or nil if
// it did not exist.
func (s *Store[T]) Delete(name string) *vector.Vector[T] {
	s.Lock()
	defer s.Unlock()

	v, found := s.index[name]
	if !found {
		return nil
	}

	delete(s.index, name)
	if fileName, found := s.files[name]; found {
		if err := os.Remove(fileName); err != nil {
			log.Warning("could not remove %s: %v", fileName, err)
		}
		delete(s.files, name)
	}
	return v
}

// must be called with the lock held
func (s *Store[T]) names() []string {
	names := make([]string, 0, len(s.index))
	for name := range s.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the sorted names of the stored vectors.
func (s *Store[T]) Names() []string {
	s.RLock()
	defer s.RUnlock()
	return s.names()
}

// ForEach executes a callback for every vector sorted by name, it
// interrupts the loop if the callback returns an error, the same error
// will be returned.
func (s *Store[T]) ForEach(cb func(name string, v *vector.Vector[T]) error) error {
	s.RLock()
	defer s.RUnlock()
	for _, name := range s.names() {
		if err := cb(name, s.index[name]); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of vectors stored.
func (s *Store[T]) Size() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.index)
}
