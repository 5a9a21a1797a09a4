// Package asset loads the static files the showcase needs, currently just
// fonts, off the main goroutine and hands out handles to them.
package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotFound is returned when an asset file does not exist.
	ErrNotFound = errors.New("asset not found")
	// ErrInvalidFont is returned when a file cannot be parsed as a font.
	ErrInvalidFont = errors.New("invalid font")
	// ErrUnknownHandle is returned for handles this server did not issue.
	ErrUnknownHandle = errors.New("unknown asset handle")
)

// maxConcurrentLoads bounds the number of files read at once.
const maxConcurrentLoads = 4

// Handle refers to an asset owned by a Server. The zero Handle is invalid.
type Handle struct {
	id int
}

// IsValid reports whether h was issued by a Server.
func (h Handle) IsValid() bool {
	return h.id > 0
}

// LoadState is the lifecycle of a single asset.
type LoadState uint8

const (
	Loading LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("LoadState(%d)", s)
	}
}

// Font is a parsed font file.
type Font struct {
	Path   string
	Family string
	Glyphs int
}

type entry struct {
	path  string
	state LoadState
	font  *Font
	err   error
}

// Server resolves asset paths relative to its root directory and loads them
// concurrently.
type Server struct {
	root string
	log  logrus.FieldLogger

	mu      sync.Mutex
	byPath  map[string]Handle
	entries []*entry // index = handle id - 1
	group   errgroup.Group
}

// NewServer creates a server rooted at dir. An empty dir means the working
// directory.
func NewServer(dir string, log logrus.FieldLogger) *Server {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Server{
		root:   dir,
		log:    log,
		byPath: make(map[string]Handle),
	}
	s.group.SetLimit(maxConcurrentLoads)
	return s
}

// Load starts loading the font at path and returns its handle immediately.
// Loading the same path twice returns the same handle.
func (s *Server) Load(path string) Handle {
	s.mu.Lock()
	if h, ok := s.byPath[path]; ok {
		s.mu.Unlock()
		return h
	}
	e := &entry{path: path, state: Loading}
	s.entries = append(s.entries, e)
	h := Handle{id: len(s.entries)}
	s.byPath[path] = h
	s.mu.Unlock()

	s.group.Go(func() error {
		font, err := s.loadFont(path)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			e.state, e.err = Failed, err
			s.log.WithError(err).WithField("path", path).Warn("font load failed")
			return err
		}
		e.state, e.font = Loaded, font
		s.log.WithFields(logrus.Fields{"path": path, "family": font.Family}).Debug("font loaded")
		return nil
	})
	return h
}

func (s *Server) resolve(path string) string {
	if filepath.IsAbs(path) || s.root == "" {
		return path
	}
	return filepath.Join(s.root, path)
}

func (s *Server) loadFont(path string) (*Font, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFont, path, err)
	}

	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		// Some fonts omit the name table entry; the file name will do.
		family = filepath.Base(path)
	}

	return &Font{Path: path, Family: family, Glyphs: f.NumGlyphs()}, nil
}

// Wait blocks until every load started so far has settled or ctx is done.
// It returns the first load error, or ctx.Err() if the context ended first.
func (s *Server) Wait(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- s.group.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Font returns the font behind h with its load state. For a failed load the
// error explains why.
func (s *Server) Font(h Handle) (*Font, LoadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.id <= 0 || h.id > len(s.entries) {
		return nil, Failed, ErrUnknownHandle
	}
	e := s.entries[h.id-1]
	return e.font, e.state, e.err
}

// Path returns the path h was loaded from.
func (s *Server) Path(h Handle) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.id <= 0 || h.id > len(s.entries) {
		return "", false
	}
	return s.entries[h.id-1].path, true
}
