package asset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestServer_Load(t *testing.T) {
	type tc struct {
		file      string
		data      []byte
		wantState LoadState
		wantErr   error
	}

	tests := map[string]tc{
		"valid font": {
			file:      "Go-Regular.ttf",
			data:      goregular.TTF,
			wantState: Loaded,
		},
		"missing file": {
			file:      "missing.ttf",
			wantState: Failed,
			wantErr:   ErrNotFound,
		},
		"not a font": {
			file:      "garbage.ttf",
			data:      []byte("definitely not a font"),
			wantState: Failed,
			wantErr:   ErrInvalidFont,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.data != nil {
				writeFile(t, dir, tt.file, tt.data)
			}

			s := NewServer(dir, nil)
			h := s.Load(tt.file)
			if !h.IsValid() {
				t.Fatal("Load returned invalid handle")
			}

			waitErr := s.Wait(waitCtx(t))
			font, state, err := s.Font(h)
			if state != tt.wantState {
				t.Fatalf("state = %v, want %v", state, tt.wantState)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(waitErr, tt.wantErr) {
					t.Fatalf("errors = (%v, %v), want %v", err, waitErr, tt.wantErr)
				}
				return
			}
			if err != nil || waitErr != nil {
				t.Fatalf("unexpected errors: %v, %v", err, waitErr)
			}
			if font.Family != "Go" {
				t.Errorf("Family = %q, want %q", font.Family, "Go")
			}
			if font.Glyphs == 0 {
				t.Errorf("font reports no glyphs")
			}
		})
	}
}

func TestServer_SamePathSameHandle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "font.ttf", goregular.TTF)

	s := NewServer(dir, nil)
	a := s.Load("font.ttf")
	b := s.Load("font.ttf")
	c := s.Load("other.ttf")
	if a != b {
		t.Errorf("same path gave handles %v and %v", a, b)
	}
	if a == c {
		t.Errorf("different paths share handle %v", a)
	}
	if path, ok := s.Path(c); !ok || path != "other.ttf" {
		t.Errorf("Path(c) = %q, %v", path, ok)
	}
}

func TestServer_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "abs.ttf", goregular.TTF)

	s := NewServer("/nonexistent-root", nil)
	h := s.Load(filepath.Join(dir, "abs.ttf"))
	if err := s.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if _, state, _ := s.Font(h); state != Loaded {
		t.Errorf("state = %v, want Loaded", state)
	}
}

func TestServer_UnknownHandle(t *testing.T) {
	s := NewServer("", nil)
	for name, h := range map[string]Handle{"zero": {}, "foreign": {id: 7}} {
		if _, _, err := s.Font(h); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("%s: err = %v, want ErrUnknownHandle", name, err)
		}
	}
}

func TestServer_WaitNothingPending(t *testing.T) {
	s := NewServer("", nil)
	if err := s.Wait(waitCtx(t)); err != nil {
		t.Errorf("Wait on idle server: %v", err)
	}
}
