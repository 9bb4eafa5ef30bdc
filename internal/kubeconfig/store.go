package kubeconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/renato0307/kctx/internal/logging"
)

const (
	backupSuffix   = ".backup"
	lockSuffix     = ".lock"
	lockRetryDelay = 50 * time.Millisecond
	defaultMode    = fs.FileMode(0o600)
)

// Store reads and writes one kubeconfig file.
//
// The file is the single source of truth: every operation reads it afresh
// and nothing is cached between calls.
type Store struct {
	path   string
	recent *RecentContexts
	log    *logging.Logger
}

// ResolvePath returns the kubeconfig path from $KUBECONFIG, falling back to
// ~/.kube/config. When $KUBECONFIG holds a path list the first entry is used.
func ResolvePath() (string, error) {
	if env := os.Getenv(clientcmd.RecommendedConfigPathEnvVar); env != "" {
		for _, p := range filepath.SplitList(env) {
			if p != "" {
				return p, nil
			}
		}
	}
	if clientcmd.RecommendedHomeFile == "" {
		return "", fmt.Errorf("cannot determine home directory")
	}
	return clientcmd.RecommendedHomeFile, nil
}

// NewStore creates a Store for path. An empty path is resolved with ResolvePath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		resolved, err := ResolvePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve kubeconfig path: %w", err)
		}
		path = resolved
	}
	return &Store{
		path:   path,
		recent: NewRecentContexts(),
		log:    logging.Get().With("component", "kubeconfig", "path", path),
	}, nil
}

// Path returns the kubeconfig path this store operates on
func (s *Store) Path() string {
	return s.path
}

// Recent returns the in-memory list of recently switched contexts
func (s *Store) Recent() *RecentContexts {
	return s.recent
}

// Read loads and parses the kubeconfig file
func (s *Store) Read() (*Document, error) {
	t := logging.Start("kubeconfig read", "path", s.path)
	defer logging.End(t)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.readError(err)
	}
	return Parse(data)
}

// Parse decodes kubeconfig bytes into a Document
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &Error{Kind: KindEmptyConfig, Msg: "kubeconfig is empty"}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &Error{Kind: KindParse, Msg: "invalid kubeconfig YAML", Err: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &Error{Kind: KindEmptyConfig, Msg: "kubeconfig is empty"}
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, &Error{Kind: KindParse, Msg: "kubeconfig is not a YAML mapping"}
	}

	doc := &Document{}
	if err := root.Content[0].Decode(doc); err != nil {
		return nil, &Error{Kind: KindParse, Msg: "invalid kubeconfig structure", Err: err}
	}
	return doc, nil
}

// Marshal encodes a Document as YAML
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, validationError("kubeconfig document is nil")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, &Error{Kind: KindWrite, Msg: "failed to serialize kubeconfig", Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &Error{Kind: KindWrite, Msg: "failed to serialize kubeconfig", Err: err}
	}
	if len(bytes.TrimSpace(buf.Bytes())) == 0 {
		return nil, &Error{Kind: KindEmptyContent, Msg: "serialized kubeconfig is empty"}
	}
	return buf.Bytes(), nil
}

// Write serializes doc and replaces the kubeconfig file with it.
// It holds the store's advisory lock for the duration of the write.
func (s *Store) Write(ctx context.Context, doc *Document) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	return s.write(doc)
}

// write serializes doc and replaces the file with it. Callers hold the lock.
func (s *Store) write(doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	return s.writeData(data)
}

// writeData performs the backup, replace, cleanup sequence
func (s *Store) writeData(data []byte) error {
	t := logging.Start("kubeconfig write", "path", s.path)
	defer logging.End(t)

	target := s.path
	mode := defaultMode
	backup := ""

	if info, err := os.Lstat(target); err == nil {
		if info.Mode()&fs.ModeSymlink != 0 {
			if resolved, err := filepath.EvalSymlinks(target); err == nil {
				target = resolved
				if ri, err := os.Stat(resolved); err == nil {
					info = ri
				}
			}
		}
		mode = info.Mode().Perm()

		current, err := os.ReadFile(target)
		if err != nil {
			return s.writeError(err)
		}
		backup = s.path + backupSuffix
		if err := os.WriteFile(backup, current, mode); err != nil {
			return s.writeError(fmt.Errorf("failed to create backup: %w", err))
		}
	}

	if err := replaceFile(target, data, mode); err != nil {
		if backup != "" {
			s.log.Warn("kubeconfig write failed, backup kept", "backup", backup, "error", err)
		}
		return s.writeError(err)
	}

	if backup != "" {
		if err := os.Remove(backup); err != nil {
			s.log.Warn("failed to remove kubeconfig backup", "backup", backup, "error", err)
		}
	}
	s.log.Debug("kubeconfig written", "bytes", len(data))
	return nil
}

// replaceFile writes data to a temp file next to target and renames it over target
func replaceFile(target string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return err
	}
	return nil
}

// lock takes the advisory lock guarding read-modify-write cycles
func (s *Store) lock(ctx context.Context) (func(), error) {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return nil, s.readError(err)
	}

	fl := flock.New(s.path + lockSuffix)
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &Error{Kind: KindPermission, Path: s.path, Msg: "cannot lock kubeconfig", Err: err}
		}
		return nil, &Error{Kind: KindWrite, Path: s.path, Msg: "cannot lock kubeconfig", Err: err}
	}
	if !locked {
		return nil, &Error{Kind: KindWrite, Path: s.path, Msg: "kubeconfig is locked by another process"}
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.log.Warn("failed to release kubeconfig lock", "error", err)
		}
	}, nil
}

// update runs fn against a freshly read document and persists the result.
// The file is left untouched when fn changes nothing.
func (s *Store) update(ctx context.Context, fn func(doc *Document) error) error {
	if _, err := os.Stat(s.path); err != nil {
		return s.readError(err)
	}

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	doc, err := s.Read()
	if err != nil {
		return err
	}
	before, _ := Marshal(doc)
	if err := fn(doc); err != nil {
		return err
	}

	after, err := Marshal(doc)
	if err != nil {
		return err
	}
	if before != nil && bytes.Equal(before, after) {
		s.log.Debug("kubeconfig unchanged, write skipped")
		return nil
	}
	return s.writeData(after)
}

func (s *Store) readError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Kind: KindNotFound, Path: s.path, Msg: fmt.Sprintf("kubeconfig not found at %s", s.path), Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &Error{Kind: KindPermission, Path: s.path, Msg: fmt.Sprintf("cannot read kubeconfig at %s", s.path), Err: err}
	default:
		return &Error{Kind: KindRead, Path: s.path, Msg: fmt.Sprintf("cannot read kubeconfig at %s", s.path), Err: err}
	}
}

func (s *Store) writeError(err error) error {
	kind := KindWrite
	switch {
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	case errors.Is(err, syscall.ENOSPC), strings.Contains(err.Error(), "no space left"):
		kind = KindDiskSpace
	}
	return &Error{Kind: kind, Path: s.path, Msg: fmt.Sprintf("cannot write kubeconfig at %s", s.path), Err: err}
}
