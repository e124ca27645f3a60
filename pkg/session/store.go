// Package session persists serialized orchestrator state between runs, so
// an interrupted run can be resumed later under the same session id.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentfleet/agentfleet/pkg/multiagent"
)

// ErrNotFound is returned when no checkpoint exists for a session id.
var ErrNotFound = errors.New("session not found")

// Store is the session-manager capability.
type Store interface {
	Save(ctx context.Context, sessionID string, state *multiagent.SerializedState) error
	Load(ctx context.Context, sessionID string) (*multiagent.SerializedState, error)
	Delete(ctx context.Context, sessionID string) error
}

// FileStore keeps one JSON checkpoint file per session under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("session directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the checkpoint atomically: temp file then rename.
func (s *FileStore) Save(_ context.Context, sessionID string, state *multiagent.SerializedState) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write session state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to persist session file: %w", err)
	}
	return nil
}

// Load reads a checkpoint. Returns ErrNotFound when none exists.
func (s *FileStore) Load(_ context.Context, sessionID string) (*multiagent.SerializedState, error) {
	path, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var state multiagent.SerializedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &state, nil
}

// Delete removes a checkpoint; deleting a missing one is a no-op.
func (s *FileStore) Delete(_ context.Context, sessionID string) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// path maps a session id to a file, rejecting ids that would escape the
// store directory.
func (s *FileStore) path(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id required")
	}
	if strings.ContainsAny(sessionID, "/\\") || strings.Contains(sessionID, "..") {
		return "", fmt.Errorf("invalid session id %q", sessionID)
	}
	return filepath.Join(s.dir, sessionID+".json"), nil
}
