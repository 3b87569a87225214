// Package theme persists the UI theme preference. It is the only piece of
// state that survives a restart; everything else is session-only.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type Mode string

const (
	ModeNighttimeRaid Mode = "nighttime-raid"
	ModeDaytimeAttack Mode = "daytime-attack"
)

const DefaultMode = ModeNighttimeRaid

type fileState struct {
	Theme Mode `json:"theme"`
}

// FileRepo stores the preference in a small JSON file under dataDir.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "theme.json"),
		s:    fileState{Theme: DefaultMode},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.s = fileState{Theme: DefaultMode}
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Theme != ModeNighttimeRaid && loaded.Theme != ModeDaytimeAttack {
		loaded.Theme = DefaultMode
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Get() Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.Theme
}

func (r *FileRepo) Set(mode Mode) error {
	if mode != ModeNighttimeRaid && mode != ModeDaytimeAttack {
		mode = DefaultMode
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.Theme = mode
	return r.saveLocked()
}

// Toggle flips between the two modes and persists the result.
func (r *FileRepo) Toggle() (Mode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s.Theme == ModeNighttimeRaid {
		r.s.Theme = ModeDaytimeAttack
	} else {
		r.s.Theme = ModeNighttimeRaid
	}
	if err := r.saveLocked(); err != nil {
		return "", err
	}
	return r.s.Theme, nil
}
