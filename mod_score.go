package flappybird

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ScoreStore keeps the best score across runs in a small text file
// under the user's config directory.
type ScoreStore struct {
	path string
	best int
}

type ScoreModule struct {
	// Path overrides the default location, for tests.
	Path string
}

func (m ScoreModule) Install(app *App, cmd *Commands) {
	path := m.Path
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			app.Logger().Warnf("no config dir, best score will not persist: %v", err)
		} else {
			path = filepath.Join(dir, "flappybird", "highscore")
		}
	}

	store := NewScoreStore(path)
	if err := store.Load(); err != nil {
		app.Logger().Warnf("could not read best score: %v", err)
	}
	cmd.AddResources(store)
}

func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

func (s *ScoreStore) Best() int { return s.best }

// Load reads the persisted best score. A missing file is not an
// error; a corrupt one is, and leaves the best at zero.
func (s *ScoreStore) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	s.best = value
	return nil
}

// Update records score if it beats the current best, persisting it
// immediately. It reports whether a new best was set.
func (s *ScoreStore) Update(score int) (bool, error) {
	if score <= s.best {
		return false, nil
	}
	s.best = score

	if s.path == "" {
		return true, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return true, err
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return true, err
	}
	return true, nil
}
