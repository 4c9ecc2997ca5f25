package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	saveObject   = "scores"
	saveProperty = "best"
)

// savedScore is the YAML payload of the save-data entry.
type savedScore struct {
	HighScore int       `yaml:"high_score"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// SaveData stores the high score in the platform's per-user application
// data directory. It keeps no run history.
type SaveData struct {
	mu sync.Mutex
	m  *gdata.Manager
}

// OpenSaveData opens the save-data area for appName.
func OpenSaveData(appName string) (*SaveData, error) {
	if appName == "" {
		appName = "javirun"
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveData{m: m}, nil
}

// LoadHighScore returns the saved high score, 0 if there is none.
func (s *SaveData) LoadHighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *SaveData) load() (int, error) {
	if !s.m.ObjectPropExists(saveObject, saveProperty) {
		return 0, nil
	}
	data, err := s.m.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load save data: %w", err)
	}
	var saved savedScore
	if err := yaml.Unmarshal(data, &saved); err != nil || saved.HighScore < 0 {
		return 0, fmt.Errorf("storage: malformed save data: %q", data)
	}
	return saved.HighScore, nil
}

// SaveHighScore writes score if it beats the saved value.
func (s *SaveData) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A malformed entry is overwritten.
	if current, err := s.load(); err == nil && current >= score {
		return nil
	}

	return s.write(score)
}

// Clear resets the saved high score to 0.
func (s *SaveData) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(0)
}

func (s *SaveData) write(score int) error {
	data, err := yaml.Marshal(savedScore{HighScore: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode save data: %w", err)
	}
	if err := s.m.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("storage: cannot write save data: %w", err)
	}
	return nil
}

// Close is a no-op; gdata holds no open handles.
func (s *SaveData) Close() error {
	return nil
}
