package storage

import (
	"fmt"
	"time"
)

// Kind names a persistence backend.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindSaveData Kind = "savedata"
	KindMemory   Kind = "memory"
)

// Backend persists the high score. Every backend implements it.
type Backend interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	Close() error
}

// RunStore records finished runs. Backends with history implement it.
type RunStore interface {
	SaveRun(score int, duration time.Duration) (string, error)
	TopRuns(limit int) ([]RunEntry, error)
	Stats() (*Stats, error)
}

// Options selects and locates a backend.
type Options struct {
	Kind    Kind
	DBPath  string // sqlite file
	AppName string // savedata application name
}

// OpenBackend opens the backend named by opts.Kind.
func OpenBackend(opts Options) (Backend, error) {
	switch opts.Kind {
	case KindSQLite, "":
		return Open(opts.DBPath)
	case KindSaveData:
		return OpenSaveData(opts.AppName)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q (want sqlite, savedata or memory)", opts.Kind)
	}
}

var (
	_ Backend  = (*Store)(nil)
	_ RunStore = (*Store)(nil)
	_ Backend  = (*SaveData)(nil)
	_ Backend  = (*Memory)(nil)
	_ RunStore = (*Memory)(nil)
)
