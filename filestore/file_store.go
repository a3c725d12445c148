package filestore

import (
	"os"
	"path/filepath"

	"github.com/ipfs-force-community/sophon-filsnap/config"
)

const (
	ConfigFile = "config.toml"
	SqliteFile = "snap.db"
)

type FSRepo interface {
	Path() string
	Config() *config.Config
	ReplaceConfig(cfg *config.Config) error
	SqliteFile() string
}

type fsRepo struct {
	path string
	cfg  *config.Config
}

func NewFSRepo(repoPath string) (FSRepo, error) {
	r := &fsRepo{path: repoPath}
	cfg, err := config.ReadConfig(filepath.Join(repoPath, ConfigFile))
	if err != nil {
		return nil, err
	}
	r.cfg = cfg

	return r, nil
}

func InitFSRepo(repoPath string, cfg *config.Config) (FSRepo, error) {
	if err := os.MkdirAll(repoPath, 0o775); err != nil {
		return nil, err
	}

	if err := config.WriteFile(filepath.Join(repoPath, ConfigFile), cfg); err != nil {
		return nil, err
	}

	return &fsRepo{path: repoPath, cfg: cfg}, nil
}

// HasFSRepo reports whether repoPath holds a config file.
func HasFSRepo(repoPath string) (bool, error) {
	_, err := os.Stat(filepath.Join(repoPath, ConfigFile))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

func (r *fsRepo) Path() string {
	return r.path
}

func (r *fsRepo) Config() *config.Config {
	return r.cfg
}

func (r *fsRepo) SqliteFile() string {
	return filepath.Join(r.path, SqliteFile)
}

func (r *fsRepo) ReplaceConfig(cfg *config.Config) error {
	if err := config.WriteFile(filepath.Join(r.path, ConfigFile), cfg); err != nil {
		return err
	}
	r.cfg = cfg

	return nil
}
