package models

import (
	"golang.org/x/xerrors"

	"github.com/ipfs-force-community/sophon-filsnap/filestore"
	"github.com/ipfs-force-community/sophon-filsnap/models/mysql"
	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
	"github.com/ipfs-force-community/sophon-filsnap/models/sqlite"
)

func SetDataBase(fsRepo filestore.FSRepo) (repo.Repo, error) {
	cfg := fsRepo.Config().DB
	switch cfg.Type {
	case "sqlite":
		return sqlite.OpenSqlite(fsRepo)
	case "mysql":
		return mysql.OpenMysql(&cfg.MySql)
	default:
		return nil, xerrors.Errorf("unsupport db type,(%s, %s)", "sqlite", "mysql")
	}
}

func AutoMigrate(repo repo.Repo) error {
	return repo.AutoMigrate()
}
