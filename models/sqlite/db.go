package sqlite

import (
	"golang.org/x/xerrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ipfs-force-community/sophon-filsnap/filestore"
	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
)

type SqlLiteRepo struct {
	*gorm.DB
}

func (d SqlLiteRepo) StateRepo() repo.StateRepo {
	return newSqliteStateRepo(d.DB)
}

func (d SqlLiteRepo) AutoMigrate() error {
	return d.GetDb().AutoMigrate(sqliteState{})
}

func (d SqlLiteRepo) GetDb() *gorm.DB {
	return d.DB
}

func (d SqlLiteRepo) DbClose() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func OpenSqlite(fsRepo filestore.FSRepo) (repo.Repo, error) {
	cfg := fsRepo.Config().DB.Sqlite
	path := cfg.File
	if len(path) == 0 {
		path = fsRepo.SqliteFile()
	}
	db, err := gorm.Open(sqlite.Open(path+"?cache=shared&_journal_mode=wal&sync=normal"), &gorm.Config{})
	if err != nil {
		return nil, xerrors.Errorf("fail to connect sqlite: %s %w", path, err)
	}

	if cfg.Debug {
		db = db.Debug()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// a single writer keeps sqlite from reporting busy
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &SqlLiteRepo{
		db,
	}, nil
}
