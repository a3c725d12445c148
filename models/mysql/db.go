package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
)

type Repo struct {
	*gorm.DB
}

func (d Repo) StateRepo() repo.StateRepo {
	return newMysqlStateRepo(d.DB)
}

func (d Repo) AutoMigrate() error {
	return d.GetDb().AutoMigrate(mysqlState{})
}

func (d Repo) GetDb() *gorm.DB {
	return d.DB
}

func (d Repo) DbClose() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func OpenMysql(cfg *config.MySqlConfig) (repo.Repo, error) {
	db, err := gorm.Open(mysql.Open(cfg.ConnectionString), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("[db connection failed] Database name: %s %w", cfg.ConnectionString, err)
	}

	db = db.Set("gorm:table_options", "CHARSET=utf8mb4")
	if cfg.Debug {
		db = db.Debug()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifeTime)

	return &Repo{
		db,
	}, nil
}
