package sqlite

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
)

type sqliteState struct {
	ID    string `gorm:"column:id;type:varchar(256);primary_key;"`
	State []byte `gorm:"column:state;type:blob;"`

	CreatedAt time.Time `gorm:"column:created_at;NOT NULL"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;NOT NULL"`
}

func (sqliteState) TableName() string {
	return "snap_states"
}

var _ repo.StateRepo = (*sqliteStateRepo)(nil)

type sqliteStateRepo struct {
	*gorm.DB
}

func newSqliteStateRepo(db *gorm.DB) sqliteStateRepo {
	return sqliteStateRepo{DB: db}
}

func (s sqliteStateRepo) GetState(id string) ([]byte, error) {
	var state sqliteState
	if err := s.DB.Where("id = ?", id).First(&state).Error; err != nil {
		return nil, err
	}
	return state.State, nil
}

func (s sqliteStateRepo) SaveState(id string, state []byte) error {
	now := time.Now()
	row := sqliteState{
		ID:        id,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&row).Error
}

func (s sqliteStateRepo) DelState(id string) error {
	return s.DB.Where("id = ?", id).Delete(&sqliteState{}).Error
}
