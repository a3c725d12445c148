package mysql

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
)

type mysqlState struct {
	ID    string `gorm:"column:id;type:varchar(256);primary_key;"`
	State []byte `gorm:"column:state;type:mediumblob;"`

	CreatedAt time.Time `gorm:"column:created_at;NOT NULL"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;NOT NULL"`
}

func (mysqlState) TableName() string {
	return "snap_states"
}

var _ repo.StateRepo = (*mysqlStateRepo)(nil)

type mysqlStateRepo struct {
	*gorm.DB
}

func newMysqlStateRepo(db *gorm.DB) mysqlStateRepo {
	return mysqlStateRepo{DB: db}
}

func (s mysqlStateRepo) GetState(id string) ([]byte, error) {
	var state mysqlState
	if err := s.DB.Where("id = ?", id).First(&state).Error; err != nil {
		return nil, err
	}
	return state.State, nil
}

func (s mysqlStateRepo) SaveState(id string, state []byte) error {
	now := time.Now()
	row := mysqlState{
		ID:        id,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.DB.Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&row).Error
}

func (s mysqlStateRepo) DelState(id string) error {
	return s.DB.Where("id = ?", id).Delete(&mysqlState{}).Error
}
