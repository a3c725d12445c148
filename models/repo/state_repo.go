package repo

// StateRepo keeps one opaque state document per snap id. GetState returns
// gorm.ErrRecordNotFound when nothing was written for the id yet.
type StateRepo interface {
	GetState(id string) ([]byte, error)
	SaveState(id string, state []byte) error
	DelState(id string) error
}
