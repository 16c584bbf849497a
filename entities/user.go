package entities

// User is only persisted when the postgres identity backend is in use;
// with Firebase the account lives entirely in the identity service.
type User struct {
	ID           string `gorm:"type:varchar(64);primary_key" json:"uid"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`

	Timestamp
}
