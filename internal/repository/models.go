package repository

// PasswordHash is an opaque bcrypt credential. Its String form is redacted so
// it never leaks through logs or fmt verbs.
type PasswordHash string

func (PasswordHash) String() string {
	return "[REDACTED]"
}

func (PasswordHash) GoString() string {
	return "[REDACTED]"
}

type User struct {
	Username  string       `gorm:"primaryKey;size:20"`
	Password  PasswordHash `gorm:"type:text;not null" json:"-"`
	Email     string       `gorm:"size:50;uniqueIndex;not null"`
	FirstName string       `gorm:"size:30;not null"`
	LastName  string       `gorm:"size:30;not null"`
	Feedback  []Feedback   `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type Feedback struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Title    string `gorm:"size:100;not null"`
	Content  string `gorm:"type:text;not null"`
	Username string `gorm:"size:20;not null;index"`
}

func (Feedback) TableName() string {
	return "feedback"
}
