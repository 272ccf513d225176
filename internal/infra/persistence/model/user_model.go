// Package model holds the GORM persistence models. They are exported so the
// GORM Gen tool in cmd/gen can generate query code from them.
package model

// UserModel mirrors the 'users' table.
// Groups is the owning side of the membership relation; the reverse view is
// queried through the join table rather than declared on GroupModel.
type UserModel struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Login    string `gorm:"type:varchar(80);not null;default:'';index"`
	Username string `gorm:"type:varchar(80);not null;default:'';index"`
	Password string `gorm:"column:password;type:varchar(80);not null;default:'';index"`
	Email    string `gorm:"type:varchar(80);not null;default:'';index"`
	Active   string `gorm:"type:char(1);not null;default:'Y'"`

	Groups []*GroupModel `gorm:"many2many:user_groups;joinForeignKey:UserID;joinReferences:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(80);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// UserGroupModel is a row of the 'user_groups' join table created by the
// many2many relation on UserModel. It is used for direct link/unlink writes.
type UserGroupModel struct {
	UserID  uint64 `gorm:"primaryKey"`
	GroupID uint64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UserGroupModel) TableName() string {
	return "user_groups"
}
