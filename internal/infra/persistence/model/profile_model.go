package model

import (
	"time"

	"authcore/internal/domain/profile"
)

// BasicProfileTypeName is the registry name of BasicProfileModel.
const BasicProfileTypeName = "basic"

// BasicProfileModel mirrors the 'user_profiles' table. UserID is both the
// primary key and the reference to users.id, so a user has at most one row.
type BasicProfileModel struct {
	UserID      uint64    `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	DisplayName string    `gorm:"type:varchar(100);not null;default:''" json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName explicitly sets the table name for GORM.
func (BasicProfileModel) TableName() string {
	return "user_profiles"
}

// OwnerID implements profile.Record.
func (m *BasicProfileModel) OwnerID() uint64 {
	return m.UserID
}

// NewBasicProfile is the profile.Factory for BasicProfileModel.
func NewBasicProfile(userID uint64) profile.Record {
	return &BasicProfileModel{UserID: userID}
}

// RegisterBuiltinProfiles adds the profile types shipped with this module.
func RegisterBuiltinProfiles(reg *profile.Registry) error {
	return reg.Register(BasicProfileTypeName, NewBasicProfile)
}
