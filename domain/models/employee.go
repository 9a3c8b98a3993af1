package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

type Employee struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    // bcrypt hash, empty for employees created without credentials
	Role      Role      `gorm:"type:varchar(20);default:'USER'"`
	Tasks     []Task    `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	TaskCount int64     `gorm:"->;-:migration"` // aggregated on list queries, not a column
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// IsAdmin ตรวจสอบว่าเป็น admin
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanManage reports whether the employee holds an elevated role.
func (e *Employee) CanManage() bool {
	return e.Role == RoleAdmin || e.Role == RoleManager
}
