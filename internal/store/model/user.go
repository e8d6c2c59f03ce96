package model

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleWorker   UserRole = "WORKER"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;"`
	Role      UserRole  `gorm:"column:role;type:VARCHAR;size:16;not null"`
	FirstName string    `gorm:"column:first_name;type:VARCHAR;size:255"`
	LastName  string    `gorm:"column:last_name;type:VARCHAR;size:255"`
	Email     string    `gorm:"column:email;type:VARCHAR;size:256;not null"`
	Phone     string    `gorm:"column:phone;type:VARCHAR;size:32"`
}
