package models

// Roles a user account can hold. New accounts always start as customers.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User represents a store account. The table is shared with external
// classroom DDL, so table and column names are fixed.
type User struct {
	Login           string  `gorm:"column:login;primaryKey;size:50"`
	Password        string  `gorm:"column:password;size:30;not null"`
	Role            string  `gorm:"column:role;size:20;not null"`
	FavGames        *string `gorm:"column:favgames"`
	PhoneNum        string  `gorm:"column:phonenum;size:20"`
	NumOverDueGames int     `gorm:"column:numoverduegames"`
}

// TableName maps onto the externally created Users table.
func (User) TableName() string { return "users" }
