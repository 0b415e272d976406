package models

import "time"

// RentalOrder is one checkout's header row. Totals are written as zero when
// the header is created and patched once all line items are collected.
type RentalOrder struct {
	RentalOrderID  string    `gorm:"column:rentalorderid;primaryKey;size:50"`
	Login          string    `gorm:"column:login;size:50;not null"`
	NoOfGames      int       `gorm:"column:noofgames;not null"`
	TotalPrice     float64   `gorm:"column:totalprice;not null"`
	OrderTimestamp time.Time `gorm:"column:ordertimestamp"`
	DueDate        time.Time `gorm:"column:duedate"`
}

// TableName maps onto the externally created RentalOrder table.
func (RentalOrder) TableName() string { return "rentalorder" }

// OrderItem is one (game, quantity) line inside a rental order.
type OrderItem struct {
	RentalOrderID string `gorm:"column:rentalorderid;size:50;not null"`
	GameID        string `gorm:"column:gameid;size:50;not null"`
	UnitsOrdered  int    `gorm:"column:unitsordered;not null"`
}

// TableName maps onto the externally created GamesInOrder table.
func (OrderItem) TableName() string { return "gamesinorder" }

// OrderHistoryRow is the joined shape used by the order history listings:
// one row per ordered game with its parent order's timing.
type OrderHistoryRow struct {
	RentalOrderID  string    `gorm:"column:rentalorderid"`
	GameName       string    `gorm:"column:gamename"`
	OrderTimestamp time.Time `gorm:"column:ordertimestamp"`
	DueDate        time.Time `gorm:"column:duedate"`
}

// OrderDetail is an order header joined with its tracking record.
type OrderDetail struct {
	Order    RentalOrder
	Tracking TrackingInfo
}
