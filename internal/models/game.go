package models

// Game represents one catalog entry. Read by every role, mutated only by
// managers.
type Game struct {
	GameID      string  `gorm:"column:gameid;primaryKey;size:50"`
	GameName    string  `gorm:"column:gamename;size:300;not null"`
	Genre       string  `gorm:"column:genre;size:30;not null"`
	Price       float64 `gorm:"column:price;not null"`
	Description string  `gorm:"column:description;size:500"`
	ImageURL    string  `gorm:"column:imageurl;size:60"`
}

// TableName maps onto the externally created Catalog table.
func (Game) TableName() string { return "catalog" }
