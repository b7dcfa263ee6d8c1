package data

// An Artist is a performer referenced by one or more songs. Identity is the
// canonical name: lower-cased, spaces replaced with underscores. Artists are
// created lazily on first reference and never updated or deleted.
type Artist struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:artist_name;uniqueIndex;not null"`
}

func (Artist) TableName() string { return "Artist" }
