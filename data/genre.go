package data

// A Genre is a single token from a song's comma-separated genre list, like
// "pop". Identity is the name; genres are created lazily and never updated.
//
// Genres have many songs via the association table SongGenre.
type Genre struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:genre_name;uniqueIndex;not null"`
}

func (Genre) TableName() string { return "Genre" }
