package data

// A SongGenre represents a many-to-many relationship between songs and
// genres. The composite primary key keeps a song from linking to the same
// genre twice.
type SongGenre struct {
	SongID  int64 `gorm:"column:song_id;primaryKey"`
	GenreID int64 `gorm:"column:genre_id;primaryKey"`
}

func (SongGenre) TableName() string { return "SongGenre" }
