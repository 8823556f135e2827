package specification

import "gorm.io/gorm"

// ContentContains matches parsed file content by case-insensitive substring.
type ContentContains struct {
	Query string
}

func (s ContentContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(parsed_content) LIKE LOWER(?)", "%"+s.Query+"%")
}
