package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

// Sibling order. Ties on position fall back to creation time, then id.
const (
	positionOrder = "position ASC, created_at ASC, id ASC"
	createdAsc    = "created_at ASC, id ASC"
	createdDesc   = "created_at DESC, id DESC"
	nameAsc       = "name ASC, id ASC"
)

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order(positionOrder)
}

func byCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order(createdAsc)
}

// byJoinedAt orders join rows, which have no id column
func byJoinedAt(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func byCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order(createdDesc)
}

// nextPosition returns max(position)+1 among the rows where parentColumn = parentID, or 0 if there are none
func nextPosition(db *gorm.DB, model interface{}, parentColumn, parentID string) (int, error) {
	var max sql.NullInt64
	if err := db.Model(model).
		Where(parentColumn+" = ?", parentID).
		Select("MAX(position)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}

// updatePosition sets position (and any extra columns) on one row and reports whether it existed
func updatePosition(db *gorm.DB, model interface{}, id string, values map[string]interface{}) (bool, error) {
	result := db.Model(model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
