package repository

import (
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// subquery builds a fresh id-selecting subquery each time it is called
type subquery func() *gorm.DB

// deleteCardChildren removes every row owned by the selected cards, leaves first.
// The cards themselves are left to the caller.
func deleteCardChildren(db *gorm.DB, cardIDs subquery) error {
	checklistIDs := func() *gorm.DB {
		return db.Model(&domain.Checklist{}).Select("id").Where("card_id IN (?)", cardIDs())
	}

	if err := db.Where("checklist_id IN (?)", checklistIDs()).Delete(&domain.ChecklistItem{}).Error; err != nil {
		return err
	}

	children := []interface{}{
		&domain.Checklist{},
		&domain.CardLabel{},
		&domain.CardMember{},
		&domain.Attachment{},
		&domain.Comment{},
	}
	for _, model := range children {
		if err := db.Where("card_id IN (?)", cardIDs()).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteListTree removes the selected lists' cards with their children, then the lists
func deleteListTree(db *gorm.DB, listIDs subquery) error {
	cardIDs := func() *gorm.DB {
		return db.Model(&domain.Card{}).Select("id").Where("list_id IN (?)", listIDs())
	}
	if err := deleteCardChildren(db, cardIDs); err != nil {
		return err
	}
	if err := db.Where("list_id IN (?)", listIDs()).Delete(&domain.Card{}).Error; err != nil {
		return err
	}
	return db.Where("id IN (?)", listIDs()).Delete(&domain.List{}).Error
}
