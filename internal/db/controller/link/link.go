// Package link provides CRUD operations for the navigation links of the storefront menus.
package link

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storenav/storenav/internal/db/models"
	"github.com/storenav/storenav/internal/navlink"
)

const (
	menuQueryPattern = "menu = ?"
	menuOrder        = "sort_order DESC, id ASC"
)

var (
	// ErrLinkNotFound is returned when a link is not found.
	ErrLinkNotFound = errors.New("link not found")
	// ErrMenuEmpty is returned when a link or query names no menu.
	ErrMenuEmpty = errors.New("menu name cannot be empty")
	// ErrLabelEmpty is returned when attempting to create/update a link without label.
	ErrLabelEmpty = errors.New("link label cannot be empty")
	// ErrInvalidAttribute is returned when a link carries an attribute name that cannot be rendered.
	ErrInvalidAttribute = errors.New("invalid link attribute name")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a link by its ID.
func Get(db *gorm.DB, id uint64) (*models.NavLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var link models.NavLink
	result := db.First(&link, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, result.Error
	}

	return &link, nil
}

// ListByMenu retrieves the links of a menu, highest sort order first.
func ListByMenu(db *gorm.DB, menu string) ([]models.NavLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if menu == "" {
		return nil, ErrMenuEmpty
	}

	links := []models.NavLink{}
	result := db.Where(menuQueryPattern, menu).Order(menuOrder).Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

// Menus returns the distinct menu names in alphabetical order.
func Menus(db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	menus := []string{}
	result := db.Model(&models.NavLink{}).Distinct("menu").Order("menu").Pluck("menu", &menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

// Count returns the number of stored links.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.NavLink{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Create creates a new link in the database. A set ID is ignored.
func Create(db *gorm.DB, link models.NavLink) (*models.NavLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := check(&link); err != nil {
		return nil, err
	}

	link.ID = 0

	result := db.Create(&link)
	if result.Error != nil {
		return nil, result.Error
	}

	return &link, nil
}

// Update replaces the fields of an existing link by ID.
func Update(db *gorm.DB, id uint64, link models.NavLink) (*models.NavLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := check(&link); err != nil {
		return nil, err
	}

	existing, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	existing.Menu = link.Menu
	existing.Path = link.Path
	existing.Label = link.Label
	existing.Title = link.Title
	existing.Attributes = link.Attributes
	existing.Current = link.Current
	existing.Highlighted = link.Highlighted
	existing.SortOrder = link.SortOrder

	result := db.Save(existing)
	if result.Error != nil {
		return nil, result.Error
	}

	return existing, nil
}

// Delete deletes a link by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.NavLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// DeleteByMenu deletes all links of a menu and returns how many were removed.
func DeleteByMenu(db *gorm.DB, menu string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if menu == "" {
		return 0, ErrMenuEmpty
	}

	result := db.Where(menuQueryPattern, menu).Delete(&models.NavLink{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func check(link *models.NavLink) error {
	if link.Menu == "" {
		return ErrMenuEmpty
	}
	if link.Label == "" {
		return ErrLabelEmpty
	}
	for _, a := range link.Attributes {
		if !navlink.ValidAttributeName(a.Name) {
			return ErrInvalidAttribute
		}
	}

	return nil
}
