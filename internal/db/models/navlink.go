// Package models contains database model definitions.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/storenav/storenav/internal/navlink"
)

// ErrAttributesType is returned when the stored attributes column has an unexpected type.
var ErrAttributesType = errors.New("unsupported attributes column type")

// Attributes keeps the ordered anchor attributes of a link as a JSON column.
type Attributes []navlink.Attribute

// Value implements driver.Valuer.
func (a Attributes) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal([]navlink.Attribute(a))
	if err != nil {
		return nil, errors.Wrap(err, "encode attributes")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *Attributes) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Wrapf(ErrAttributesType, "%T", src)
	}

	if len(raw) == 0 {
		*a = nil
		return nil
	}

	var attrs []navlink.Attribute
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return errors.Wrap(err, "decode attributes")
	}

	*a = attrs

	return nil
}

// NavLink represents one navigation link of a named menu.
type NavLink struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Menu        string     `gorm:"size:64;index;not null" json:"menu" validate:"required,max=64"`
	Path        string     `gorm:"size:255" json:"path" validate:"max=255"`
	Label       string     `gorm:"size:255;not null" json:"label" validate:"required,max=255"`
	Title       string     `gorm:"size:255" json:"title" validate:"max=255"`
	Attributes  Attributes `gorm:"type:text" json:"attributes" validate:"dive"`
	Current     bool       `json:"current"`
	Highlighted bool       `json:"highlighted"`
	SortOrder   int        `gorm:"index" json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName overrides the gorm table name.
func (NavLink) TableName() string {
	return "nav_links"
}

// Spec converts the stored link into its render description.
func (l *NavLink) Spec() navlink.LinkSpec {
	var attrs []navlink.Attribute
	if len(l.Attributes) > 0 {
		attrs = append(attrs, l.Attributes...)
	}

	return navlink.LinkSpec{
		Path:        l.Path,
		Label:       l.Label,
		Title:       l.Title,
		Attributes:  attrs,
		Current:     l.Current,
		Highlighted: l.Highlighted,
		SortOrder:   l.SortOrder,
	}
}

// Specs converts links in order.
func Specs(links []NavLink) []navlink.LinkSpec {
	out := make([]navlink.LinkSpec, 0, len(links))
	for i := range links {
		out = append(out, links[i].Spec())
	}

	return out
}
