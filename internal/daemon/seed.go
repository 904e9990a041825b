package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storenav/storenav/internal/config"
	"github.com/storenav/storenav/internal/db/controller/link"
	"github.com/storenav/storenav/internal/db/models"
)

// seed stores the configured menu links if the link table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	count, err := link.Count(db)
	if err != nil {
		return errors.Wrap(err, "failed to count links")
	}

	if count > 0 {
		log.Debug().Int64("links", count).Msg("menu storage not empty, skip seeding")

		return nil
	}

	for _, m := range cfg.Menu {
		if _, err = link.Create(db, models.NavLink{
			Menu:        m.Menu,
			Path:        m.Path,
			Label:       m.Label,
			Title:       m.Title,
			Attributes:  m.Attributes,
			Highlighted: m.Highlighted,
			SortOrder:   m.SortOrder,
		}); err != nil {
			return errors.Wrapf(err, "failed to seed link %q of menu %q", m.Label, m.Menu)
		}
	}

	log.Info().Int("links", len(cfg.Menu)).Msg("seeded menu storage from config")

	return nil
}
