package refdata

import (
	"time"

	pkgdb "github.com/gasplexhq/gasplex/pkg/db"
	"gorm.io/gorm"
)

// Seed fills the offtaker directory when it is empty so the service is
// usable out of the box in local and self-hosted environments.
func Seed(db *gorm.DB, offtakers []string) error {
	var count int64
	if err := db.Model(&Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, name := range offtakers {
		customer := Customer{
			ID:        int64(i + 1),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(&customer).Error; err != nil {
			// Two instances may race on first boot; the first writer wins.
			if pkgdb.IsDuplicateKeyErr(err) {
				continue
			}
			return err
		}
		site := CustomerSite{
			ID:         int64(i + 1),
			CustomerID: customer.ID,
			Name:       name + " MAIN",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := db.Create(&site).Error; err != nil && !pkgdb.IsDuplicateKeyErr(err) {
			return err
		}
	}
	return nil
}
