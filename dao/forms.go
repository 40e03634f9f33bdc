package dao

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hallowlabs/academy-backend/stores/gdb/forms"
)

// ErrTableNotPresent is the typed soft failure for optional tables. Callers
// on the best-effort path log it and report success anyway.
var ErrTableNotPresent = errors.New("optional table not present")

// TryCreateContactMessage writes a contact form entry if the table exists.
func (d *Dao) TryCreateContactMessage(c context.Context, record *forms.ContactMessage) error {
	err := d.DB.WithContext(c).Create(record).Error
	if err != nil && IsUndefinedTable(err) {
		return ErrTableNotPresent
	}
	return err
}

// TryCreateSubscriber adds a newsletter subscriber if the table exists.
// Duplicate emails are not an error on this path.
func (d *Dao) TryCreateSubscriber(c context.Context, record *forms.Subscriber) error {
	err := d.DB.WithContext(c).Create(record).Error
	if err != nil {
		if IsUndefinedTable(err) {
			return ErrTableNotPresent
		}
		if IsUniqueViolation(err) {
			return nil
		}
	}
	return err
}
