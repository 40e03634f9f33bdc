package dao

import (
	"context"

	"github.com/hallowlabs/academy-backend/stores/gdb/account"
)

// FindOrCreateUser returns the user for a checksummed wallet address,
// creating the row on first interaction.
func (d *Dao) FindOrCreateUser(c context.Context, address string) (*account.User, error) {
	var user account.User
	err := d.DB.WithContext(c).
		Where(account.User{Address: address}).
		FirstOrCreate(&user).Error
	return &user, err
}

func (d *Dao) GetUserByAddress(c context.Context, address string) (*account.User, error) {
	var user account.User
	err := d.DB.WithContext(c).
		Where("address = ?", address).First(&user).Error
	return &user, err
}

func (d *Dao) UpdateUser(c context.Context, user *account.User) error {
	return d.DB.WithContext(c).Save(user).Error
}
