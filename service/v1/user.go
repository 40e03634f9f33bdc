package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	xcommon "github.com/hallowlabs/academy-backend/common"
	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/stores/gdb/account"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

func GetUser(ctx context.Context, s *svc.ServerCtx, address string) (*account.User, error) {
	unified, err := xcommon.UnifyAddress(address)
	if err != nil {
		return nil, errcode.NewInvalidParamsErr(err.Error())
	}

	user, err := s.Dao.GetUserByAddress(ctx, unified)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("user not found")
		}
		return nil, errors.Wrap(err, "failed on get user")
	}
	return user, nil
}

// UpdateUser lets a wallet edit its own profile; allowlisted admins may edit
// anyone's.
func UpdateUser(ctx context.Context, s *svc.ServerCtx, callerAddress, address string, req types.UpdateUserRequest) (*account.User, error) {
	if !xcommon.SameAddress(callerAddress, address) && !s.Acl.IsAuthorized(callerAddress) {
		return nil, errcode.NewUnauthorizedErr("wallet may only edit its own profile")
	}

	user, err := GetUser(ctx, s, address)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.Dao.UpdateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed on update user")
	}
	return user, nil
}
