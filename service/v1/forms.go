package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hallowlabs/academy-backend/logger/xzap"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/stores/gdb/forms"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

// SubmitContact is best-effort: the contact table is optional and a failed
// write must never block the form. Errors are logged and swallowed.
func SubmitContact(ctx context.Context, s *svc.ServerCtx, req types.ContactRequest) {
	err := s.Dao.TryCreateContactMessage(ctx, &forms.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		xzap.WithContext(ctx).Warn("contact message not persisted", zap.Error(err))
	}
}

// Subscribe is best-effort for the same reason; duplicate emails are treated
// as success in the dao.
func Subscribe(ctx context.Context, s *svc.ServerCtx, req types.SubscribeRequest) {
	if err := s.Dao.TryCreateSubscriber(ctx, &forms.Subscriber{Email: req.Email}); err != nil {
		xzap.WithContext(ctx).Warn("subscriber not persisted", zap.Error(err))
	}
}
