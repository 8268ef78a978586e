package context

import (
	"context"

	"github.com/globalremedies/backend/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserType(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserTypeKey)
	if v == nil {
		return "", false
	}
	t, ok := v.(string)
	return t, ok
}
