package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	CategoryKeyPrefix = "category:%d"
	CategoryListKey   = "categories:all"
	GroupKeyPrefix    = "group:%d"
)

const (
	UserTTL     = 5 * time.Minute
	CategoryTTL = 10 * time.Minute
	GroupTTL    = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CategoryKey(categoryID uint) string {
	return fmt.Sprintf(CategoryKeyPrefix, categoryID)
}

func GroupKey(groupID uint) string {
	return fmt.Sprintf(GroupKeyPrefix, groupID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateCategory drops both the single-category entry and the list entry;
// category writes are rare and always go through this path.
func InvalidateCategory(ctx context.Context, categoryID uint) {
	Invalidate(ctx, CategoryKey(categoryID))
	Invalidate(ctx, CategoryListKey)
}

func InvalidateGroup(ctx context.Context, groupID uint) {
	Invalidate(ctx, GroupKey(groupID))
}
