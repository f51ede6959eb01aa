package migrate

import (
	"socialnet/internal/follow"
	"socialnet/internal/interaction"
	"socialnet/internal/message"
	"socialnet/internal/notification"
	"socialnet/internal/post"
	"socialnet/internal/shared/db"
	"socialnet/internal/user"
)

func AutoMigrateAll(store *db.Store) error {
	return store.DB.AutoMigrate(
		&user.User{},
		&follow.Follow{},
		&post.Post{}, &post.Hashtag{}, &post.Comment{},
		&interaction.Like{}, &interaction.Bookmark{},
		&notification.Notification{},
		&message.Message{},
	)
}
