package domain

import "context"

// Контракты репозиториев. Все операции «проверь-и-измени» обязаны выполняться
// внутри одной трансформации стора, иначе между чтением и записью успевает
// вклиниться другой запрос или рессид.

type UsersRepo interface {
	// Login возвращает ErrNotFound и при неизвестном email, и при неверном
	// пароле — наружу эти случаи не различаются.
	Login(ctx context.Context, creds Login) (PublicUser, error)
	Register(ctx context.Context, u User) error
	UserByID(ctx context.Context, id UserID) (PublicUser, error)
	Users(ctx context.Context) ([]PublicUser, error)
	// UpdateUser меняет username/email/profilePicture, пароль и createdAt
	// остаются прежними. Коллизия нового email/username с другим
	// пользователем — ErrUserExists.
	UpdateUser(ctx context.Context, u User) (PublicUser, error)
	// UpdateUserPassword сверяет старый пароль и ставит новый;
	// несовпадение старого — ErrInvalidCreds.
	UpdateUserPassword(ctx context.Context, id UserID, oldPassword, newPassword string) error
	DeleteUser(ctx context.Context, id UserID) error
}

type PostsRepo interface {
	AddPost(ctx context.Context, p Post) error
	Posts(ctx context.Context) ([]Post, error)
	PostByID(ctx context.Context, id PostID) (PostDetail, error)
	UpdatePost(ctx context.Context, p Post) (Post, error)
	DeletePost(ctx context.Context, id PostID) error
}

type CommentsRepo interface {
	AddComment(ctx context.Context, c Comment) error
	CommentByID(ctx context.Context, id CommentID) (Comment, error)
	PostComments(ctx context.Context, postID PostID) ([]Comment, error)
	DeleteComment(ctx context.Context, id CommentID) error
}
