package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type PostID = uuid.UUID
type CommentID = uuid.UUID

// Пользователь. Пароль хранится открытым текстом и сравнивается байт-в-байт —
// данные одноразовые, хэширование сюда сознательно не добавлено.
type User struct {
	ID             UserID    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Password       string    `json:"-"` // никогда не отдаём наружу
}

// PublicUser — единственная форма пользователя, которая уходит за границу репозитория.
type PublicUser struct {
	ID             UserID    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// Пост. OwnerID ссылается на существующего пользователя в момент создания;
// после рессида ссылка может протухнуть — документированное поведение фикстуры.
type Post struct {
	ID          PostID   `json:"id"`
	OwnerID     UserID   `json:"owner"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Likes       []UserID `json:"likes"`
	Dislikes    []UserID `json:"dislikes"`
}

// PostDetail — пост вместе с id его комментариев.
type PostDetail struct {
	Post
	Comments []CommentID `json:"comments"`
}

// Комментарий. Replies — плоский список id других комментариев того же сида;
// граф ответов разрешается поиском по id, без указателей.
type Comment struct {
	ID       CommentID   `json:"id"`
	PostID   PostID      `json:"post"`
	OwnerID  UserID      `json:"owner"`
	Replies  []CommentID `json:"replies"`
	Likes    []UserID    `json:"likes"`
	Dislikes []UserID    `json:"dislikes"`
}

// Snapshot — одно целостное состояние стора, порядок срезов newest-first.
// Опубликованный снапшот никогда не мутируется: любое изменение строит новый.
type Snapshot struct {
	Users    []User
	Posts    []Post
	Comments []Comment
}
