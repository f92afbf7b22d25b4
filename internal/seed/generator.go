// Package seed генерирует синтетический снапшот: пользователи, посты и
// комментарии с согласованными ссылками. Снапшот собирается с нуля при каждом
// вызове и целиком заменяет содержимое стора.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/store"
)

type Counts struct {
	Users    int
	Posts    int
	Comments int // количество групп «корень + кандидаты в ответы»
}

func DefaultCounts() Counts {
	return Counts{Users: 100, Posts: 200, Comments: 400}
}

// Generate строит полностью самосогласованный снапшот. Каждый вызов заводит
// собственный источник случайности — общих мутабельных данных между вызовами нет.
func Generate(c Counts) domain.Snapshot {
	f := gofakeit.New(0)
	now := time.Now().UTC()

	users := make([]domain.User, 0, c.Users)
	emails := make(map[string]struct{}, c.Users)
	usernames := make(map[string]struct{}, c.Users)
	for i := 0; i < c.Users; i++ {
		created := f.DateRange(now.AddDate(-1, 0, 0), now)
		users = append(users, domain.User{
			ID:             uuid.New(),
			Email:          unique(emails, f.Email),
			Username:       unique(usernames, f.Username),
			Password:       f.Password(true, true, true, false, false, 12),
			ProfilePicture: imageURL(f, 128, 128),
			CreatedAt:      created,
			UpdatedAt:      created,
		})
	}

	userIDs := make([]domain.UserID, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	posts := make([]domain.Post, 0, c.Posts)
	for i := 0; i < c.Posts; i++ {
		images := make([]string, f.Number(1, 3))
		for j := range images {
			images[j] = imageURL(f, 640, 480)
		}
		posts = append(posts, domain.Post{
			ID:          uuid.New(),
			OwnerID:     pick(f, userIDs),
			Description: f.Sentence(8),
			Images:      images,
			Likes:       subset(f, userIDs),
			Dislikes:    subset(f, userIDs),
		})
	}

	allPostIDs := postIDs(posts)

	comments := make([]domain.Comment, 0, c.Comments*3)
	for i := 0; i < c.Comments && len(allPostIDs) > 0; i++ {
		postID := pick(f, allPostIDs)

		// Кандидаты в ответы живут на том же посте, что и корень.
		candidates := make([]domain.Comment, f.Number(1, 5))
		for j := range candidates {
			candidates[j] = domain.Comment{
				ID:       uuid.New(),
				PostID:   postID,
				OwnerID:  pick(f, userIDs),
				Replies:  []domain.CommentID{},
				Likes:    subset(f, userIDs),
				Dislikes: subset(f, userIDs),
			}
		}

		root := domain.Comment{
			ID:       uuid.New(),
			PostID:   postID,
			OwnerID:  pick(f, userIDs),
			Replies:  chooseReplies(f, candidates),
			Likes:    subset(f, userIDs),
			Dislikes: subset(f, userIDs),
		}

		comments = append(comments, root)
		comments = append(comments, candidates...)
	}

	return domain.Snapshot{Users: users, Posts: posts, Comments: comments}
}

// Apply генерирует снапшот и ставит его в стор одной записью —
// рессид это сброс фикстуры, не слияние.
func Apply(s *store.Store, c Counts) {
	s.Write(func(domain.Snapshot) domain.Snapshot {
		return Generate(c)
	})
}

// chooseReplies выбирает различные id из пула кандидатов. Пул из одного
// кандидата даёт ровно один ответ, иначе берём случайное число от 1 до
// размера пула. Выбор повторяется, пока не найдётся неиспользованный id или
// пул не будет исчерпан — тогда останавливаемся с тем, что собрали.
func chooseReplies(f *gofakeit.Faker, candidates []domain.Comment) []domain.CommentID {
	want := replyAmount(f, len(candidates))

	chosen := make(map[int]struct{}, want)
	replies := make([]domain.CommentID, 0, want)
	for len(replies) < want && len(chosen) < len(candidates) {
		idx := f.Number(0, len(candidates)-1)
		if _, used := chosen[idx]; used {
			continue
		}
		chosen[idx] = struct{}{}
		replies = append(replies, candidates[idx].ID)
	}
	return replies
}

func replyAmount(f *gofakeit.Faker, pool int) int {
	switch {
	case pool <= 0:
		return 0
	case pool == 1:
		return 1
	default:
		return f.Number(1, pool)
	}
}

// unique прогоняет генератор, пока значение не окажется новым;
// при затяжных коллизиях доклеивает счётчик.
func unique(seen map[string]struct{}, gen func() string) string {
	v := gen()
	for i := 0; ; i++ {
		if _, dup := seen[v]; !dup {
			break
		}
		v = fmt.Sprintf("%d.%s", i, gen())
	}
	seen[v] = struct{}{}
	return v
}

// imageURL собирает ссылку на случайную картинку нужного размера.
func imageURL(f *gofakeit.Faker, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/id/%d/%d/%d", f.Number(1, 1000), width, height)
}

func pick(f *gofakeit.Faker, ids []uuid.UUID) uuid.UUID {
	if len(ids) == 0 {
		return uuid.Nil
	}
	return ids[f.Number(0, len(ids)-1)]
}

// subset — случайное подмножество id, от пустого до всего набора.
func subset(f *gofakeit.Faker, ids []uuid.UUID) []uuid.UUID {
	shuffled := make([]uuid.UUID, len(ids))
	copy(shuffled, ids)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := f.Number(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:f.Number(0, len(shuffled))]
}

func postIDs(posts []domain.Post) []domain.PostID {
	ids := make([]domain.PostID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
