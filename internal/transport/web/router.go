package web

import (
	"log"
	"net/http"

	"github.com/VallenDraa/mock-development-api/internal/transport/web/mw"
	authv1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1/auth"
	commentv1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1/comment"
	"github.com/VallenDraa/mock-development-api/internal/transport/web/v1/health"
	postv1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1/post"
	userv1 "github.com/VallenDraa/mock-development-api/internal/transport/web/v1/user"
)

func newRouter(logger *log.Logger, repos Repos, auth AuthDeps, hh *health.Handler) http.Handler {
	authLog := log.New(logger.Writer(), logger.Prefix()+"[auth] ", logger.Flags())
	userLog := log.New(logger.Writer(), logger.Prefix()+"[user] ", logger.Flags())
	postLog := log.New(logger.Writer(), logger.Prefix()+"[post] ", logger.Flags())
	commentLog := log.New(logger.Writer(), logger.Prefix()+"[comment] ", logger.Flags())

	login := &authv1.HandlerLogin{Log: authLog, Auth: auth.Service}
	register := &authv1.HandlerRegister{Log: authLog, Auth: auth.Service}
	me := &authv1.HandlerMe{Log: authLog, Auth: auth.Service}
	refresh := &authv1.HandlerRefresh{Log: authLog, Auth: auth.Service}
	users := &userv1.Handler{Log: userLog, Users: repos.Users}
	posts := &postv1.Handler{Log: postLog, Posts: repos.Posts}
	comments := &commentv1.Handler{Log: commentLog, Comments: repos.Comments}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /healthz", hh.Liveness)
	mux.HandleFunc("GET /readyz", hh.Readiness)

	// auth: login/register/refresh открыты, me сам разбирает Bearer
	mux.HandleFunc("POST /auth/login", login.Login)
	mux.HandleFunc("POST /auth/register", register.Register)
	mux.HandleFunc("POST /auth/refresh-token", refresh.RefreshToken)
	mux.HandleFunc("GET /auth/me", me.Me)

	// ресурсные роуты закрыты access-токеном
	guard := mw.AuthDeps{Tokens: auth.Access}
	protect := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAuth(guard, h)
	}

	mux.Handle("GET /users", protect(users.List))
	mux.Handle("POST /users", protect(users.Create))
	mux.Handle("GET /users/{id}", protect(users.GetByID))
	mux.Handle("PUT /users/{id}", protect(users.Update))
	mux.Handle("PUT /users/{id}/password", protect(users.UpdatePassword))
	mux.Handle("DELETE /users/{id}", protect(users.Delete))

	mux.Handle("GET /posts", protect(posts.List))
	mux.Handle("POST /posts", protect(posts.Create))
	mux.Handle("GET /posts/{id}", protect(posts.GetByID))
	mux.Handle("PUT /posts/{id}", protect(posts.Update))
	mux.Handle("DELETE /posts/{id}", protect(posts.Delete))

	mux.Handle("GET /posts/{id}/comments", protect(comments.ListByPost))
	mux.Handle("POST /comments", protect(comments.Create))
	mux.Handle("GET /comments/{id}", protect(comments.GetByID))
	mux.Handle("DELETE /comments/{id}", protect(comments.Delete))

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}
