package web

import "github.com/VallenDraa/mock-development-api/internal/domain"

type Repos struct {
	Users    domain.UsersRepo
	Posts    domain.PostsRepo
	Comments domain.CommentsRepo
}

type AuthDeps struct {
	Service domain.AuthService
	Access  domain.TokenManager // для middleware ресурсных роутов
}
