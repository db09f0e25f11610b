package repo

import (
	"github.com/GlebRadaev/spintracker/internal/pg"
	sessionrepo "github.com/GlebRadaev/spintracker/internal/repo/session-repo"
	spinrepo "github.com/GlebRadaev/spintracker/internal/repo/spin-repo"
	userrepo "github.com/GlebRadaev/spintracker/internal/repo/user-repo"
	"github.com/GlebRadaev/spintracker/internal/service/authservice"
	"github.com/GlebRadaev/spintracker/internal/service/sessionservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	SessionRepo sessionservice.SessionRepo
	SpinRepo    sessionservice.SpinRepo
	TXManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		SessionRepo: sessionrepo.New(conn),
		SpinRepo:    spinrepo.New(conn),
		TXManager:   txManager,
	}
}
