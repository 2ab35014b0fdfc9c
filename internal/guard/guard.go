// Package guard implements the client-side navigation guard: before each
// navigation it inspects the locally cached session and redirects
// unauthenticated visits to login and already-authenticated visits away from
// the login and register screens.
//
// This is a UX convenience over client-cached state. The server-side JWT
// middleware and role gate remain the only real enforcement boundary.
package guard

import (
	"slices"

	"siproa/internal/models"
)

// Well-known route names.
const (
	RouteLogin    = "login"
	RouteRegister = "register"
	RouteHome     = "home"
)

// Route describes a navigation target.
type Route struct {
	Name         string
	RequiresAuth bool
}

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

type Guard struct {
	store SessionStore
}

func New(store SessionStore) *Guard {
	return &Guard{store: store}
}

// Resolve decides what to do with a navigation to target. An unreadable cache
// counts as no session.
func (g *Guard) Resolve(target Route) Decision {
	sess, err := g.store.Load()
	if err != nil {
		sess = Session{}
	}

	authed := sess.Token != ""
	isMaestro := sess.User != nil && slices.Contains(sess.User.Roles, models.RoleMaestro)

	if target.RequiresAuth && (!authed || !isMaestro) {
		return RedirectLogin
	}
	if (target.Name == RouteLogin || target.Name == RouteRegister) && authed && isMaestro {
		return RedirectHome
	}
	return Allow
}
