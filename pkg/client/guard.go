package client

import "net/url"

// DefaultLoginPath is where denied navigation is redirected.
const DefaultLoginPath = "/login"

// Decision is the outcome of a guard check. When Allowed is false,
// RedirectTo carries the login route with the originally requested path
// preserved for post-login redirect.
type Decision struct {
	Allowed    bool
	RedirectTo string
	From       string
}

// Guard gates access to protected views based on session state and an
// optional required role.
type Guard struct {
	Session   *Session
	LoginPath string
}

func NewGuard(session *Session) *Guard {
	return &Guard{Session: session, LoginPath: DefaultLoginPath}
}

// Check decides whether the view at path may render. An empty requiredRole
// only demands an authenticated session.
func (g *Guard) Check(path, requiredRole string) Decision {
	loginPath := g.LoginPath
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}

	deny := Decision{
		Allowed:    false,
		RedirectTo: loginPath + "?from=" + url.QueryEscape(path),
		From:       path,
	}

	if !g.Session.IsAuthenticated() {
		return deny
	}

	if requiredRole != "" {
		user := g.Session.User()
		if user == nil || user.Role != requiredRole {
			return deny
		}
	}

	return Decision{Allowed: true, From: path}
}
