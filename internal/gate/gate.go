package gate

import (
	"github.com/gofiber/fiber/v2"

	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/web/session"
)

// LocalsDecision is the fiber.Locals key the middleware stores the Decision under.
const LocalsDecision = "gate.decision"

// Action is the kind of a Decision.
type Action int

const (
	// Continue lets the request through unauthenticated.
	Continue Action = iota
	// Delegate hands the request to the provider's enforcement.
	Delegate
)

func (a Action) String() string {
	if a == Delegate {
		return "delegate"
	}

	return "continue"
}

// Decision is the outcome of Intercept. Provider is set for Delegate only.
type Decision struct {
	Action   Action
	Provider identity.Provider
}

func (d Decision) String() string { return d.Action.String() }

// RequestContext is one request as seen by the gate.
type RequestContext struct {
	Path string
	// Token is the bearer token or session id sent by the caller, if any.
	Token string
}

// RequestContextFrom extracts the RequestContext of a fiber request.
func RequestContextFrom(c *fiber.Ctx) RequestContext {
	token := c.Cookies(session.CookieName)

	if bearer := identity.BearerToken(c); bearer != "" {
		token = bearer
	}

	return RequestContext{Path: c.Path(), Token: token}
}

// Gate applies the provider resolution to requests.
type Gate struct {
	resolver *identity.Resolver
	matcher  *Matcher
}

// New creates a Gate.
func New(resolver *identity.Resolver, matcher *Matcher) *Gate {
	return &Gate{resolver: resolver, matcher: matcher}
}

// Intercepts reports whether path is subject to the gate.
func (g *Gate) Intercepts(path string) bool {
	return g.matcher.Match(path)
}

// Intercept decides how rc proceeds from the resolver's cached status.
// An unresolved resolver is treated like an unavailable provider.
func (g *Gate) Intercept(_ RequestContext) Decision {
	if p := g.resolver.Provider(); p != nil {
		return Decision{Action: Delegate, Provider: p}
	}

	return Decision{Action: Continue}
}

// Middleware applies Intercept to intercepted routes and stores the decision in
// fiber.Locals for the access log.
func (g *Gate) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.Intercepts(c.Path()) {
			return c.Next()
		}

		d := g.Intercept(RequestContextFrom(c))
		c.Locals(LocalsDecision, d)
		countDecision(d)

		if d.Action == Delegate {
			return d.Provider.Enforce(c)
		}

		return c.Next()
	}
}
