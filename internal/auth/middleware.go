package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

const identityKey = "identity"

// Middleware resolves the caller's Identity exactly once per request, from
// the session if present, else from a Bearer token, and stashes it in the
// request locals. Handlers read it back through FromContext.
type Middleware struct {
	store  *session.Store
	issuer *TokenIssuer
}

func NewMiddleware(store *session.Store, issuer *TokenIssuer) *Middleware {
	return &Middleware{store: store, issuer: issuer}
}

// Resolve is installed globally; it never rejects a request on its own.
func (m *Middleware) Resolve(c *fiber.Ctx) error {
	identity := m.fromSession(c)
	if identity.IsAnonymous() {
		identity = m.fromBearer(c)
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

func (m *Middleware) fromSession(c *fiber.Ctx) Identity {
	sess, err := m.store.Get(c)
	if err != nil {
		return Identity{}
	}

	idStr, _ := sess.Get("id").(string)
	roleStr, _ := sess.Get("role").(string)
	if idStr == "" || roleStr == "" {
		return Identity{}
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}
	}
	role := models.Role(roleStr)
	if !role.Valid() {
		return Identity{}
	}

	fullName, _ := sess.Get("full_name").(string)
	email, _ := sess.Get("email").(string)

	return Identity{ID: id, Role: role, FullName: fullName, Email: email}
}

func (m *Middleware) fromBearer(c *fiber.Ctx) Identity {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return Identity{}
	}

	identity, err := m.issuer.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return Identity{}
	}
	return identity
}

// SaveSession writes the logged-in account into a fresh session. The old
// session, if any, is destroyed first.
func (m *Middleware) SaveSession(c *fiber.Ctx, account *models.Account) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}

	sess.Set("id", account.ID.String())
	sess.Set("role", string(account.Role))
	sess.Set("full_name", account.FullName)
	sess.Set("email", account.Email)
	return sess.Save()
}

// DestroySession implements logout.
func (m *Middleware) DestroySession(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// FromContext returns the Identity resolved for this request.
func FromContext(c *fiber.Ctx) Identity {
	if identity, ok := c.Locals(identityKey).(Identity); ok {
		return identity
	}
	return Identity{}
}

// RequireRole gates a route group to one role.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := FromContext(c)
		if identity.IsAnonymous() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "login required",
			})
		}
		if identity.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "not allowed for this role",
			})
		}
		return c.Next()
	}
}
