package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const cartIDClaim = "cart_id"

var ErrMissingSecret = errors.New("session secret is empty")

// Issuer signs anonymous session tokens. Each token carries the id of the
// cart it owns.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for cartID. A blank or malformed cartID gets a fresh one.
func (i *Issuer) Issue(cartID string) (token string, id string, err error) {
	if _, perr := uuid.Parse(cartID); perr != nil {
		cartID = uuid.NewString()
	}
	claims := jwt.MapClaims{
		cartIDClaim: cartID,
		"iat":       i.now().Unix(),
	}
	if i.ttl > 0 {
		claims["exp"] = i.now().Add(i.ttl).Unix()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", "", err
	}
	return signed, cartID, nil
}

// Middleware rejects requests without a valid session token.
func (i *Issuer) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    i.secret,
		SigningMethod: "HS256",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or missing session"})
		},
	})
}

// CartIDFromCtx reads the cart id claim placed in locals by Middleware.
func CartIDFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	raw, ok := claims[cartIDClaim].(string)
	if !ok || raw == "" {
		return "", fiber.ErrUnauthorized
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", fiber.ErrUnauthorized
	}
	return raw, nil
}
