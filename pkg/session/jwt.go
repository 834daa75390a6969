package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

type claims struct {
	jwt.StandardClaims
	Username string  `json:"username"`
	CSRF     string  `json:"csrf"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

// Generate builds an unsigned HS512 token carrying the session state.
func (gen *JWTService) Generate(s Session, ttl time.Duration) *jwt.Token {
	now := TimeNow()
	c := claims{
		StandardClaims: jwt.StandardClaims{
			Id:        s.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		Username: s.Username,
		CSRF:     s.CSRFToken,
		Flashes:  s.Flashes,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, c)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

func (gen *JWTService) Validate(token string) (Session, error) {
	var c claims
	jwtToken, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Session{}, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return Session{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return Session{}, ErrTokenNotValid
	}

	if c.ExpiresAt < TimeNow().Unix() {
		return Session{}, fmt.Errorf("token expired at %v: %w", time.Unix(c.ExpiresAt, 0), ErrTokenExpired)
	}

	if c.Id == "" || c.CSRF == "" {
		return Session{}, fmt.Errorf("missing session claims: %w", ErrTokenNotValid)
	}

	return Session{
		ID:        c.Id,
		Username:  c.Username,
		CSRFToken: c.CSRF,
		Flashes:   c.Flashes,
	}, nil
}
