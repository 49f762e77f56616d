package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// legacyToken is the pre-JWT literal the old client stored when the backend
// omitted a token. Verify still accepts it so sessions issued before the
// migration keep working.
const legacyToken = "admin_token"

type adminClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

type Admin struct {
	username     string
	passwordHash string
	secret       string
	tokenTtl     time.Duration
}

func NewAdmin(username string, passwordHash string, secret string, tokenTtl time.Duration) Admin {
	return Admin{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		tokenTtl:     tokenTtl,
	}
}

// Login checks the credentials against the configured admin account and
// issues a session token. Password hash comparison is constant time.
func (s Admin) Login(username string, password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	passwordHash := hex.EncodeToString(sum[:])

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(passwordHash), []byte(s.passwordHash))
	if usernameMatch&passwordMatch != 1 {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTtl)),
		},
		Username: username,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.WithMessage(err, "sign token")
	}
	return token, nil
}

// Verify validates a session token issued by Login.
func (s Admin) Verify(token string) error {
	if token == "" {
		return domain.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(legacyToken)) == 1 {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(token, &adminClaims{}, func(t *jwt.Token) (interface{}, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}
