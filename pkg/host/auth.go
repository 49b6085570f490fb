package host

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"ember/pkg/value"
)

func registerAuth(r *Registry) {
	r.Register("auth.hash_password", authHashPassword)
	r.Register("auth.verify_password", authVerifyPassword)
	r.Register("auth.sign_token", authSignToken)
	r.Register("auth.verify_token", authVerifyToken)
}

func authHashPassword(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	password, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("bcrypt hash failed: %s", err)
		return value.Errorf("failed to hash password: %s", err)
	}
	return &value.String{Value: string(hash)}
}

func authVerifyPassword(args []value.Value) value.Value {
	if len(args) != 2 {
		return wrongArgs(len(args), 2)
	}
	hash, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	password, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return value.Bool(err == nil)
}

// authSignToken issues an HS256 JWT from a claims map, a secret and a
// lifetime like "24h".
func authSignToken(args []value.Value) value.Value {
	if len(args) != 3 {
		return wrongArgs(len(args), 3)
	}
	payload, errv := mapArg(args, 0)
	if errv != nil {
		return errv
	}
	secret, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	expiresIn, errv := stringArg(args, 2)
	if errv != nil {
		return errv
	}

	duration, err := time.ParseDuration(expiresIn)
	if err != nil {
		return value.Errorf("invalid duration: %s", err)
	}

	claims := jwt.MapClaims{}
	for k, v := range payload.Pairs {
		claims[k] = value.ToNative(v)
	}
	claims["exp"] = time.Now().Add(duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Errorf("jwt signing failed: %s", err)
		return value.Errorf("failed to sign token: %s", err)
	}
	return &value.String{Value: signed}
}

func authVerifyToken(args []value.Value) value.Value {
	if len(args) != 2 {
		return wrongArgs(len(args), 2)
	}
	tokenString, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	secret, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return value.Errorf("invalid token: %s", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return value.Errorf("invalid token")
	}

	out := &value.Map{Pairs: make(map[string]value.Value, len(claims))}
	for k, v := range claims {
		out.Pairs[k] = value.FromNative(v)
	}
	return out
}
