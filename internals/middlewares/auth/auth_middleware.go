// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"centralcelular_backend/internals/configs"
	accountModel "centralcelular_backend/internals/features/accounts/model"
	authModel "centralcelular_backend/internals/features/users/auth/model"
	userModel "centralcelular_backend/internals/features/users/user/model"
	helper "centralcelular_backend/internals/helpers"
)

// AuthMiddleware verifies the JWT, rejects blacklisted tokens, checks
// that the user and its account are still active, and stores the
// normalized (user_id, account_id, role) triple in Locals. Nothing past
// this middleware ever inspects the token again.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		helper.SetRawAccessToken(c, tokenString)

		// blacklist check, once per request
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] blacklist lookup:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := claimUUID(claims, "user_id")
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		accountID, err := claimUUID(claims, "account_id")
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing account ID")
		}
		role, _ := claims["role"].(string)
		if strings.TrimSpace(role) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role")
		}

		if err := ensureUserActive(db, userID, accountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}

		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocAccountID, accountID.String())
		c.Locals(helper.LocRole, role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if raw := helper.GetRawAccessToken(c); raw != "" {
		return raw, nil
	}
	return "", errors.New("token not provided")
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	s, ok := claims[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fmt.Errorf("claim %s missing", key)
	}
	return uuid.Parse(strings.TrimSpace(s))
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim malformed")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// ensureUserActive re-checks the user row and its account on every
// request; deactivating either cuts access immediately, not at token
// expiry.
func ensureUserActive(db *gorm.DB, userID, accountID uuid.UUID) error {
	var user userModel.UsuarioModel
	if err := db.
		Where("usuario_id = ? AND usuario_account_id = ?", userID, accountID).
		First(&user).Error; err != nil {
		return err
	}
	if !user.UsuarioAtivo {
		return errors.New("user is deactivated")
	}

	var account accountModel.AccountModel
	if err := db.Where("account_id = ?", accountID).First(&account).Error; err != nil {
		return err
	}
	if !account.AccountAtivo {
		return errors.New("account is deactivated")
	}
	return nil
}
