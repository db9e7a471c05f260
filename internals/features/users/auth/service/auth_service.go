// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	googleVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"centralcelular_backend/internals/configs"
	"centralcelular_backend/internals/constants"
	accountModel "centralcelular_backend/internals/features/accounts/model"
	waModel "centralcelular_backend/internals/features/notifications/whatsapp/model"
	waService "centralcelular_backend/internals/features/notifications/whatsapp/service"
	"centralcelular_backend/internals/features/users/auth/dto"
	authModel "centralcelular_backend/internals/features/users/auth/model"
	userModel "centralcelular_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
	OtpTTL          = 10 * time.Minute
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is deactivated")
	ErrOtpInvalid         = errors.New("otp code invalid or expired")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNoWhatsAppSession  = errors.New("account has no connected whatsapp session")
)

type AuthService struct {
	DB       *gorm.DB
	WhatsApp *waService.Client
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, WhatsApp: waService.NewClient()}
}

/* ===================== TOKENS ===================== */

func signToken(u *userModel.UsuarioModel, secret string, ttl time.Duration, typ string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    u.UsuarioID.String(),
		"account_id": u.UsuarioAccountID.String(),
		"role":       u.UsuarioCargo,
		"typ":        typ,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IssueTokens builds the access/refresh pair for an authenticated user.
func (s *AuthService) IssueTokens(u *userModel.UsuarioModel) (access, refresh string, err error) {
	access, err = signToken(u, configs.JWTSecret, AccessTokenTTL, "access")
	if err != nil {
		return "", "", err
	}
	refresh, err = signToken(u, configs.JWTRefreshSecret, RefreshTokenTTL, "refresh")
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseRefreshToken validates a refresh token and returns the user it
// belongs to, re-checking the row so a deactivated user cannot refresh.
func (s *AuthService) ParseRefreshToken(raw string) (*userModel.UsuarioModel, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return nil, ErrInvalidCredentials
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, ErrInvalidCredentials
	}

	userID, _ := claims["user_id"].(string)
	var user userModel.UsuarioModel
	if err := s.DB.First(&user, "usuario_id = ?", userID).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.UsuarioAtivo {
		return nil, ErrUserInactive
	}
	return &user, nil
}

/* ===================== REGISTER ===================== */

// Register creates the account and its first admin user atomically.
func (s *AuthService) Register(req *dto.RegisterRequest) (*userModel.UsuarioModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.UsuarioSenha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user userModel.UsuarioModel
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		account := accountModel.AccountModel{AccountNome: req.AccountNome}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		user = userModel.UsuarioModel{
			UsuarioAccountID: account.AccountID,
			UsuarioNome:      req.UsuarioNome,
			UsuarioEmail:     req.UsuarioEmail,
			UsuarioSenha:     string(hash),
			UsuarioCargo:     constants.RoleAdmin,
			UsuarioWhatsApp:  req.UsuarioWhatsApp,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

/* ===================== PASSWORD LOGIN ===================== */

// Login matches the email across accounts and checks the password
// against each candidate; the bcrypt comparison disambiguates when the
// same address exists under more than one account.
func (s *AuthService) Login(email, password string) (*userModel.UsuarioModel, error) {
	var candidates []userModel.UsuarioModel
	if err := s.DB.
		Where("usuario_email = ?", email).
		Order("usuario_created_at ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	for i := range candidates {
		u := &candidates[i]
		if bcrypt.CompareHashAndPassword([]byte(u.UsuarioSenha), []byte(password)) != nil {
			continue
		}
		if !u.UsuarioAtivo {
			return nil, ErrUserInactive
		}
		return u, nil
	}
	return nil, ErrInvalidCredentials
}

/* ===================== GOOGLE LOGIN ===================== */

// LoginWithGoogle verifies the Google ID token and logs in the existing
// user with that email. Google sign-in never creates users; accounts
// manage their own roster.
func (s *AuthService) LoginWithGoogle(idToken string) (*userModel.UsuarioModel, error) {
	v := googleVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, ErrInvalidCredentials
	}
	claimSet, err := googleVerifier.Decode(idToken)
	if err != nil || claimSet.Email == "" {
		return nil, ErrInvalidCredentials
	}

	var user userModel.UsuarioModel
	if err := s.DB.
		Where("usuario_email = ?", claimSet.Email).
		Order("usuario_created_at ASC").
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.UsuarioAtivo {
		return nil, ErrUserInactive
	}
	return &user, nil
}

/* ===================== OTP LOGIN ===================== */

func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// RequestOtp creates a one-shot code for the WhatsApp number and pushes
// it through the account's gateway session.
func (s *AuthService) RequestOtp(ctx context.Context, whatsapp string) error {
	var user userModel.UsuarioModel
	if err := s.DB.
		Where("usuario_whatsapp = ? AND usuario_ativo = true", whatsapp).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	code, err := generateOtpCode()
	if err != nil {
		return err
	}

	otp := authModel.OtpCode{
		AccountID: user.UsuarioAccountID,
		WhatsApp:  whatsapp,
		Code:      code,
		ExpiresAt: time.Now().Add(OtpTTL),
	}
	if err := s.DB.Create(&otp).Error; err != nil {
		return err
	}

	var conn waModel.WhatsAppConnectionModel
	if err := s.DB.
		Where("whatsapp_connection_account_id = ? AND whatsapp_connection_status = ?",
			user.UsuarioAccountID, "connected").
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoWhatsAppSession
		}
		return err
	}

	msg := fmt.Sprintf("Seu codigo de acesso: %s. Ele expira em 10 minutos.", code)
	if err := s.WhatsApp.SendText(ctx, conn.WhatsAppConnectionToken, whatsapp, msg); err != nil {
		log.Println("[ERROR] otp delivery:", err)
		return err
	}
	return nil
}

// VerifyOtp consumes the newest unused code for the number. Marking the
// row used is guarded so a replayed request cannot log in twice.
func (s *AuthService) VerifyOtp(whatsapp, code string) (*userModel.UsuarioModel, error) {
	var otp authModel.OtpCode
	err := s.DB.
		Where("whatsapp = ? AND code = ? AND used = false AND expires_at > ?",
			whatsapp, code, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOtpInvalid
	}
	if err != nil {
		return nil, err
	}

	res := s.DB.Model(&authModel.OtpCode{}).
		Where("id = ? AND used = false", otp.ID).
		Update("used", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOtpInvalid
	}

	var user userModel.UsuarioModel
	if err := s.DB.
		Where("usuario_whatsapp = ? AND usuario_account_id = ?", whatsapp, otp.AccountID).
		First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.UsuarioAtivo {
		return nil, ErrUserInactive
	}
	return &user, nil
}

/* ===================== LOGOUT ===================== */

// Logout blacklists the access token until its natural expiry.
func (s *AuthService) Logout(rawToken string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return ErrInvalidCredentials
	}

	expiredAt := time.Now().Add(AccessTokenTTL)
	if expFloat, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expFloat), 0)
	}

	entry := authModel.TokenBlacklist{Token: rawToken, ExpiredAt: expiredAt}
	return s.DB.Create(&entry).Error
}
