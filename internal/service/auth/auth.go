package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/saludmaterna/maternidad_backend/config"
	"github.com/saludmaterna/maternidad_backend/internal/repo"
	entusuario "github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
	"github.com/saludmaterna/maternidad_backend/internal/service/auditoria"
	"github.com/saludmaterna/maternidad_backend/internal/service/usuario"
	pasetotoken "github.com/saludmaterna/maternidad_backend/pkg/paseto"
	"github.com/saludmaterna/maternidad_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyLoginAttempts returns the Redis key for the failed-login counter.
func redisKeyLoginAttempts(username string) string { return "login:attempts:" + username }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Username string // one of Username or Rut must be set
	Rut      string
	Password string
}

type ChangePasswordRequest struct {
	PasswordActual string
	PasswordNueva  string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, usuarioID uuid.UUID, req ChangePasswordRequest) error

	// SessionUserID resolves an active session to the owning user.
	SessionUserID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	audit  auditoria.Recorder
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	audit auditoria.Recorder,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		audit:  audit,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Rut = usuario.NormalizeRut(req.Rut)

	var (
		u   *repo.Usuario
		err error
	)

	switch {
	case req.Username != "":
		u, err = s.db.Usuario.Query().
			Where(entusuario.Username(req.Username)).
			Only(ctx)
	case req.Rut != "":
		u, err = s.db.Usuario.Query().
			Where(entusuario.Rut(req.Rut)).
			Only(ctx)
	default:
		return nil, ErrCredencialesInvalidas
	}

	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}

	if !u.Activo {
		return nil, ErrCuentaInactiva
	}

	// Lockout counter lives in Redis with its own TTL
	attemptsKey := redisKeyLoginAttempts(u.Username)
	attempts, _ := s.rdb.Get(ctx, attemptsKey).Int()
	if attempts >= maxLoginAttempts {
		return nil, ErrCuentaBloqueada
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u, attemptsKey)
		return nil, ErrCredencialesInvalidas
	}

	s.rdb.Del(ctx, attemptsKey)

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditoria.Entry{
		UsuarioID: &u.ID,
		Accion:    "LOGIN",
		Detalles:  map[string]any{"username": u.Username},
	})

	return tokens, nil
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired; not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, usuarioID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.PasswordNueva) < 8 {
		return ErrPasswordMuyCorta
	}

	u, err := s.db.Usuario.Get(ctx, usuarioID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrCredencialesInvalidas
		}
		return fmt.Errorf("get usuario: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.PasswordActual); err != nil {
		return ErrPasswordActualIncorrecta
	}

	hash, err := password.Hash(req.PasswordNueva)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.Usuario.UpdateOne(u).SetPasswordHash(hash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.audit.Record(ctx, auditoria.Entry{
		UsuarioID: &u.ID,
		Accion:    "CAMBIO_PASSWORD",
	})

	return nil
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

func (s *authService) SessionUserID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	val, err := s.rdb.Get(ctx, redisKeySession(sessionID.String())).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("redis get session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrSessionNotFound
	}
	return userID, nil
}

func (s *authService) createSession(ctx context.Context, u *repo.Usuario) (*AuthTokens, error) {
	sessionID := uuid.New()

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.Usuario, attemptsKey string) {
	attempts, err := s.rdb.Incr(ctx, attemptsKey).Result()
	if err != nil {
		slog.Warn("failed to count login attempt", "usuario_id", u.ID, "error", err)
		return
	}
	// The lock window restarts with each failure
	s.rdb.Expire(ctx, attemptsKey, accountLockMins*time.Minute)

	s.audit.Record(ctx, auditoria.Entry{
		UsuarioID: &u.ID,
		Accion:    "LOGIN_FALLIDO",
		Detalles:  map[string]any{"intentos": attempts},
	})
}
