package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BukiOffor/kud-server/config"
	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/pkg/jwt"
)

func setupTestAuthService() (AuthService, *testRepos, *jwt.Manager) {
	repos := newTestRepos()
	authCfg := &config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	jwtMgr := jwt.NewManager(authCfg)
	svc := NewAuthService(repos.toRepository(), jwtMgr, nil, authCfg, zap.NewNop())
	return svc, repos, jwtMgr
}

func seedLoginUser(repos *testRepos, regNo, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := seedUser(repos, "user-"+regNo, regNo, nil)
	user.PasswordHash = string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	seedLoginUser(repos, "REG001", "password123")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		RegNo:    "REG001",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("Token 对不应为空")
	}
	if tokens.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in 不符：%d", tokens.ExpiresIn)
	}

	claims, err := jwtMgr.ParseToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("Access Token 应可解析: %v", err)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 token_type=access，实际=%s", claims.TokenType)
	}
	if claims.UserID != tokens.User.ID {
		t.Error("Token 中的 user_id 与响应不一致")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedLoginUser(repos, "REG001", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		RegNo:    "REG001",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

func TestAuthService_Login_UnknownRegNo(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		RegNo:    "NOPE",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	seedLoginUser(repos, "REG001", "password123")
	repos.user.users[0].IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		RegNo:    "REG001",
		Password: "password123",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("期望 ErrAccountDisabled，实际=%v", err)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	seedLoginUser(repos, "REG001", "password123")

	refreshToken, err := jwtMgr.GenerateRefreshToken("user-REG001", "member")
	if err != nil {
		t.Fatalf("生成刷新凭证失败: %v", err)
	}

	tokens, err := svc.Refresh(context.Background(), refreshToken)
	if err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("刷新后 Token 对不应为空")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	seedLoginUser(repos, "REG001", "password123")

	accessToken, err := jwtMgr.GenerateAccessToken("user-REG001", "member")
	if err != nil {
		t.Fatalf("生成 Access Token 失败: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), accessToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("以 Access Token 刷新应被拒绝，实际=%v", err)
	}
}

func TestAuthService_Logout_NoRedisIsNoop(t *testing.T) {
	svc, _, jwtMgr := setupTestAuthService()

	token, _ := jwtMgr.GenerateAccessToken("user-1", "member")
	claims, _ := jwtMgr.ParseToken(token)

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("Redis 不可用时 Logout 应降级为无操作: %v", err)
	}
}
