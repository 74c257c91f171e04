package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"asoctl/pkg/api"
	"asoctl/pkg/config"
	"asoctl/pkg/logger"

	"go.uber.org/zap"
)

// 设备授权接口路径
const (
	startPath = "/api/cli/auth/device/start"
	tokenPath = "/api/cli/auth/device/token"
)

// 服务端未给出时使用的默认值
const (
	defaultPollInterval = 3 * time.Second
	defaultExpiresIn    = 600 * time.Second
)

// 终态错误定义
var (
	ErrExpired     = errors.New("device code expired, run login again")
	ErrInvalidated = errors.New("device code invalidated, run login again")
	ErrTimedOut    = errors.New("login timed out waiting for approval, run login again")
)

// Flow 编排设备授权握手: start → poll → {authenticated, expired, invalidated, timed out}。
// 这是整个客户端唯一带重试的环节。Now和Sleep可注入，测试时无需真实等待。
type Flow struct {
	Client *api.Client
	Store  *config.CredentialStore

	// OnSession 在start成功后回调，调用方据此展示用户码并打开浏览器
	OnSession func(*Session)

	Now   func() time.Time
	Sleep func(context.Context, time.Duration) error
}

// NewFlow 创建使用真实时钟的登录流程
func NewFlow(client *api.Client, store *config.CredentialStore) *Flow {
	return &Flow{
		Client: client,
		Store:  store,
		Now:    time.Now,
		Sleep:  sleepContext,
	}
}

type startResponse struct {
	UserCode            string  `json:"userCode"`
	DeviceCode          string  `json:"deviceCode"`
	VerificationURL     string  `json:"verificationUrl"`
	PollIntervalSeconds float64 `json:"pollIntervalSeconds"`
	ExpiresInSeconds    float64 `json:"expiresInSeconds"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// Run 执行完整的设备授权流程。成功时持久化凭证并返回StateAuthenticated；
// 失败时返回对应终态和错误。
func (f *Flow) Run(ctx context.Context) (State, error) {
	session, err := f.start(ctx)
	if err != nil {
		return StateStarting, err
	}

	if f.OnSession != nil {
		f.OnSession(session)
	}

	deadline := f.Now().Add(session.ExpiresIn)
	logger.Debug("entering approval wait loop",
		zap.Duration("poll_interval", session.PollInterval),
		zap.Time("deadline", deadline))

	for f.Now().Before(deadline) {
		state, err := f.poll(ctx, session)
		if err != nil {
			return state, err
		}
		if state == StateAuthenticated {
			return StateAuthenticated, nil
		}
		// 未批准，等一个轮询周期后重试
		if err := f.Sleep(ctx, session.PollInterval); err != nil {
			return StateWaitingApproval, err
		}
	}

	return StateTimedOut, ErrTimedOut
}

// start 发起授权并解析会话参数
func (f *Flow) start(ctx context.Context) (*Session, error) {
	resp, err := f.Client.Post(ctx, startPath, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}

	var sr startResponse
	if err := resp.Decode(&sr); err != nil {
		return nil, fmt.Errorf("malformed device authorization response: %w", err)
	}

	session := &Session{
		UserCode:        strings.TrimSpace(sr.UserCode),
		DeviceCode:      strings.TrimSpace(sr.DeviceCode),
		VerificationURL: strings.TrimSpace(sr.VerificationURL),
		PollInterval:    defaultPollInterval,
		ExpiresIn:       defaultExpiresIn,
	}
	if sr.PollIntervalSeconds > 0 {
		session.PollInterval = time.Duration(sr.PollIntervalSeconds * float64(time.Second))
	}
	if sr.ExpiresInSeconds > 0 {
		session.ExpiresIn = time.Duration(sr.ExpiresInSeconds * float64(time.Second))
	}

	if session.UserCode == "" || session.DeviceCode == "" {
		return nil, errors.New("malformed device authorization response: missing user code or device code")
	}

	return session, nil
}

// poll 轮询一次token接口。返回StateWaitingApproval表示尚未批准，应继续等待。
func (f *Flow) poll(ctx context.Context, session *Session) (State, error) {
	resp, err := f.Client.Post(ctx, tokenPath, map[string]string{
		"deviceCode": session.DeviceCode,
	}, "")

	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusPreconditionRequired: // 428: 尚未批准
				return StateWaitingApproval, nil
			case http.StatusGone: // 410: 设备码过期
				return StateExpired, ErrExpired
			case http.StatusConflict, http.StatusBadRequest: // 409/400: 设备码失效
				return StateInvalidated, ErrInvalidated
			}
		}
		// 其他失败立即上抛，不重试
		return StateWaitingApproval, err
	}

	var tr tokenResponse
	if err := resp.Decode(&tr); err != nil {
		return StateWaitingApproval, fmt.Errorf("malformed token response: %w", err)
	}

	accessToken := strings.TrimSpace(tr.AccessToken)
	expiresAt := strings.TrimSpace(tr.ExpiresAt)
	if accessToken == "" || expiresAt == "" {
		return StateWaitingApproval, errors.New("malformed token response: missing accessToken or expiresAt")
	}

	cred := &config.Credential{AccessToken: accessToken, ExpiresAt: expiresAt}
	if err := f.Store.Save(cred); err != nil {
		return StateWaitingApproval, fmt.Errorf("failed to persist credential: %w", err)
	}

	logger.Debug("device authorization completed", zap.String("expires_at", expiresAt))
	return StateAuthenticated, nil
}

// sleepContext 可被context取消的延时
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
