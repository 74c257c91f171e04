package auth

import "time"

// State 设备授权流程的状态
type State int

const (
	StateStarting State = iota
	StateWaitingApproval
	StateAuthenticated
	StateExpired
	StateInvalidated
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateWaitingApproval:
		return "waiting_approval"
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	case StateInvalidated:
		return "invalidated"
	case StateTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Session 一次登录过程中的临时设备授权会话，仅存活于单次login调用，不落盘
type Session struct {
	UserCode        string
	DeviceCode      string
	VerificationURL string
	PollInterval    time.Duration
	ExpiresIn       time.Duration
}
