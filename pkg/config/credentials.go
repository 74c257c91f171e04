package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Credential 跨进程持久化的唯一状态：服务端颁发的访问令牌
type Credential struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"` // ISO-8601
}

// Expired 判断令牌是否已过期。expiresAt无法解析时按未过期处理，
// 交由服务端401响应兜底。
func (c *Credential) Expired(now time.Time) bool {
	if c.ExpiresAt == "" {
		return false
	}
	t, err := time.Parse(time.RFC3339, c.ExpiresAt)
	if err != nil {
		return false
	}
	return now.After(t)
}

// CredentialStore 读写本地凭证文件。文件整体覆盖写入，不做字段级合并。
// 不加文件锁，并发调用时后写者胜出。
type CredentialStore struct {
	path string
}

// NewCredentialStore 创建凭证存储。path为空时使用默认路径。
func NewCredentialStore(path string) *CredentialStore {
	if path == "" {
		path = DefaultCredentialPath()
	}
	return &CredentialStore{path: path}
}

// DefaultCredentialPath 返回默认凭证文件路径 ~/.asoctl/credentials.json
func DefaultCredentialPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./credentials.json"
	}
	return filepath.Join(homeDir, ".asoctl", "credentials.json")
}

// Path 返回凭证文件路径
func (s *CredentialStore) Path() string {
	return s.path
}

// Load 读取凭证。文件不存在时返回空凭证而不报错。
func (s *CredentialStore) Load() (*Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credential{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCredentialRead, err)
	}

	cred := &Credential{}
	if err := json.Unmarshal(data, cred); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialRead, err)
	}
	return cred, nil
}

// Save 整体覆盖写入凭证文件。目录0700、文件0600，仅属主可读写。
func (s *CredentialStore) Save(cred *Credential) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialWrite, err)
	}

	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialWrite, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialWrite, err)
	}
	return nil
}

// Clear 登出时将凭证文件覆盖为空对象，而不是删除文件
func (s *CredentialStore) Clear() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialWrite, err)
	}
	if err := os.WriteFile(s.path, []byte("{}\n"), 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialWrite, err)
	}
	return nil
}
