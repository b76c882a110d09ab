package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"campus-show/biz/application/dto/campus/lms"
	"campus-show/biz/infrastructure/config"
	"campus-show/biz/infrastructure/util/log"
)

// Session 持久化到本地的上游会话，重启后用来恢复登录态
type Session struct {
	Token string    `json:"token"`
	User  *lms.User `json:"user"`
}

// SessionStore 会话的本地文件存储
// 文件内容损坏按未登录处理：清掉文件而不是报错
type SessionStore struct {
	path string
	mu   sync.Mutex
}

func NewSessionStore(config *config.Config) *SessionStore {
	return NewSessionStoreAt(config.Storage.SessionFile)
}

func NewSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load 读取本地会话，文件不存在或损坏都返回nil会话
func (s *SessionStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// 本地会话损坏，清掉后按未登录处理
		log.Error("本地会话数据损坏，已清除: %v", err)
		_ = os.Remove(s.path)
		return nil, nil
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Save 先写临时文件再改名，避免写一半留下坏文件
func (s *SessionStore) Save(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear 退出登录时删除本地会话
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
