package storage

import (
	"os"
	"path/filepath"
	"testing"

	"campus-show/biz/application/dto/campus/lms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SessionStore {
	return NewSessionStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	// 文件不存在按未登录处理
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	saved := &Session{
		Token: "upstream-token",
		User:  &lms.User{Id: "u1", Name: "张三", Role: "student"},
	}
	require.NoError(t, store.Save(saved))

	sess, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "upstream-token", sess.Token)
	assert.Equal(t, "u1", sess.User.Id)

	require.NoError(t, store.Clear())
	sess, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	// 重复清除不报错
	require.NoError(t, store.Clear())
}

func TestSessionStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewSessionStoreAt(path)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	// 损坏的会话按未登录处理，不返回错误
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	// 坏文件已被清掉
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSessionStoreEmptyToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Session{Token: ""}))

	// 空token视为未登录
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}
