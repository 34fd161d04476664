package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/repara-cli/internal/ports"
	portmocks "github.com/bnema/repara-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionKey = "userSession"

func newTestStore(t *testing.T) (*Store, *portmocks.MockKeyValueStore, *portmocks.MockKeyValueStore) {
	t.Helper()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)
	return store, primary, fallback
}

func TestNewStoreRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockKeyValueStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockKeyValueStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, sessionKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), sessionKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, sessionKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, sessionKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), sessionKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetMissingEverywhereIsKeyNotFound(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, sessionKey).Return("", ports.ErrKeyNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, sessionKey).Return("", ports.ErrKeyNotFound).Once()

	_, err := store.Get(context.Background(), sessionKey)
	require.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, sessionKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, sessionKey).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), sessionKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreGetDoesNotFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, sessionKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), sessionKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, sessionKey, "record").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, sessionKey, "record").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), sessionKey, "record"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, sessionKey, "record").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), sessionKey, "record"))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, sessionKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, sessionKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), sessionKey))
}

func TestStoreDeleteSucceedsWhenOneBackendDoes(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, sessionKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, sessionKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), sessionKey))
}

func TestStoreDeleteFailsWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, sessionKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, sessionKey).Return(errors.New("file failed")).Once()

	err := store.Delete(context.Background(), sessionKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "fallback delete failed")
}
