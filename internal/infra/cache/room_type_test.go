//go:build unit

package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hotel-desk/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

var sampleTypes = []*queries.RoomTypeView{
	{Code: "D1", Description: "Doble", CostPerNight: 120, Active: true},
	{Code: "T1", Description: "Triple", CostPerNight: 150, Active: true},
}

func TestGetRoomTypes(t *testing.T) {
	encoded, err := json.Marshal(sampleTypes)
	require.NoError(t, err)

	tests := []struct {
		name      string
		reply     *redis.StringCmd
		wantOK    bool
		wantTypes []*queries.RoomTypeView
		wantErr   bool
	}{
		{name: "hit", reply: redis.NewStringResult(string(encoded), nil), wantOK: true, wantTypes: sampleTypes},
		{name: "miss", reply: redis.NewStringResult("", redis.Nil)},
		{name: "redis failure", reply: redis.NewStringResult("", assert.AnError), wantErr: true},
		{name: "corrupt payload", reply: redis.NewStringResult("{not json", nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rdb := new(MockRedisClient)
			rdb.On("Get", mock.Anything, roomTypesKey).Return(tt.reply)

			got, ok, err := NewRoomTypeCache(rdb, time.Minute).GetRoomTypes(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTypes, got)
			rdb.AssertExpectations(t)
		})
	}
}

func TestSetRoomTypes(t *testing.T) {
	rdb := new(MockRedisClient)
	rdb.On("Set", mock.Anything, roomTypesKey, mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(redis.NewStatusResult("OK", nil))

	err := NewRoomTypeCache(rdb, 5*time.Minute).SetRoomTypes(context.Background(), sampleTypes)

	assert.NoError(t, err)
	rdb.AssertExpectations(t)
}

func TestSetRoomTypes_RedisFailure(t *testing.T) {
	rdb := new(MockRedisClient)
	rdb.On("Set", mock.Anything, roomTypesKey, mock.Anything, time.Minute).
		Return(redis.NewStatusResult("", assert.AnError))

	err := NewRoomTypeCache(rdb, time.Minute).SetRoomTypes(context.Background(), sampleTypes)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestNoopRoomTypeCache(t *testing.T) {
	var c NoopRoomTypeCache

	got, ok, err := c.GetRoomTypes(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.SetRoomTypes(context.Background(), sampleTypes))
}
