package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisClient{Client: client}, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1, PoolSize: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr), PoolSize: 2})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestRedisClient_ReplaceHashWithTTL(t *testing.T) {
	client, mr := setupMiniredis(t)
	ctx := context.Background()

	mr.HSet("driver:location:d-1", "heading", "90")
	err := client.ReplaceHashWithTTL(ctx, "driver:location:d-1", time.Minute, map[string]interface{}{
		"lat": "-6.2",
		"lng": "106.8",
	})
	require.NoError(t, err)

	assert.Equal(t, "-6.2", mr.HGet("driver:location:d-1", "lat"))
	assert.Empty(t, mr.HGet("driver:location:d-1", "heading"))
	assert.Equal(t, time.Minute, mr.TTL("driver:location:d-1"))

	fields, err := client.HGetAll(ctx, "driver:location:d-1")
	require.NoError(t, err)
	assert.Equal(t, "106.8", fields["lng"])
}

func TestRedisClient_HGetAll_Missing(t *testing.T) {
	client, _ := setupMiniredis(t)

	fields, err := client.HGetAll(context.Background(), "driver:location:none")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestRedisClient_GeoAddAndPos(t *testing.T) {
	client, _ := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.GeoAdd(ctx, "drivers:locations", 106.827153, -6.175392, "d-1"))

	pos, err := client.GeoPos(ctx, "drivers:locations", "d-1")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.InDelta(t, 106.827153, pos.Longitude, 0.0001)
	assert.InDelta(t, -6.175392, pos.Latitude, 0.0001)

	missing, err := client.GeoPos(ctx, "drivers:locations", "d-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRedisClient_GeoAdd_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("drivers:locations", &redis.GeoLocation{
		Longitude: 106.8,
		Latitude:  -6.2,
		Name:      "d-1",
	}).SetErr(errors.New("redis down"))

	err := client.GeoAdd(context.Background(), "drivers:locations", 106.8, -6.2, "d-1")
	assert.EqualError(t, err, "redis down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
