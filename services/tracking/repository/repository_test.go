package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/database"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const driverID = "7b3a3f7e-1d2c-4a55-9d43-2f0c5f8e1a01"

func setupSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func setupRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &database.RedisClient{Client: client}, mr
}

func floatPtr(v float64) *float64 { return &v }

func TestProfileRepo_UpsertPosition(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	position := models.ProfilePosition{
		UserID:    driverID,
		Latitude:  -6.2,
		Longitude: 106.8,
		Heading:   floatPtr(180),
		Timestamp: ts,
	}

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO driver_profiles .* ON CONFLICT \\(user_id\\) DO UPDATE").
					WithArgs(driverID, -6.2, 106.8, 180.0, nil, ts).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO driver_profiles").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupSQLMock(t)
			tc.mockSetup(mock)

			err := NewProfileRepository(db).UpsertPosition(context.Background(), position)

			if tc.wantErr {
				assert.ErrorContains(t, err, "failed to upsert driver position")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHistoryRepo_Append(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	sample := models.LocationSample{
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Speed:     floatPtr(9.5),
		Accuracy:  floatPtr(15),
		Timestamp: ts,
	}

	t.Run("writes row and live mirror", func(t *testing.T) {
		db, mock := setupSQLMock(t)
		rc, mr := setupRedis(t)

		mock.ExpectExec("INSERT INTO driver_location_history").
			WithArgs(sqlmock.AnyArg(), driverID, sample.Latitude, sample.Longitude, nil, 9.5, 15.0, "qqguygv", ts).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewHistoryRepository(db, rc).Append(context.Background(), driverID, sample)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())

		key := "driver:location:" + driverID
		assert.Equal(t, "-6.175392", mr.HGet(key, constants.FieldLatitude))
		assert.Equal(t, "9.5", mr.HGet(key, constants.FieldSpeed))
		assert.Equal(t, strconv.FormatInt(ts.UnixMilli(), 10), mr.HGet(key, constants.FieldTimestamp))
		assert.Equal(t, constants.LiveLocationTTL, mr.TTL(key))

		pos, err := rc.GeoPos(context.Background(), constants.DriverLocationKey, driverID)
		require.NoError(t, err)
		require.NotNil(t, pos)
		assert.InDelta(t, sample.Latitude, pos.Latitude, 1e-4)
	})

	t.Run("database failure still mirrors", func(t *testing.T) {
		db, mock := setupSQLMock(t)
		rc, mr := setupRedis(t)

		mock.ExpectExec("INSERT INTO driver_location_history").WillReturnError(errors.New("disk full"))

		err := NewHistoryRepository(db, rc).Append(context.Background(), driverID, sample)
		assert.ErrorContains(t, err, "failed to insert location history")
		assert.Equal(t, "-6.175392", mr.HGet("driver:location:"+driverID, constants.FieldLatitude))
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		db, mock := setupSQLMock(t)
		rc, mr := setupRedis(t)
		mr.Close()

		mock.ExpectExec("INSERT INTO driver_location_history").WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewHistoryRepository(db, rc).Append(context.Background(), driverID, sample)
		assert.ErrorContains(t, err, "failed to store live location")
	})
}

func TestHistoryRepo_GetLive(t *testing.T) {
	db, _ := setupSQLMock(t)
	rc, mr := setupRedis(t)
	repo := NewHistoryRepository(db, rc)
	ctx := context.Background()

	got, err := repo.GetLive(ctx, driverID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mr.HSet("driver:location:"+driverID,
		constants.FieldLatitude, "-6.2",
		constants.FieldLongitude, "106.8",
		constants.FieldHeading, "45",
		constants.FieldTimestamp, strconv.FormatInt(ts.UnixMilli(), 10),
	)

	got, err = repo.GetLive(ctx, driverID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, -6.2, got.Latitude)
	assert.Equal(t, 106.8, got.Longitude)
	require.NotNil(t, got.Heading)
	assert.Equal(t, 45.0, *got.Heading)
	assert.Nil(t, got.Speed)
	assert.True(t, ts.Equal(got.Timestamp))

	mr.HSet("driver:location:"+driverID, constants.FieldLatitude, "north")
	_, err = repo.GetLive(ctx, driverID)
	assert.ErrorContains(t, err, "invalid latitude")
}

func TestHistoryRepo_GetHistory(t *testing.T) {
	from := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		db, mock := setupSQLMock(t)
		rows := sqlmock.NewRows([]string{"id", "user_id", "latitude", "longitude", "heading", "speed", "accuracy", "geohash", "recorded_at"}).
			AddRow("h-1", driverID, -6.2, 106.8, nil, 4.2, 10.0, "qqguyg0", from.Add(time.Minute)).
			AddRow("h-2", driverID, -6.21, 106.81, 90.0, nil, nil, "qqguyg1", from.Add(2*time.Minute))
		mock.ExpectQuery("SELECT (.+) FROM driver_location_history WHERE user_id").
			WithArgs(driverID, from, to, 100).
			WillReturnRows(rows)

		records, err := NewHistoryRepository(db, nil).GetHistory(context.Background(), driverID, from, to, 100)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "h-1", records[0].ID)
		assert.Nil(t, records[0].Heading)
		require.NotNil(t, records[1].Heading)
		assert.Equal(t, 90.0, *records[1].Heading)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		db, mock := setupSQLMock(t)
		mock.ExpectQuery("SELECT (.+) FROM driver_location_history").WillReturnError(errors.New("timeout"))

		_, err := NewHistoryRepository(db, nil).GetHistory(context.Background(), driverID, from, to, 100)
		assert.ErrorContains(t, err, "failed to get location history")
	})
}
