package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/domain"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestCreatedDatasetsCanBeFetchedBack(t *testing.T) {
	is, ctx, db := testDatabase(t)

	created, err := db.CreateDataset(ctx, testDataset())
	is.NoErr(err)
	is.Equal(created.ID, "abc123")

	fetched, err := db.GetDataset(ctx, "abc123", "someuser")
	is.NoErr(err)
	is.Equal(fetched.Title, "Test Dataset")
	is.Equal(fetched.Type, "text/csv")
	is.True(fetched.Private)
}

func TestDatasetsGetAnIdIfNoneIsProvided(t *testing.T) {
	is, ctx, db := testDatabase(t)

	dataset := testDataset()
	dataset.ID = ""

	created, err := db.CreateDataset(ctx, dataset)
	is.NoErr(err)
	is.True(created.ID != "")
}

func TestGetFailsForUnknownDatasets(t *testing.T) {
	is, ctx, db := testDatabase(t)

	_, err := db.GetDataset(ctx, "nosuchthing", "someuser")
	is.True(errors.Is(err, ErrNoSuchDataset))
}

func TestGetFailsForOtherUsersDatasets(t *testing.T) {
	is, ctx, db := testDatabase(t)

	_, err := db.CreateDataset(ctx, testDataset())
	is.NoErr(err)

	_, err = db.GetDataset(ctx, "abc123", "eve")
	is.True(errors.Is(err, ErrNotAuthorized))
}

func TestAcquireUrlUpdatesArePersisted(t *testing.T) {
	is, ctx, db := testDatabase(t)

	created, err := db.CreateDataset(ctx, testDataset())
	is.NoErr(err)

	created.AcquireURL = "http://store/search/resource/someuser/Test%20Dataset/1.0"
	err = db.UpdateDataset(ctx, *created)
	is.NoErr(err)

	fetched, err := db.GetDataset(ctx, "abc123", "someuser")
	is.NoErr(err)
	is.Equal(fetched.AcquireURL, "http://store/search/resource/someuser/Test%20Dataset/1.0")
}

func TestUpdateFailsForUnknownDatasets(t *testing.T) {
	is, ctx, db := testDatabase(t)

	err := db.UpdateDataset(ctx, testDataset())
	is.True(errors.Is(err, ErrNoSuchDataset))
}

func testDatabase(t *testing.T) (*is.I, context.Context, Datastore) {
	is := is.New(t)
	ctx := logging.NewContextWithLogger(context.Background(), zerolog.Logger{})

	db, err := NewDatabaseConnection(NewSQLiteConnector("file::memory:"), ctx)
	is.NoErr(err)

	return is, ctx, db
}

func testDataset() domain.Dataset {
	return domain.Dataset{
		ID:      "abc123",
		Title:   "Test Dataset",
		Notes:   "notes about the dataset",
		Type:    "text/csv",
		Version: "1.0",
		Owner:   "someuser",
		Private: true,
	}
}
