package database

import (
	"context"
	"errors"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/domain"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/repositories/persistence"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNoSuchDataset = errors.New("no such dataset")
var ErrNotAuthorized = errors.New("not authorized")

// Datastore is the dataset collaborator the publishing workflow depends
// on. GetDataset doubles as the access check: it fails with
// ErrNotAuthorized when the given user lacks update rights.
//
//go:generate moq -rm -out database_mock.go . Datastore
type Datastore interface {
	CreateDataset(ctx context.Context, dataset domain.Dataset) (*domain.Dataset, error)
	GetDataset(ctx context.Context, datasetID, user string) (*domain.Dataset, error)
	UpdateDataset(ctx context.Context, dataset domain.Dataset) error
}

type myDB struct {
	impl *gorm.DB
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func() (*gorm.DB, error)

//NewSQLiteConnector opens a connection to a local sqlite database
func NewSQLiteConnector(filePath string) ConnectorFunc {
	return func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(filePath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
		}

		return db, err
	}
}

//NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(connect ConnectorFunc, ctx context.Context) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&persistence.Dataset{})
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Msg("connected to dataset database")

	return &myDB{impl: impl}, nil
}

func (db *myDB) CreateDataset(ctx context.Context, dataset domain.Dataset) (*domain.Dataset, error) {
	if dataset.ID == "" {
		dataset.ID = uuid.NewString()
	}

	record := persistence.Dataset{
		DatasetID:  dataset.ID,
		Title:      dataset.Title,
		Notes:      dataset.Notes,
		Type:       dataset.Type,
		Version:    dataset.Version,
		Owner:      dataset.Owner,
		Private:    dataset.Private,
		AcquireURL: dataset.AcquireURL,
	}

	result := db.impl.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomain(&record), nil
}

func (db *myDB) GetDataset(ctx context.Context, datasetID, user string) (*domain.Dataset, error) {
	record := persistence.Dataset{}

	result := db.impl.WithContext(ctx).Where("dataset_id = ?", datasetID).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNoSuchDataset
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if record.Owner != user {
		return nil, ErrNotAuthorized
	}

	return toDomain(&record), nil
}

func (db *myDB) UpdateDataset(ctx context.Context, dataset domain.Dataset) error {
	record := persistence.Dataset{}

	result := db.impl.WithContext(ctx).Where("dataset_id = ?", dataset.ID).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return ErrNoSuchDataset
	}
	if result.Error != nil {
		return result.Error
	}

	record.Title = dataset.Title
	record.Notes = dataset.Notes
	record.Type = dataset.Type
	record.Version = dataset.Version
	record.Private = dataset.Private
	record.AcquireURL = dataset.AcquireURL

	return db.impl.WithContext(ctx).Save(&record).Error
}

func toDomain(record *persistence.Dataset) *domain.Dataset {
	return &domain.Dataset{
		ID:         record.DatasetID,
		Title:      record.Title,
		Notes:      record.Notes,
		Type:       record.Type,
		Version:    record.Version,
		Owner:      record.Owner,
		Private:    record.Private,
		AcquireURL: record.AcquireURL,
	}
}
