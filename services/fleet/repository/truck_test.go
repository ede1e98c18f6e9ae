package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/models"
)

func newFleetRepoFixture(t *testing.T) (*FleetRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewFleetRepository(&models.Config{}, sqlx.NewDb(db, "sqlmock")), mock
}

func TestClaimTruck_WinsWhenAvailable(t *testing.T) {
	repo, mock := newFleetRepoFixture(t)

	truckID := uuid.New()
	mock.ExpectExec("UPDATE trucks SET status").
		WithArgs(string(models.TruckStatusOnTrip), truckID, string(models.TruckStatusAvailable)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.ClaimTruck(context.Background(), truckID)

	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimTruck_LosesWhenAlreadyTaken(t *testing.T) {
	repo, mock := newFleetRepoFixture(t)

	truckID := uuid.New()
	mock.ExpectExec("UPDATE trucks SET status").
		WithArgs(string(models.TruckStatusOnTrip), truckID, string(models.TruckStatusAvailable)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimTruck(context.Background(), truckID)

	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseTruck_NoOpWhenNotOnTrip(t *testing.T) {
	repo, mock := newFleetRepoFixture(t)

	truckID := uuid.New()
	mock.ExpectExec("UPDATE trucks SET status").
		WithArgs(string(models.TruckStatusAvailable), truckID, string(models.TruckStatusOnTrip)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReleaseTruck(context.Background(), truckID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTruck_DuplicatePlate(t *testing.T) {
	repo, mock := newFleetRepoFixture(t)

	mock.ExpectExec("INSERT INTO trucks").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err := repo.CreateTruck(context.Background(), &models.Truck{
		Plate: "ab-123-cd",
		Model: "Volvo FH16",
	})

	assert.ErrorIs(t, err, errs.ErrTruckPlateExists)
}

func TestCreateTruck_UppercasesPlate(t *testing.T) {
	repo, mock := newFleetRepoFixture(t)

	mock.ExpectExec("INSERT INTO trucks").
		WillReturnResult(sqlmock.NewResult(0, 1))

	truck := &models.Truck{Plate: "ab-123-cd", Model: "Volvo FH16", Status: models.TruckStatusAvailable}
	err := repo.CreateTruck(context.Background(), truck)

	require.NoError(t, err)
	assert.Equal(t, "AB-123-CD", truck.Plate)
	assert.NotEqual(t, uuid.Nil, truck.ID)
}

func TestSetTruckMileage_UnknownTruck(t *testing.T) {
	repo, mock := newFleetRepoFixture(t)

	truckID := uuid.New()
	mock.ExpectExec("UPDATE trucks SET current_mileage").
		WithArgs(125000.0, truckID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetTruckMileage(context.Background(), truckID, 125000)

	assert.ErrorIs(t, err, errs.ErrTruckNotFound)
}
