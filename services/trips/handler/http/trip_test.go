package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/middleware"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/trips/mocks"
)

func newTripHandlerFixture(t *testing.T) (*gomock.Controller, *mocks.MockTripUC, *TripHandler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTripUC(ctrl)
	return ctrl, uc, NewTripHandler(uc)
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestCreateTripHandler_Created(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	body := `{"driverId":"` + driverID.String() + `","truckId":"` + truckID.String() + `","cargoWeight":1200}`

	uc.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		Return(&models.Trip{ID: uuid.New(), DriverID: driverID, TruckID: truckID, Status: models.TripStatusToDo}, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/v1/trips", body)
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateTrip(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var trip models.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.Equal(t, models.TripStatusToDo, trip.Status)
}

func TestCreateTripHandler_BusinessRuleIs400(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	uc.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		Return(nil, &errs.OverloadError{Resource: "Truck", LimitKg: 40000})

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/v1/trips",
		`{"driverId":"`+uuid.NewString()+`","truckId":"`+uuid.NewString()+`","cargoWeight":99999}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "OVERLOAD: Truck limit is 40000kg")
}

func TestGetTripHandler_NotFoundIs404(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	requesterID := uuid.New()

	uc.EXPECT().GetTrip(gomock.Any(), tripID, requesterID, models.RoleDriver).
		Return(nil, errs.ErrTripNotFound)

	e := echo.New()
	req, rec := jsonRequest(http.MethodGet, "/api/v1/trips/"+tripID.String(), "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())
	c.Set(middleware.ContextUserID, requesterID)
	c.Set(middleware.ContextUserRole, models.RoleDriver)

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trip not found")
}

func TestGetTripHandler_InvalidIDIs400(t *testing.T) {
	ctrl, _, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	e := echo.New()
	req, rec := jsonRequest(http.MethodGet, "/api/v1/trips/not-a-uuid", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTripsHandler_ParsesQuery(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	requesterID := uuid.New()

	uc.EXPECT().ListTrips(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.TripListParams) (*models.TripPage, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 5, params.Limit)
			assert.Equal(t, "cargoWeight", params.SortBy)
			assert.Equal(t, "asc", params.Order)
			assert.Equal(t, "hamburg", params.Search)
			assert.Equal(t, requesterID, params.RequesterID)
			return &models.TripPage{Data: []models.TripDetail{}, Meta: models.PageMeta{Page: 2, Limit: 5}}, nil
		})

	e := echo.New()
	req, rec := jsonRequest(http.MethodGet,
		"/api/v1/trips?page=2&limit=5&sortBy=cargoWeight&order=asc&search=hamburg", "")
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, requesterID)
	c.Set(middleware.ContextUserRole, models.RoleAdmin)

	require.NoError(t, h.ListTrips(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTripsHandler_DefaultsAbsentPaging(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	uc.EXPECT().ListTrips(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.TripListParams) (*models.TripPage, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 10, params.Limit)
			return &models.TripPage{Data: []models.TripDetail{}, Meta: models.PageMeta{Page: 1, Limit: 10}}, nil
		})

	e := echo.New()
	req, rec := jsonRequest(http.MethodGet, "/api/v1/trips", "")
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, uuid.New())
	c.Set(middleware.ContextUserRole, models.RoleAdmin)

	require.NoError(t, h.ListTrips(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateTripHandler_InvalidMileageIs400(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	uc.EXPECT().UpdateTrip(gomock.Any(), tripID, gomock.Any()).
		Return(nil, errs.ErrInvalidMileage)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPatch, "/api/v1/trips/"+tripID.String(),
		`{"status":"finished","endMileage":10}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.UpdateTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "End mileage cannot be less than start mileage")
}

func TestDeleteTripHandler_OK(t *testing.T) {
	ctrl, uc, h := newTripHandlerFixture(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	uc.EXPECT().DeleteTrip(gomock.Any(), tripID).Return(nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodDelete, "/api/v1/trips/"+tripID.String(), "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.DeleteTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trip deleted successfully")
}
