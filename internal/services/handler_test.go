package services_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/multiservices/backend/internal/services"
	"github.com/multiservices/backend/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*MockservicesRepo, *mux.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repoMock := NewMockservicesRepo(ctrl)
	handler := services.NewHandler(repoMock, metrics.NewTestManager())
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return repoMock, router
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestHandler_List(t *testing.T) {
	repoMock, router := newTestRouter(t)

	catalog := []services.Service{
		{Id: 1, Name: "TV Mounting", Description: "mount it", Price: floatPtr(50), DurationMin: intPtr(60), Active: true},
		{Id: 2, Name: "Painting", Description: "walls only", Active: false},
	}
	repoMock.EXPECT().List(gomock.Any()).Return(catalog, nil)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var listResp services.ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
	assert.Equal(t, 2, listResp.Total)
	assert.Equal(t, catalog, listResp.Services)
}

func TestHandler_List_ServedFromCache(t *testing.T) {
	repoMock, router := newTestRouter(t)

	// repo hit exactly once, second request comes from cache
	repoMock.EXPECT().List(gomock.Any()).Return([]services.Service{
		{Id: 1, Name: "TV Mounting", Active: true},
	}, nil).Times(1)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var listResp services.ListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
		assert.Equal(t, 1, listResp.Total)
	}
}

func TestHandler_List_Empty(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"services": [], "total": 0}`, rec.Body.String())
}

func TestHandler_List_RepoError(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_Get(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().
		Get(gomock.Any(), 42).
		Return(&services.Service{Id: 42, Name: "Drilling", Active: true}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var service services.Service
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&service))
	assert.Equal(t, 42, service.Id)
	assert.Equal(t, "Drilling", service.Name)
}

func TestHandler_Get_NotFound(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().
		Get(gomock.Any(), 42).
		Return(nil, services.ErrServiceNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Get_InvalidId(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/nan", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Add(t *testing.T) {
	repoMock, router := newTestRouter(t)

	newService := services.Service{Name: "Furniture Assembly", Description: "ikea and such", Price: floatPtr(35), Active: true}
	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, service *services.Service) (*services.Service, error) {
			assert.Equal(t, "Furniture Assembly", service.Name)
			service.Id = 7
			return service, nil
		})

	reqBody, err := json.Marshal(newService)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/services", bytes.NewReader(reqBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var addedService services.Service
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&addedService))
	assert.Equal(t, 7, addedService.Id)
}

func TestHandler_Add_EmptyName(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/services",
		bytes.NewReader([]byte(`{"description": "no name"}`)),
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Add_InvalidJson(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/services",
		bytes.NewReader([]byte(`{gibberish`)),
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, service *services.Service) error {
			assert.Equal(t, 3, service.Id)
			assert.Equal(t, "Painting", service.Name)
			assert.False(t, service.Active)
			return nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPut, "/services/3",
		bytes.NewReader([]byte(`{"name": "Painting", "active": false}`)),
	))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updatedId": 3}`, rec.Body.String())
}

func TestHandler_Update_NotFound(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(services.ErrServiceNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPut, "/services/3",
		bytes.NewReader([]byte(`{"name": "Painting"}`)),
	))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().Delete(gomock.Any(), 5).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/services/5", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_Delete_NotFound(t *testing.T) {
	repoMock, router := newTestRouter(t)
	repoMock.EXPECT().Delete(gomock.Any(), 5).Return(services.ErrServiceNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/services/5", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_MutationsInvalidateListCache(t *testing.T) {
	repoMock, router := newTestRouter(t)

	// list twice around a create: cache dropped in between, repo hit twice
	firstList := repoMock.EXPECT().List(gomock.Any()).Return([]services.Service{}, nil)
	addCall := repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, service *services.Service) (*services.Service, error) {
			service.Id = 1
			return service, nil
		}).
		After(firstList)
	repoMock.EXPECT().
		List(gomock.Any()).
		Return([]services.Service{{Id: 1, Name: "Drilling", Active: true}}, nil).
		After(addCall)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/services",
		bytes.NewReader([]byte(`{"name": "Drilling", "active": true}`)),
	))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp services.ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, "Drilling", listResp.Services[0].Name)
}

func TestHandler_Routes(t *testing.T) {
	_, router := newTestRouter(t)

	for _, routeName := range []string{
		"list-services", "new-service", "get-service", "update-service", "delete-service",
	} {
		assert.NotNil(t, router.GetRoute(routeName), fmt.Sprintf("route %s not registered", routeName))
	}
}
