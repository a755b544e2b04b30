package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/multiservices/backend/internal/telemetry/metrics"
	"github.com/multiservices/backend/internal/telemetry/tracing"
	"github.com/multiservices/backend/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=services_mocks_test.go -package=services_test

type servicesRepo interface {
	Add(ctx context.Context, service *Service) (*Service, error)
	Get(ctx context.Context, serviceId int) (*Service, error)
	List(ctx context.Context) ([]Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

const (
	// public catalog listing is the hottest endpoint, cache it briefly
	listCacheKey    = "services-list"
	listCacheExpire = 60 // seconds
)

type ListResponse struct {
	Services []Service `json:"services"`
	Total    int       `json:"total"`
}

type UpdateServiceResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo    servicesRepo
	cache   *freecache.Cache
	metrics *metrics.Manager
}

func NewHandler(repo servicesRepo, metricsManager *metrics.Manager) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:    repo,
		cache:   freecache.NewCache(1 * megabyte),
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/services", handler.HandleList).Methods("GET", "OPTIONS").Name("list-services")
	router.HandleFunc("/services", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-service")
	router.HandleFunc("/services/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-service")
	router.HandleFunc("/services/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-service")
	router.HandleFunc("/services/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-service")
}

// HandleList is public, no auth middleware in front of it
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.services.list")
	defer span.End()

	if cachedList, err := handler.cache.Get([]byte(listCacheKey)); err == nil {
		log.Tracef("services list served from cache")
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cachedList)
		return
	}

	services, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list services error: %s", err)
		http.Error(w, "failed to get services", http.StatusInternalServerError)
		return
	}

	if len(services) == 0 {
		services = []Service{}
	}

	respJson, err := json.Marshal(ListResponse{
		Services: services,
		Total:    len(services),
	})
	if err != nil {
		log.Errorf("marshal services error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(listCacheKey), respJson, listCacheExpire); err != nil {
		log.Errorf("failed to set services list cache: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.services.get")
	defer span.End()

	id, err := handler.serviceIdFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	service, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		log.Errorf("get service %d: %s", id, err)
		http.Error(w, "failed to get service", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, service)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.services.new")
	defer span.End()

	var service Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		log.Tracef("new service, unmarshal json params: %s", err)
		http.Error(w, "add service failed", http.StatusBadRequest)
		return
	}

	if service.Name == "" {
		http.Error(w, "error, service name empty", http.StatusBadRequest)
		return
	}

	addedService, err := handler.repo.Add(ctx, &service)
	if err != nil {
		log.Errorf("failed to add new service [%s]: %s", service.Name, err)
		http.Error(w, "error, failed to add new service", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterServicesCreated.Inc()
	handler.invalidateListCache()

	log.Debugf("new service added: [%s]: %d", addedService.Name, addedService.Id)
	pkg.SendJsonResponse(w, http.StatusCreated, addedService)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.services.update")
	defer span.End()

	id, err := handler.serviceIdFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var service Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		log.Tracef("update service, unmarshal json params: %s", err)
		http.Error(w, "update service failed", http.StatusBadRequest)
		return
	}
	service.Id = id

	if service.Name == "" {
		http.Error(w, "error, service name empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &service); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update service %d: %s", id, err)
		http.Error(w, "error, failed to update service", http.StatusInternalServerError)
		return
	}

	handler.invalidateListCache()

	pkg.SendJsonResponse(w, http.StatusOK, UpdateServiceResponse{UpdatedID: id})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.services.delete")
	defer span.End()

	id, err := handler.serviceIdFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete service %d: %s", id, err)
		http.Error(w, "error, service not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	handler.invalidateListCache()

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) serviceIdFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("error, id NaN")
	}
	return id, nil
}

func (handler *Handler) invalidateListCache() {
	handler.cache.Del([]byte(listCacheKey))
}
