package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
	"github.com/mamadbah2/poultryfarm/internal/service/records"
)

// RecordsHandler serves list and create endpoints for every farm record type.
type RecordsHandler struct {
	svc    *records.Services
	logger *zap.Logger
}

// NewRecordsHandler constructs the HTTP handler adapter.
func NewRecordsHandler(svc *records.Services, logger *zap.Logger) *RecordsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordsHandler{svc: svc, logger: logger}
}

func (h *RecordsHandler) ListFlocks(c *gin.Context) { list(c, h.logger, h.svc.Flocks.List) }
func (h *RecordsHandler) CreateFlock(c *gin.Context) {
	create(c, h.logger, "Flock added successfully", h.svc.Flocks.Create)
}

// GetFlock returns a single flock, e.g. to refresh its live count after mortality.
func (h *RecordsHandler) GetFlock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, h.logger, models.Validationf("flock id must be a positive integer"))
		return
	}
	flock, err := h.svc.Flocks.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, flock)
}

func (h *RecordsHandler) ListFeed(c *gin.Context) { list(c, h.logger, h.svc.Feed.List) }
func (h *RecordsHandler) CreateFeed(c *gin.Context) {
	create(c, h.logger, "Feed log added successfully", h.svc.Feed.Create)
}

func (h *RecordsHandler) ListEggs(c *gin.Context) { list(c, h.logger, h.svc.Eggs.List) }
func (h *RecordsHandler) CreateEggs(c *gin.Context) {
	create(c, h.logger, "Egg log added successfully", h.svc.Eggs.Create)
}

func (h *RecordsHandler) ListMortality(c *gin.Context) { list(c, h.logger, h.svc.Mortality.List) }
func (h *RecordsHandler) CreateMortality(c *gin.Context) {
	create(c, h.logger, "Mortality log added successfully", h.svc.Mortality.Create)
}

func (h *RecordsHandler) ListSales(c *gin.Context) { list(c, h.logger, h.svc.Sales.List) }
func (h *RecordsHandler) CreateSale(c *gin.Context) {
	create(c, h.logger, "Sale recorded successfully", h.svc.Sales.Create)
}

func (h *RecordsHandler) ListVaccinations(c *gin.Context) { list(c, h.logger, h.svc.Vaccinations.List) }
func (h *RecordsHandler) CreateVaccination(c *gin.Context) {
	create(c, h.logger, "Vaccination record added successfully", h.svc.Vaccinations.Create)
}

func list[T any](c *gin.Context, logger *zap.Logger, fn func(context.Context) ([]T, error)) {
	items, err := fn(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func create[Req any, Out any](c *gin.Context, logger *zap.Logger, message string, fn func(context.Context, Req) (Out, error)) {
	var req Req
	if err := bindJSON(c, &req); err != nil {
		respondError(c, logger, err)
		return
	}

	out, err := fn(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	respondCreated(c, message, out)
}
