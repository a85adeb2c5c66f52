package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sstent/sportlog-go/internal/activity"
	"github.com/sstent/sportlog-go/internal/database"
	"github.com/sstent/sportlog-go/internal/export"
	"github.com/sstent/sportlog-go/internal/importer"
	"github.com/sstent/sportlog-go/internal/units"
)

type Handler struct {
	store database.Store
	log   zerolog.Logger
}

func NewHandler(store database.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		store: store,
		log:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/activities", h.List)
	router.POST("/activities", h.Create)
	router.DELETE("/activities/:id", h.Delete)
	router.GET("/activities/export", h.ExportCSV)
	router.POST("/activities/import", h.Import)
	router.GET("/stats", h.Stats)
}

// recordView decorates a record with its display fields: the derived metric
// unit and the HH:MM rendering of the total time.
type recordView struct {
	activity.Record
	AvgMetricUnit string `json:"avg_metric_unit"`
	Duration      string `json:"duration_hhmm"`
}

func viewOf(r activity.Record) recordView {
	return recordView{
		Record:        r,
		AvgMetricUnit: r.AvgMetricUnit(),
		Duration:      units.FormatHHMM(r.TotalMinutes),
	}
}

func filtersFromQuery(c *gin.Context) database.Filters {
	return database.Filters{
		Type:        c.Query("activity"),
		FromDate:    c.Query("from"),
		ToDate:      c.Query("to"),
		MinDistance: c.Query("min_distance"),
		MaxDistance: c.Query("max_distance"),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.store.FetchRecords(filtersFromQuery(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	views := make([]recordView, 0, len(records))
	for _, r := range records {
		views = append(views, viewOf(r))
	}

	c.JSON(http.StatusOK, views)
}

type createRequest struct {
	Date      string `json:"activity_date" form:"activity_date"`
	Type      string `json:"activity_type" form:"activity_type"`
	Distance  string `json:"distance_km" form:"distance_km"`
	AvgMetric string `json:"avg_metric" form:"avg_metric"`
	Duration  string `json:"duration" form:"duration"`
	Calories  string `json:"calories" form:"calories"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := activity.NewRecord(activity.Input{
		Date:      req.Date,
		Type:      req.Type,
		Distance:  req.Distance,
		AvgMetric: req.AvgMetric,
		Duration:  req.Duration,
		Calories:  req.Calories,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.store.InsertRecord(rec)
	if err != nil {
		h.fail(c, err)
		return
	}
	rec.ID = id

	c.JSON(http.StatusCreated, viewOf(*rec))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.DeleteRecord(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	records, err := h.store.FetchRecords(filtersFromQuery(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="activities_export.csv"`)

	if err := export.Write(c.Writer, records); err != nil {
		h.log.Error().Err(err).Msg("csv export failed")
	}
}

func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing activity file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.fail(c, err)
		return
	}

	rec, err := importer.Import(data, c.PostForm("activity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.store.InsertRecord(rec)
	if err != nil {
		h.fail(c, err)
		return
	}
	rec.ID = id

	c.JSON(http.StatusCreated, viewOf(*rec))
}

func (h *Handler) Stats(c *gin.Context) {
	records, err := h.store.FetchRecords(filtersFromQuery(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	total, err := h.store.CountRecords()
	if err != nil {
		h.fail(c, err)
		return
	}

	summary := activity.Aggregate(records)
	c.JSON(http.StatusOK, gin.H{
		"total_records":     total,
		"filtered_records":  len(records),
		"distance_by_type":  summary.DistanceByType,
		"calories_by_type":  summary.CaloriesByType,
		"distance_by_month": summary.DistanceByMonth,
		"months":            summary.Months(),
	})
}

// fail maps an error to a response: validation failures from the core become
// 400 with the message, everything else is a 500.
func (h *Handler) fail(c *gin.Context, err error) {
	if isValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func isValidationError(err error) bool {
	return errors.Is(err, activity.ErrDateFormat) ||
		errors.Is(err, activity.ErrInvalidActivity) ||
		errors.Is(err, activity.ErrInvalidDistance) ||
		errors.Is(err, activity.ErrInvalidDuration) ||
		errors.Is(err, activity.ErrInvalidCalories) ||
		errors.Is(err, activity.ErrInvalidMetric) ||
		errors.Is(err, units.ErrDurationFormat) ||
		errors.Is(err, units.ErrPaceFormat) ||
		errors.Is(err, units.ErrNumber)
}
