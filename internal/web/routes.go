package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yizi-Yeh/runschedule-manager/internal/models"
	"github.com/Yizi-Yeh/runschedule-manager/internal/parser"
	"github.com/Yizi-Yeh/runschedule-manager/internal/store"
	syncservice "github.com/Yizi-Yeh/runschedule-manager/internal/sync"
)

type WebHandler struct {
	store  *store.Store
	syncer *syncservice.SyncService
}

func NewWebHandler(st *store.Store, syncer *syncservice.SyncService) *WebHandler {
	return &WebHandler{
		store:  st,
		syncer: syncer,
	}
}

func (h *WebHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := router.Group("/api")

	api.GET("/seasons", h.ListSeasons)
	api.POST("/seasons", h.CreateSeason)
	api.GET("/seasons/:id", h.GetSeason)
	api.PUT("/seasons/:id", h.UpdateSeason)
	api.DELETE("/seasons/:id", h.DeleteSeason)
	api.POST("/seasons/:id/duplicate", h.DuplicateSeason)
	api.GET("/seasons/:id/export", h.ExportSeason)
	api.POST("/seasons/:id/weeks/:weekNumber/duplicate", h.DuplicateWeek)
	api.POST("/seasons/:id/connect", h.ConnectCalendar)
	api.POST("/seasons/:id/disconnect", h.DisconnectCalendar)
	api.POST("/seasons/:id/sync", h.SyncSeason)

	api.PUT("/weeks/:weekId", h.UpdateWeek)
	api.PUT("/weeks/:weekId/days/:dayId", h.UpdateDay)
	api.POST("/weeks/:weekId/days/:dayId/items", h.AddTrainingItem)
	api.PUT("/weeks/:weekId/days/:dayId/items/:itemId", h.UpdateTrainingItem)
	api.DELETE("/weeks/:weekId/days/:dayId/items/:itemId", h.DeleteTrainingItem)
	api.PUT("/weeks/:weekId/days/:dayId/reorder", h.ReorderTrainingItems)

	api.GET("/current-season", h.GetCurrentSeason)
	api.PUT("/current-season", h.SetCurrentSeason)
	api.PUT("/current-week", h.SetCurrentWeek)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)

	api.GET("/templates", h.GetTemplates)

	api.GET("/export", h.ExportData)
	api.POST("/import", h.ImportData)
	api.POST("/import/text", h.ImportText)
	api.POST("/parse", h.ParsePreview)
	api.POST("/validate-season", h.ValidateSeason)
}

type createSeasonRequest struct {
	Name       string    `json:"name" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	TotalWeeks int       `json:"totalWeeks"`
}

func (h *WebHandler) CreateSeason(c *gin.Context) {
	var req createSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	season := h.store.CreateSeason(req.Name, req.StartDate, req.TotalWeeks)
	c.JSON(http.StatusCreated, season)
}

func (h *WebHandler) ListSeasons(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Seasons())
}

func (h *WebHandler) GetSeason(c *gin.Context) {
	season := h.store.GetSeason(c.Param("id"))
	if season == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "season not found"})
		return
	}
	c.JSON(http.StatusOK, season)
}

type updateSeasonRequest struct {
	Name             *string                 `json:"name"`
	StartDate        *time.Time              `json:"startDate"`
	TotalWeeks       *int                    `json:"totalWeeks"`
	GoogleCalendarID *string                 `json:"googleCalendarId"`
	TimePreferences  *models.TimePreferences `json:"timePreferences"`
}

func (h *WebHandler) UpdateSeason(c *gin.Context) {
	var req updateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateSeason(c.Param("id"), store.SeasonUpdate{
		Name:             req.Name,
		StartDate:        req.StartDate,
		TotalWeeks:       req.TotalWeeks,
		GoogleCalendarID: req.GoogleCalendarID,
		TimePreferences:  req.TimePreferences,
	})
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) DeleteSeason(c *gin.Context) {
	h.store.DeleteSeason(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type duplicateSeasonRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *WebHandler) DuplicateSeason(c *gin.Context) {
	var req duplicateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	season, err := h.store.DuplicateSeason(c.Param("id"), req.Name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, season)
}

func (h *WebHandler) ExportSeason(c *gin.Context) {
	data, err := h.store.ExportSeason(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(data))
}

type duplicateWeekRequest struct {
	TargetWeek int `json:"targetWeek" binding:"required"`
}

func (h *WebHandler) DuplicateWeek(c *gin.Context) {
	var req duplicateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sourceWeek, ok := intParam(c, "weekNumber")
	if !ok {
		return
	}
	h.store.DuplicateWeek(c.Param("id"), sourceWeek, req.TargetWeek)
	c.Status(http.StatusNoContent)
}

type updateWeekRequest struct {
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

func (h *WebHandler) UpdateWeek(c *gin.Context) {
	var req updateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateWeek(c.Param("weekId"), store.WeekUpdate{
		Title: req.Title,
		Notes: req.Notes,
	})
	c.Status(http.StatusNoContent)
}

type updateDayRequest struct {
	Date       *time.Time       `json:"date"`
	ClearDate  bool             `json:"clearDate"`
	IsFlexible *bool            `json:"isFlexible"`
	TimeSlot   *models.TimeSlot `json:"timeSlot"`
	CustomTime *string          `json:"customTime"`
	Notes      *string          `json:"notes"`
}

func (h *WebHandler) UpdateDay(c *gin.Context) {
	var req updateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateDay(c.Param("weekId"), c.Param("dayId"), store.DayUpdate{
		Date:       req.Date,
		ClearDate:  req.ClearDate,
		IsFlexible: req.IsFlexible,
		TimeSlot:   req.TimeSlot,
		CustomTime: req.CustomTime,
		Notes:      req.Notes,
	})
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) AddTrainingItem(c *gin.Context) {
	var item models.TrainingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.AddTrainingItem(c.Param("weekId"), c.Param("dayId"), item)
	c.Status(http.StatusNoContent)
}

type updateItemRequest struct {
	Type        *models.TrainingType `json:"type"`
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Distance    *float64             `json:"distance"`
	Duration    *int                 `json:"duration"`
	Pace        *string              `json:"pace"`
	Sets        *int                 `json:"sets"`
	Rest        *int                 `json:"rest"`
	Notes       *string              `json:"notes"`
}

func (h *WebHandler) UpdateTrainingItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateTrainingItem(c.Param("weekId"), c.Param("dayId"), c.Param("itemId"), store.ItemUpdate{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Distance:    req.Distance,
		Duration:    req.Duration,
		Pace:        req.Pace,
		Sets:        req.Sets,
		Rest:        req.Rest,
		Notes:       req.Notes,
	})
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) DeleteTrainingItem(c *gin.Context) {
	h.store.DeleteTrainingItem(c.Param("weekId"), c.Param("dayId"), c.Param("itemId"))
	c.Status(http.StatusNoContent)
}

type reorderRequest struct {
	ItemIDs []string `json:"itemIds" binding:"required"`
}

func (h *WebHandler) ReorderTrainingItems(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.ReorderTrainingItems(c.Param("weekId"), c.Param("dayId"), req.ItemIDs)
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) GetCurrentSeason(c *gin.Context) {
	season := h.store.CurrentSeason()
	c.JSON(http.StatusOK, gin.H{
		"season":      season,
		"currentWeek": h.store.CurrentWeek(),
	})
}

type setCurrentSeasonRequest struct {
	SeasonID string `json:"seasonId"`
}

func (h *WebHandler) SetCurrentSeason(c *gin.Context) {
	var req setCurrentSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.SetCurrentSeason(req.SeasonID)
	c.Status(http.StatusNoContent)
}

type setCurrentWeekRequest struct {
	WeekNumber int `json:"weekNumber" binding:"required"`
}

func (h *WebHandler) SetCurrentWeek(c *gin.Context) {
	var req setCurrentWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.SetCurrentWeek(req.WeekNumber)
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Settings())
}

type updateSettingsRequest struct {
	Theme            *models.Theme `json:"theme"`
	DefaultSeason    *string       `json:"defaultSeason"`
	AutoSave         *bool         `json:"autoSave"`
	SyncConfirmation *bool         `json:"syncConfirmation"`
}

func (h *WebHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.UpdateSettings(store.SettingsUpdate{
		Theme:            req.Theme,
		DefaultSeason:    req.DefaultSeason,
		AutoSave:         req.AutoSave,
		SyncConfirmation: req.SyncConfirmation,
	})
	c.JSON(http.StatusOK, h.store.Settings())
}

// GetTemplates exposes the static pick lists the forms are built from.
func (h *WebHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"trainingTemplates": models.CommonTrainingTemplates,
		"paceZones":         models.PaceZones,
		"trainingTypes":     models.TrainingTypes,
		"timeSlots":         models.TimeSlots,
		"daysOfWeek":        models.DaysOfWeek,
	})
}

func (h *WebHandler) ExportData(c *gin.Context) {
	data, err := h.store.ExportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(data))
}

func (h *WebHandler) ImportData(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.store.ImportData(string(body)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid backup document"})
		return
	}
	c.Status(http.StatusNoContent)
}

type textRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParsePreview runs the text parser without committing anything, so the
// caller can show the user what was recognized.
func (h *WebHandler) ParsePreview(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	weeks := parser.ToWeekData(parser.ParseTrainingText(req.Text))
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

func (h *WebHandler) ImportText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	count, ok := h.store.ImportTrainingText(req.Text)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "no current season selected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeksImported": count})
}

func (h *WebHandler) ValidateSeason(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": store.ValidateSeasonData(body)})
}

type connectRequest struct {
	CalendarID string `json:"calendarId" binding:"required"`
}

func (h *WebHandler) ConnectCalendar(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.syncer.Connect(c.Param("id"), req.CalendarID)
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) DisconnectCalendar(c *gin.Context) {
	h.syncer.Disconnect(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *WebHandler) SyncSeason(c *gin.Context) {
	if err := h.syncer.SyncSeason(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	season := h.store.GetSeason(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"syncStatus": season.SyncStatus})
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
