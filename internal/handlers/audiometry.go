package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"clinicsuite-server/internal/enrichment"
	"clinicsuite-server/internal/middleware"
	"clinicsuite-server/internal/models"
	"clinicsuite-server/internal/utils"
)

// AudiometryHandler handles the audiometric testing pages: the tabbed
// container and the three sub-views it embeds via iframes.
type AudiometryHandler struct {
	DB       *gorm.DB
	Resolver *enrichment.Resolver
}

// NewAudiometryHandler creates a new AudiometryHandler.
func NewAudiometryHandler(db *gorm.DB, resolver *enrichment.Resolver) *AudiometryHandler {
	return &AudiometryHandler{DB: db, Resolver: resolver}
}

// tabQuery is the recognized query parameter set of the audiometry pages.
type tabQuery struct {
	PatientID      string
	SurveillanceID int
	PatientName    string
	Employer       string
	NewEntry       bool
	Iframe         bool
}

func parseTabQuery(c *gin.Context) tabQuery {
	// A non-numeric surveillance_id parses to 0 and is simply not forwarded.
	surveillanceID, _ := strconv.Atoi(c.Query("surveillance_id"))
	return tabQuery{
		PatientID:      c.Query("patient_id"),
		SurveillanceID: surveillanceID,
		PatientName:    c.Query("patient_name"),
		Employer:       c.Query("employer"),
		NewEntry:       c.Query("new") == "1",
		Iframe:         c.Query("iframe") == "1",
	}
}

func (q tabQuery) urlParams() utils.TabURLParams {
	return utils.TabURLParams{
		PatientID:      q.PatientID,
		SurveillanceID: q.SurveillanceID,
		PatientName:    q.PatientName,
		Employer:       q.Employer,
		NewEntry:       q.NewEntry,
	}
}

// TabPage renders the tabbed audiometry shell with its three deep-linked
// iframe URLs. The enrichment resolver runs here so a missing patient
// surfaces its message on the container page.
func (h *AudiometryHandler) TabPage(c *gin.Context) {
	q := parseTabQuery(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	form, err := h.Resolver.Resolve(c.Request.Context(), q.PatientID, q.SurveillanceID, userID)
	var resolveErr string
	if err != nil {
		resolveErr = err.Error()
	}

	p := q.urlParams()
	utils.RenderPage(c, http.StatusOK, "audiometry.html", utils.PageData{
		"flash":       middleware.TakeFlash(c),
		"error":       resolveErr,
		"form":        form,
		"patientName": q.PatientName,
		"employer":    q.Employer,
		"testURL":     utils.BuildTabURL(utils.RoutePath("audiometric_test"), p, true),
		"summaryURL":  utils.BuildTabURL(utils.RoutePath("audiometric_summary"), p, true),
		"reportURL":   utils.BuildTabURL(utils.RoutePath("audiometric_report"), p, false),
	})
}

// TestView renders the audiometric test form, prefilled from the enrichment
// resolver. Served inside the first tab's iframe.
func (h *AudiometryHandler) TestView(c *gin.Context) {
	q := parseTabQuery(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	form, err := h.Resolver.Resolve(c.Request.Context(), q.PatientID, q.SurveillanceID, userID)
	var resolveErr string
	if err != nil {
		resolveErr = err.Error()
	}

	utils.RenderPage(c, http.StatusOK, "audiometry_test.html", utils.PageData{
		"iframe":   q.Iframe,
		"error":    resolveErr,
		"form":     form,
		"newEntry": q.NewEntry,
	})
}

// SummaryView renders the patient's historical test rows, newest first.
func (h *AudiometryHandler) SummaryView(c *gin.Context) {
	q := parseTabQuery(c)

	var tests []models.AudiometricTest
	if q.PatientID != "" {
		err := h.DB.WithContext(c.Request.Context()).
			Where("patient_id = ?", q.PatientID).
			Order("examination_date DESC, created_at DESC").
			Find(&tests).Error
		if err != nil {
			log.Warn().Err(err).Str("patientID", q.PatientID).Msg("test history lookup failed")
		}
	}

	utils.RenderPage(c, http.StatusOK, "audiometry_summary.html", utils.PageData{
		"iframe":      q.Iframe,
		"patientName": q.PatientName,
		"employer":    q.Employer,
		"tests":       tests,
	})
}

// ReportView renders the report for the patient's most recent test.
func (h *AudiometryHandler) ReportView(c *gin.Context) {
	q := parseTabQuery(c)

	var latest *models.AudiometricTest
	if q.PatientID != "" {
		var row models.AudiometricTest
		err := h.DB.WithContext(c.Request.Context()).
			Where("patient_id = ?", q.PatientID).
			Order("examination_date DESC, created_at DESC").
			First(&row).Error
		switch {
		case err == nil:
			latest = &row
		case !errors.Is(err, gorm.ErrRecordNotFound):
			log.Warn().Err(err).Str("patientID", q.PatientID).Msg("latest test lookup failed")
		}
	}

	utils.RenderPage(c, http.StatusOK, "audiometry_report.html", utils.PageData{
		"iframe":      q.Iframe,
		"patientName": q.PatientName,
		"employer":    q.Employer,
		"test":        latest,
	})
}
