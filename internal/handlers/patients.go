package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"clinicsuite-server/internal/middleware"
	"clinicsuite-server/internal/models"
	"clinicsuite-server/internal/utils"
)

// PatientHandler handles the patient listing page.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// PatientRow is one rendered listing row. CompanyName is only populated by
// the unscoped query; the scoped page already knows the employer.
type PatientRow struct {
	ID          string
	PatientCode string
	FirstName   string
	LastName    string
	NationalID  string
	DateOfBirth *time.Time
	Gender      models.Gender
	Phone       string
	JobTitle    string
	CompanyName string
}

// List renders the patient table, optionally scoped to one employer via the
// company_id query parameter (a positive company number; 0 or absent means
// no filter). An unknown company flashes an error and redirects back to the
// unscoped listing.
func (h *PatientHandler) List(c *gin.Context) {
	// A non-numeric company_id parses to 0, i.e. the unscoped listing.
	companyNo, _ := strconv.Atoi(c.Query("company_id"))

	var scopedCompany *models.Company
	if companyNo > 0 {
		var company models.Company
		err := h.DB.WithContext(c.Request.Context()).
			First(&company, "company_no = ?", companyNo).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error().Err(err).Int("companyNo", companyNo).Msg("company lookup failed")
			}
			middleware.SetFlash(c, "Company not found with ID: "+strconv.Itoa(companyNo))
			utils.Redirect(c, "patients")
			return
		}
		scopedCompany = &company
	}

	rows, err := h.queryRows(c, scopedCompany)
	if err != nil {
		// Degrade to the empty listing rather than erroring the page.
		log.Error().Err(err).Msg("patient list query failed")
		rows = nil
	}

	utils.RenderPage(c, http.StatusOK, "patients.html", utils.PageData{
		"flash":   middleware.TakeFlash(c),
		"company": scopedCompany,
		"rows":    rows,
	})
}

func (h *PatientHandler) queryRows(c *gin.Context, company *models.Company) ([]PatientRow, error) {
	var rows []PatientRow
	q := h.DB.WithContext(c.Request.Context()).Model(&models.Patient{})

	if company != nil {
		// Scoped: inner join, so patients without occupational history are
		// excluded; match the employer name case-insensitively and trimmed.
		err := q.
			Select("DISTINCT patients.id, patients.patient_code, patients.first_name, patients.last_name, patients.national_id, patients.date_of_birth, patients.gender, patients.phone, occupational_histories.job_title").
			Joins("INNER JOIN occupational_histories ON occupational_histories.patient_id = patients.id").
			Where("LOWER(TRIM(occupational_histories.company_name)) = LOWER(TRIM(?))", company.Name).
			Order("patients.first_name, patients.last_name").
			Scan(&rows).Error
		return rows, err
	}

	// Unscoped: left join keeps patients without history, with an empty
	// employer column.
	err := q.
		Select("DISTINCT patients.id, patients.patient_code, patients.first_name, patients.last_name, patients.national_id, patients.date_of_birth, patients.gender, patients.phone, occupational_histories.job_title, occupational_histories.company_name").
		Joins("LEFT JOIN occupational_histories ON occupational_histories.patient_id = patients.id").
		Order("patients.first_name, patients.last_name").
		Scan(&rows).Error
	return rows, err
}
