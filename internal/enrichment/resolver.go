package enrichment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"clinicsuite-server/internal/cache"
	"clinicsuite-server/internal/models"
)

// FormData is the view model prefilling the audiometric test form: the
// patient's own fields overlaid with company_* and doctor_* field groups.
// It is never persisted.
type FormData map[string]interface{}

// Resolver loads a patient and enriches it with related company, approval
// number, and examining-staff data. Only the primary patient lookup can fail
// the operation; every secondary lookup is best-effort and degrades to an
// absent field group.
type Resolver struct {
	db           *gorm.DB
	companyCache *cache.CompanyCache
}

// NewResolver creates a Resolver. companyCache may be nil.
func NewResolver(db *gorm.DB, companyCache *cache.CompanyCache) *Resolver {
	return &Resolver{db: db, companyCache: companyCache}
}

// Resolve builds the enriched view model for a patient.
//
// An empty patientID returns (nil, nil): nothing to prefill, no error. A
// missing patient returns a nil model and an error whose text is the
// user-visible flash message. Everything else follows the overlay sequence:
// base patient fields, then company fields and the employer's latest
// approval number when the patient has a linked company, then examiner
// fields when a staff record can be resolved.
func (r *Resolver) Resolve(ctx context.Context, patientID string, surveillanceNo int, userID string) (FormData, error) {
	if patientID == "" {
		return nil, nil
	}

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Patient not found with ID: %s", patientID)
		}
		return nil, err
	}

	data := patientBase(&patient)

	if patient.CompanyName != "" {
		if company := r.lookupCompany(ctx, patient.CompanyName); company != nil {
			apply(data, companyOverlay(company))
		}
		// Queried independently of the company lookup outcome.
		apply(data, r.approvalOverlay(ctx, patient.ID))
	}

	if staff := r.resolveExaminer(ctx, userID, surveillanceNo); staff != nil {
		apply(data, doctorOverlay(staff))
	}

	return data, nil
}

func apply(data FormData, patch FormData) {
	for k, v := range patch {
		data[k] = v
	}
}

// nullable maps a pointer column to the value the form expects: the
// dereferenced value, or nil when the source field is absent.
func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func patientBase(p *models.Patient) FormData {
	return FormData{
		"patient_id":   p.ID,
		"patient_code": p.PatientCode,
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"full_name":    p.FullName(),
		"national_id":  p.NationalID,
		"dob":          p.DateOfBirth,
		"gender":       p.Gender,
		"phone":        p.Phone,
		"employer":     p.CompanyName,
	}
}

func companyOverlay(c *models.Company) FormData {
	return FormData{
		"company_address":             nullable(c.Address),
		"company_district":            nullable(c.District),
		"company_state":               nullable(c.State),
		"company_postcode":            nullable(c.Postcode),
		"company_telephone":           nullable(c.Telephone),
		"company_email":               nullable(c.Email),
		"company_fax":                 nullable(c.Fax),
		"company_registration_number": nullable(c.RegistrationNumber),
		"company_total_workers":       nullable(c.TotalWorkers),
	}
}

func doctorOverlay(s *models.Staff) FormData {
	phone := s.Phone
	if phone == nil || *phone == "" {
		phone = s.AltPhone
	}
	return FormData{
		"doctor_id":             s.ID,
		"doctor_first_name":     s.FirstName,
		"doctor_last_name":      s.LastName,
		"doctor_national_id":    nullable(s.NationalID),
		"doctor_specialization": nullable(s.Specialization),
		"doctor_qualification":  nullable(s.Qualification),
		"doctor_license_number": nullable(s.LicenseNumber),
		"doctor_email":          nullable(s.Email),
		"doctor_phone":          nullable(phone),
		"doctor_address":        nullable(s.Address),
		"doctor_state":          nullable(s.State),
		"doctor_district":       nullable(s.District),
		"doctor_postcode":       nullable(s.Postcode),
		"doctor_position":       nullable(s.Position),
		"doctor_department":     nullable(s.Department),
	}
}

// lookupCompany finds a company by exact name, going through the cache when
// one is configured. Not finding the company is not an error.
func (r *Resolver) lookupCompany(ctx context.Context, name string) *models.Company {
	if company := r.companyCache.Get(ctx, name); company != nil {
		return company
	}
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "name = ?", name).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("company", name).Msg("company lookup failed")
		}
		return nil
	}
	r.companyCache.Set(ctx, name, &company)
	return &company
}

// approvalOverlay finds the employer's most recent non-empty regulatory
// approval number among the patient's historical test rows: latest
// examination date first, ties broken by latest creation time, rows with a
// null or empty approval number ignored.
func (r *Resolver) approvalOverlay(ctx context.Context, patientID string) FormData {
	var row models.AudiometricTest
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND approval_number IS NOT NULL AND approval_number <> ''", patientID).
		Order("examination_date DESC, created_at DESC").
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("patientID", patientID).Msg("approval number lookup failed")
		}
		return nil
	}
	return FormData{"company_approval_number": *row.ApprovalNumber}
}

// resolveExaminer resolves the examining staff member: the logged-in user's
// own staff profile first, then the free-text examiner name recorded on the
// surveillance. Any failure resolves to no staff, never an error.
func (r *Resolver) resolveExaminer(ctx context.Context, userID string, surveillanceNo int) *models.Staff {
	if staff := r.loggedInStaffProfile(ctx, userID); staff != nil {
		return staff
	}
	if surveillanceNo <= 0 {
		return nil
	}

	examinerName := r.surveillanceExaminerName(ctx, surveillanceNo)
	first, last, ok := SplitExaminerName(examinerName)
	if !ok {
		return nil
	}

	var staff models.Staff
	err := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", first, last).
		First(&staff).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("firstName", first).Str("lastName", last).
				Msg("staff lookup by examiner name failed")
		}
		return nil
	}
	return &staff
}

func (r *Resolver) loggedInStaffProfile(ctx context.Context, userID string) *models.Staff {
	if userID == "" {
		return nil
	}
	var user models.User
	err := r.db.WithContext(ctx).Preload("Staff").First(&user, "id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("userID", userID).Msg("staff profile lookup failed")
		}
		return nil
	}
	return user.Staff
}

func (r *Resolver) surveillanceExaminerName(ctx context.Context, surveillanceNo int) string {
	var surveillance models.Surveillance
	err := r.db.WithContext(ctx).
		First(&surveillance, "surveillance_no = ?", surveillanceNo).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Int("surveillanceNo", surveillanceNo).
				Msg("surveillance examiner lookup failed")
		}
		return ""
	}
	return surveillance.ExaminerName
}

// The title must be followed by a period or whitespace so names that merely
// start with "Dr" are left alone.
var doctorPrefix = regexp.MustCompile(`(?i)^dr(\.\s*|\s+)`)

// SplitExaminerName normalizes a free-text examiner name and splits it into
// first name and remainder-as-last-name. The leading "Dr"/"Dr." title is
// stripped case-insensitively and the split happens on the first space only,
// so "Dr. Jane Mary Doe" yields ("Jane", "Mary Doe"). Single-token names
// return ok=false and the staff lookup is skipped.
func SplitExaminerName(raw string) (first, last string, ok bool) {
	name := strings.TrimSpace(raw)
	name = doctorPrefix.ReplaceAllString(name, "")
	parts := strings.SplitN(name, " ", 2)
	if len(parts) < 2 || parts[0] == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
