package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinicsuite-server/internal/enrichment"
	"clinicsuite-server/internal/models"
)

func newAudiometryRouter(db *gorm.DB) *gin.Engine {
	router := newPageRouter()
	h := NewAudiometryHandler(db, enrichment.NewResolver(db, nil))
	router.GET("/audiometry", h.TabPage)
	router.GET("/audiometry/test", h.TestView)
	router.GET("/audiometry/summary", h.SummaryView)
	router.GET("/audiometry/report", h.ReportView)
	return router
}

func TestTabPage_IframeURLs(t *testing.T) {
	db := openTestDB(t)
	p := &models.Patient{PatientCode: "PC-100", FirstName: "Aminah", LastName: "Yusof"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	router := newAudiometryRouter(db)

	w := get(t, router, "/audiometry?patient_id="+p.ID+"&surveillance_id=5&new=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()

	// & is entity-escaped inside src attributes.
	testURL := "/audiometry/test?patient_id=" + p.ID + "&amp;surveillance_id=5&amp;new=1&amp;iframe=1"
	summaryURL := "/audiometry/summary?patient_id=" + p.ID + "&amp;surveillance_id=5&amp;new=1&amp;iframe=1"
	reportURL := "/audiometry/report?patient_id=" + p.ID + "&amp;surveillance_id=5&amp;iframe=1"
	for _, want := range []string{testURL, summaryURL, reportURL} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing iframe URL %q:\n%s", want, body)
		}
	}
}

func TestTabPage_MissingPatientShowsMessage(t *testing.T) {
	db := openTestDB(t)
	router := newAudiometryRouter(db)

	w := get(t, router, "/audiometry?patient_id=ghost")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Patient not found with ID: ghost") {
		t.Fatal("missing patient message not rendered")
	}
}

func TestTabPage_KeepsPendingFlashAlongsideResolveError(t *testing.T) {
	db := openTestDB(t)
	router := newAudiometryRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/audiometry?patient_id=ghost", nil)
	req.AddCookie(&http.Cookie{Name: "clinic_flash", Value: url.QueryEscape("Company not found with ID: 42")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "Company not found with ID: 42") {
		t.Fatalf("pending flash dropped:\n%s", body)
	}
	if !strings.Contains(body, "Patient not found with ID: ghost") {
		t.Fatalf("resolve error not rendered:\n%s", body)
	}
}

func TestTestView_PrefillsPatientFields(t *testing.T) {
	db := openTestDB(t)
	p := &models.Patient{
		PatientCode: "PC-101", FirstName: "Zul", LastName: "Hamid",
		NationalID: "790202-10-1122", CompanyName: "Acme Plantations",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	company := &models.Company{CompanyNo: 6, Name: "Acme Plantations", Telephone: strPtr("07-555")}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	router := newAudiometryRouter(db)

	body := get(t, router, "/audiometry/test?patient_id="+p.ID+"&iframe=1&new=1").Body.String()
	for _, want := range []string{"Zul Hamid", "790202-10-1122", "Acme Plantations", "07-555", "New Audiometric Test"} {
		if !strings.Contains(body, want) {
			t.Fatalf("test form missing %q:\n%s", want, body)
		}
	}
}

func TestSummaryView_ListsHistory(t *testing.T) {
	db := openTestDB(t)
	p := &models.Patient{PatientCode: "PC-102", FirstName: "Aminah", LastName: "Yusof"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	test := &models.AudiometricTest{
		PatientID:       p.ID,
		SurveillanceNo:  5,
		ExaminationDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Result:          "Standard Threshold Shift",
		ExaminerName:    "Dr. Jane Mary Doe",
	}
	if err := db.Create(test).Error; err != nil {
		t.Fatalf("seed test: %v", err)
	}
	router := newAudiometryRouter(db)

	body := get(t, router, "/audiometry/summary?patient_id="+p.ID+"&iframe=1").Body.String()
	if !strings.Contains(body, "15/03/2025") || !strings.Contains(body, "Standard Threshold Shift") {
		t.Fatalf("summary missing test row:\n%s", body)
	}
}

func TestSummaryView_EmptyState(t *testing.T) {
	db := openTestDB(t)
	router := newAudiometryRouter(db)

	body := get(t, router, "/audiometry/summary?patient_id=none&iframe=1").Body.String()
	if !strings.Contains(body, "No Tests Recorded") {
		t.Fatal("summary empty state not rendered")
	}
}

func TestReportView_EmptyState(t *testing.T) {
	db := openTestDB(t)
	router := newAudiometryRouter(db)

	body := get(t, router, "/audiometry/report?iframe=1").Body.String()
	if !strings.Contains(body, "No Report Available") {
		t.Fatal("report empty state not rendered")
	}
}
