package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParam is one name/value pair in a deep-link query string. The tab
// page forwards parameters in a fixed order, so URLs are assembled from an
// ordered slice rather than url.Values (whose Encode sorts keys).
type QueryParam struct {
	Name  string
	Value string
}

// TabURLParams carries everything the audiometry tab page forwards into its
// embedded sub-views.
type TabURLParams struct {
	PatientID      string
	SurveillanceID int
	PatientName    string
	Employer       string
	NewEntry       bool
}

// BuildTabURL builds a sub-view URL from the base route path. Parameters are
// included only when non-empty (surveillance_id only when > 0), URL-encoded,
// and always terminated with iframe=1 so the embedded view hides its chrome.
// withNewFlag is set for the test and summary views, never for the report.
func BuildTabURL(basePath string, p TabURLParams, withNewFlag bool) string {
	params := make([]QueryParam, 0, 5)
	if p.PatientID != "" {
		params = append(params, QueryParam{"patient_id", p.PatientID})
	}
	if p.SurveillanceID > 0 {
		params = append(params, QueryParam{"surveillance_id", strconv.Itoa(p.SurveillanceID)})
	}
	if p.PatientName != "" {
		params = append(params, QueryParam{"patient_name", p.PatientName})
	}
	if p.Employer != "" {
		params = append(params, QueryParam{"employer", p.Employer})
	}
	if withNewFlag && p.NewEntry {
		params = append(params, QueryParam{"new", "1"})
	}
	params = append(params, QueryParam{"iframe", "1"})

	var sb strings.Builder
	sb.WriteString(basePath)
	for i, param := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// Logical route names to application paths. Kept in one table so templates
// and handlers never hard-code paths.
var routePaths = map[string]string{
	"login":               "/login",
	"logout":              "/logout",
	"patients":            "/patients",
	"audiometry":          "/audiometry",
	"audiometric_test":    "/audiometry/test",
	"audiometric_summary": "/audiometry/summary",
	"audiometric_report":  "/audiometry/report",
}

// RoutePath maps a logical route name to its application path. Unknown names
// fall back to the root path.
func RoutePath(name string) string {
	if p, ok := routePaths[name]; ok {
		return p
	}
	return "/"
}

// AssetPath maps a static resource to its serving path.
func AssetPath(rel string) string {
	return "/static/" + strings.TrimPrefix(rel, "/")
}
