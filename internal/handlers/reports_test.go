package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/models"
)

func newReportRouter(reports *fakeReports, users *fakeUsers, claims auth.Claims) *gin.Engine {
	h := &ReportHandler{reports: reports, log: nopLogger()}
	r := gin.New()
	authed := r.Group("", middleware.RequireAuth(&fakeVerifier{claims: claims}, nopLogger()))
	authed.POST("/reports/comment", h.FileReport)
	admin := authed.Group("", middleware.RequireAdmin(users, nopLogger()))
	admin.GET("/reports", h.ListReports)
	admin.PATCH("/reports/:id/status", h.SetReportStatus)
	admin.DELETE("/reports/:id/delete", h.DeleteReport)
	return r
}

func adminUsers(uid string) *fakeUsers {
	return &fakeUsers{users: map[string]*models.User{
		uid: {UID: uid, Role: models.RoleAdmin},
	}}
}

func TestFileReport(t *testing.T) {
	reports := &fakeReports{}
	r := newReportRouter(reports, adminUsers("admin-1"), auth.Claims{UID: "uid-9"})

	w := doJSON(r, http.MethodPost, "/reports/comment", "good",
		`{"commentId":"c1","postId":"p1","reason":"spam","commentContent":"buy pills"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, reports.filed, 1)
	filed := reports.filed[0]
	assert.Equal(t, models.ReportStatusPending, filed.Status)
	assert.Equal(t, "uid-9", filed.ReportedBy) // reporter from claims, not body
	assert.Equal(t, "buy pills", filed.ContentSnapshot)
	assert.Equal(t, models.ReportTypeComment, filed.Type)
}

func TestFileReportMissingFields(t *testing.T) {
	reports := &fakeReports{}
	r := newReportRouter(reports, adminUsers("admin-1"), auth.Claims{UID: "uid-9"})

	for _, body := range []string{
		`{}`,
		`{"commentId":"c1"}`,
		`{"commentId":"c1","postId":"p1","reason":"spam"}`,
	} {
		w := doJSON(r, http.MethodPost, "/reports/comment", "good", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	assert.Empty(t, reports.filed)
}

func TestListReportsAdminOnly(t *testing.T) {
	reports := &fakeReports{}
	users := &fakeUsers{users: map[string]*models.User{
		"pleb": {UID: "pleb", Role: models.RoleUser},
	}}
	r := newReportRouter(reports, users, auth.Claims{UID: "pleb"})

	w := doJSON(r, http.MethodGet, "/reports", "good", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/reports", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListReportsFilterScoped(t *testing.T) {
	reports := &fakeReports{}
	r := newReportRouter(reports, adminUsers("admin-1"), auth.Claims{UID: "admin-1"})

	for _, body := range []string{
		`{"commentId":"c1","postId":"p1","reason":"spam","commentContent":"x"}`,
		`{"commentId":"c2","postId":"p1","reason":"abuse","commentContent":"y"}`,
	} {
		doJSON(r, http.MethodPost, "/reports/comment", "good", body)
	}
	reports.filed[0].ID = "r0"
	reports.filed[1].ID = "r1"
	require.NoError(t, reports.SetStatus(context.Background(), "r1", models.ReportStatusResolved))

	var body struct {
		Reports      []models.Report `json:"reports"`
		TotalReports int64           `json:"totalReports"`
		TotalPages   int             `json:"totalPages"`
		CurrentPage  int             `json:"currentPage"`
	}

	w := doJSON(r, http.MethodGet, "/reports?status=pending", "good", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.TotalReports)
	require.Len(t, body.Reports, 1)
	assert.Equal(t, "r0", body.Reports[0].ID)

	w = doJSON(r, http.MethodGet, "/reports?status=all", "good", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.TotalReports)
}

func TestSetReportStatus(t *testing.T) {
	reports := &fakeReports{}
	r := newReportRouter(reports, adminUsers("admin-1"), auth.Claims{UID: "admin-1"})

	doJSON(r, http.MethodPost, "/reports/comment", "good",
		`{"commentId":"c1","postId":"p1","reason":"spam","commentContent":"x"}`)
	id := reports.filed[0].ID

	w := doJSON(r, http.MethodPatch, "/reports/"+id+"/status", "good", `{"status":"resolved"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ReportStatusResolved, reports.filed[0].Status)

	// Invalid enum leaves status unchanged.
	w = doJSON(r, http.MethodPatch, "/reports/"+id+"/status", "good", `{"status":"escalated"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ReportStatusResolved, reports.filed[0].Status)

	w = doJSON(r, http.MethodPatch, "/reports/ghost/status", "good", `{"status":"resolved"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReport(t *testing.T) {
	reports := &fakeReports{}
	r := newReportRouter(reports, adminUsers("admin-1"), auth.Claims{UID: "admin-1"})

	doJSON(r, http.MethodPost, "/reports/comment", "good",
		`{"commentId":"c1","postId":"p1","reason":"spam","commentContent":"x"}`)
	id := reports.filed[0].ID

	w := doJSON(r, http.MethodDelete, "/reports/"+id+"/delete", "good", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, reports.filed)

	w = doJSON(r, http.MethodDelete, "/reports/"+id+"/delete", "good", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
