package handlers

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

// fakeVerifier accepts the token "good" and yields fixed claims.
type fakeVerifier struct {
	claims auth.Claims
}

func (f *fakeVerifier) Verify(token string) (*auth.Claims, error) {
	if token != "good" {
		return nil, apperr.New(apperr.Forbidden, "invalid or expired token")
	}
	c := f.claims
	return &c, nil
}

type voteCall struct {
	postID  string
	voterID string
	op      store.VoteOp
}

type fakePosts struct {
	posts     map[string]*models.RankedPost
	feed      *store.FeedPage
	author    *store.AuthorPage
	feedQuery store.FeedQuery
	votes     []voteCall
	deleted   []string
}

func (f *fakePosts) Create(_ context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = "generated-id"
	}
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id string) (*models.RankedPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	return p, nil
}

func (f *fakePosts) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.New(apperr.NotFound, "post not found")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePosts) ListFeed(_ context.Context, q store.FeedQuery) (*store.FeedPage, error) {
	f.feedQuery = q
	return f.feed, nil
}

func (f *fakePosts) ListByAuthor(_ context.Context, _ string, _ store.PageRequest) (*store.AuthorPage, error) {
	return f.author, nil
}

func (f *fakePosts) ApplyVote(_ context.Context, postID, voterID string, op store.VoteOp) error {
	if _, ok := f.posts[postID]; !ok {
		return apperr.New(apperr.NotFound, "post not found")
	}
	f.votes = append(f.votes, voteCall{postID: postID, voterID: voterID, op: op})
	return nil
}

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.UID]; ok {
		return apperr.New(apperr.Conflict, "user already exists")
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	f.users[user.UID] = user
	return nil
}

func (f *fakeUsers) GetByUID(_ context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (f *fakeUsers) PromoteToAdmin(_ context.Context, uid string) error {
	u, ok := f.users[uid]
	if !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	u.Role = models.RoleAdmin
	return nil
}

type fakeReports struct {
	filed    []*models.Report
	statuses map[string]string
}

func (f *fakeReports) File(_ context.Context, report *models.Report) error {
	report.ID = "report-1"
	report.Status = models.ReportStatusPending
	f.filed = append(f.filed, report)
	return nil
}

func (f *fakeReports) List(_ context.Context, page store.PageRequest, status string) (*store.ReportPage, error) {
	if status != "" && status != "all" && !models.ValidReportStatus(status) {
		return nil, apperr.New(apperr.InvalidArgument, "invalid status filter")
	}
	reports := []models.Report{}
	for _, r := range f.filed {
		if status == "" || status == "all" || r.Status == status {
			reports = append(reports, *r)
		}
	}
	return &store.ReportPage{
		Reports:  reports,
		PageInfo: store.NewPageInfo(int64(len(reports)), page),
	}, nil
}

func (f *fakeReports) SetStatus(_ context.Context, id, status string) error {
	if !models.ValidReportStatus(status) {
		return apperr.New(apperr.InvalidArgument, "status must be pending, resolved, or dismissed")
	}
	for _, r := range f.filed {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "report not found")
}

func (f *fakeReports) Delete(_ context.Context, id string) error {
	for i, r := range f.filed {
		if r.ID == id {
			f.filed = append(f.filed[:i], f.filed[i+1:]...)
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "report not found")
}

// doJSON performs a request against r with an optional bearer token.
func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func init() {
	gin.SetMode(gin.TestMode)
}
