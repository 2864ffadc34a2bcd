package activity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-api/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubAuditor struct {
	limit int
	logs  []model.ActivityLog
	err   error
}

func (s *stubAuditor) Recent(_ context.Context, limit int) ([]model.ActivityLog, error) {
	s.limit = limit
	return s.logs, s.err
}

func newCtx() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/activity/logs", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestLogsHandler(t *testing.T) {
	svc := &stubAuditor{logs: []model.ActivityLog{
		{ID: 2, Action: model.ActionDelete, Description: "Deleted food item Pho"},
		{ID: 1, Action: model.ActionCreate, Description: "Added new food item Pho"},
	}}
	c, rec := newCtx()
	require.NoError(t, LogsHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, RecentLimit, svc.limit)
	require.Contains(t, rec.Body.String(), `"logs":[`)
	require.Contains(t, rec.Body.String(), "Deleted food item Pho")
}

func TestLogsHandlerEmpty(t *testing.T) {
	c, rec := newCtx()
	require.NoError(t, LogsHandler(&stubAuditor{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"logs":[]}`, rec.Body.String())
}

func TestLogsHandlerError(t *testing.T) {
	c, rec := newCtx()
	require.NoError(t, LogsHandler(&stubAuditor{err: errors.New("db down")})(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to fetch logs")
}
