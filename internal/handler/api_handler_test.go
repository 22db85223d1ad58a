package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interview-bank/internal/domain"
	"interview-bank/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestQuestionHandler_UpdatePositions(t *testing.T) {
	app, deps := setupApp()
	var got domain.Reorder
	deps.questions.UpdatePositionsFunc = func(ctx context.Context, reorder domain.Reorder) error {
		got = reorder
		return nil
	}

	resp, err := app.Test(jsonRequest("/update_positions",
		`{"themes":[{"id":"1","order":["12","10"]},{"id":"2","order":[]}],"unthemed":["11"]}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.SuccessResponse](t, resp).Success)
	require.Len(t, got.Buckets, 3)
	assert.Equal(t, int64(1), *got.Buckets[0].ThemeID)
	assert.Equal(t, []int64{12, 10}, got.Buckets[0].QuestionIDs)
	assert.Empty(t, got.Buckets[1].QuestionIDs)
	assert.Nil(t, got.Buckets[2].ThemeID)
	assert.Equal(t, []int64{11}, got.Buckets[2].QuestionIDs)
}

func TestQuestionHandler_UpdatePositions_Failure(t *testing.T) {
	app, deps := setupApp()
	deps.questions.UpdatePositionsFunc = func(ctx context.Context, reorder domain.Reorder) error {
		return domain.NewInternalError(errors.New("database is locked"))
	}

	resp, err := app.Test(jsonRequest("/update_positions", `{"themes":[],"unthemed":[]}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "database is locked", body.Error)
}

func TestQuestionHandler_UpdatePositions_BadBody(t *testing.T) {
	app, _ := setupApp()

	resp, err := app.Test(jsonRequest("/update_positions", `{"themes":[{"id":"x"}]}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuestionHandler_UpdateQuestion(t *testing.T) {
	app, deps := setupApp()
	deps.questions.UpdateQuestionFunc = func(ctx context.Context, id int64, title, answer string) error {
		switch id {
		case 5:
			assert.Equal(t, "<i>New</i>", title)
			return nil
		case 6:
			return domain.ValidationErrors{domain.NewMissingFieldError("title", "Заголовок и ответ не могут быть пустыми")}
		default:
			return domain.NewQuestionNotFoundError(id)
		}
	}

	resp, err := app.Test(jsonRequest("/update_question/5", `{"title":"<i>New</i>","answer":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("/update_question/6", `{"title":"","answer":""}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Заголовок и ответ не могут быть пустыми", decode[dto.ErrorResponse](t, resp).Error)

	resp, err = app.Test(jsonRequest("/update_question/7", `{"title":"t","answer":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuestionHandler_DeleteQuestion(t *testing.T) {
	app, deps := setupApp()
	var deleted int64
	deps.questions.DeleteQuestionFunc = func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/delete_question/42", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(42), deleted)
}

func TestThemeHandler_AddTheme(t *testing.T) {
	app, deps := setupApp()
	deps.themes.AddThemeFunc = func(ctx context.Context, name string) (*domain.Theme, error) {
		switch name {
		case "Go":
			return nil, domain.NewConflictError("Тема с таким именем уже существует")
		case "":
			return nil, domain.ValidationErrors{domain.NewMissingFieldError("name", "Имя темы не может быть пустым")}
		}
		return &domain.Theme{ID: 9, Name: name}, nil
	}

	resp, err := app.Test(jsonRequest("/add_theme", `{"name":"Networking"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[dto.AddThemeResponse](t, resp)
	assert.Equal(t, dto.AddThemeResponse{Success: true, ID: 9, Name: "Networking"}, created)

	resp, err = app.Test(jsonRequest("/add_theme", `{"name":"Go"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Тема с таким именем уже существует", decode[dto.ErrorResponse](t, resp).Error)

	resp, err = app.Test(jsonRequest("/add_theme", `{"name":""}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestThemeHandler_UpdateThemeOrder(t *testing.T) {
	app, deps := setupApp()
	var got []int64
	deps.themes.ReorderThemesFunc = func(ctx context.Context, ids []int64) error {
		got = ids
		return nil
	}

	resp, err := app.Test(jsonRequest("/update_theme_order", `{"order":["3",1,"2"]}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{3, 1, 2}, got)
}

func TestThemeHandler_UpdateThemeName(t *testing.T) {
	app, deps := setupApp()
	deps.themes.RenameThemeFunc = func(ctx context.Context, id int64, name string) error {
		if id == 0 {
			return domain.ValidationErrors{domain.NewMissingFieldError("id", "Неверные данные")}
		}
		assert.Equal(t, int64(4), id)
		assert.Equal(t, "Databases", name)
		return nil
	}

	resp, err := app.Test(jsonRequest("/update_theme_name", `{"id":"4","name":"Databases"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("/update_theme_name", `{"name":"Databases"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Неверные данные", decode[dto.ErrorResponse](t, resp).Error)
}

func TestThemeHandler_DeleteTheme(t *testing.T) {
	app, deps := setupApp()
	deps.themes.DeleteThemeFunc = func(ctx context.Context, id int64) error {
		if id == 2 {
			return domain.NewInternalError(errors.New("boom"))
		}
		return nil
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/delete_theme/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/delete_theme/2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/delete_theme/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportHandler_RecentReports(t *testing.T) {
	app, deps := setupApp()
	recorded := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	deps.interview.RecentReportsFunc = func(ctx context.Context) ([]domain.ReportSummary, error) {
		return []domain.ReportSummary{{IntervieweeName: "Ivan", Rating: 75, RecordedAt: recorded}}, nil
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/recent", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.RecentReportsResponse](t, resp)
	require.Len(t, body.Reports, 1)
	assert.Equal(t, "Ivan", body.Reports[0].IntervieweeName)
	assert.True(t, body.Reports[0].RecordedAt.Equal(recorded))
}

func TestReportHandler_Health(t *testing.T) {
	app, deps := setupApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	deps.pinger.Err = errors.New("sql: database is closed")
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "degraded", decode[dto.HealthResponse](t, resp).Status)
}
