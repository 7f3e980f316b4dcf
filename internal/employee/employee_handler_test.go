package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"willowy/internal/employee"
	employeeerrors "willowy/internal/employee/errors"
	"willowy/internal/media"
	"willowy/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest, profile *media.File) error
	GetAllFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeDetailResponse, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest, profile *media.File) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest, profile *media.File) error {
	return f.CreateFn(ctx, req, profile)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest, profile *media.File) error {
	return f.UpdateFn(ctx, id, req, profile)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	employee.RegisterValidations()
}

type formField struct {
	key   string
	value string
}

func multipartBody(t *testing.T, fields []formField, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range fields {
		assert.NoError(t, writer.WriteField(f.key, f.value))
	}
	if withFile {
		part, err := writer.CreateFormFile("profile", "avatar.png")
		assert.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validEmployeeFields() []formField {
	return []formField{
		{"name", "Alice Smith"},
		{"gender", "female"},
		{"dob", "1992-04-11"},
		{"address", "210 Baker Street"},
		{"mobile", "+14155552671"},
		{"email", "alice@example.com"},
		{"department", uuid.New().String()},
		{"designation", uuid.New().String()},
		{"doj", "2024-01-15"},
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success with file", func(t *testing.T) {
		var gotFile *media.File
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, profile *media.File) error {
				gotFile = profile
				assert.Equal(t, "alice@example.com", req.Email)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, validEmployeeFields(), true)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotNil(t, gotFile)
		assert.Equal(t, "avatar.png", gotFile.Name)
	})

	t.Run("aggregates every violated field into one message", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		fields := []formField{
			{"name", "Al"}, // too short
			{"gender", "female"},
			{"dob", "1992-4-1"}, // wrong length
			{"address", "210 Baker Street"},
			{"mobile", "12345"}, // invalid number
			{"email", "alice@example.com"},
			{"department", uuid.New().String()},
			{"designation", uuid.New().String()},
			{"doj", "2024-01-15"},
		}
		body, contentType := multipartBody(t, fields, true)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.Contains(t, envelope.Error.Message, "Name must be at least 3 characters long")
		assert.Contains(t, envelope.Error.Message, "Dob must be exactly 10 characters long")
		assert.Contains(t, envelope.Error.Message, "Invalid mobile number")
	})

	t.Run("missing file reaches the service as nil", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, profile *media.File) error {
				assert.Nil(t, profile)
				return employeeerrors.ErrProfileRequired
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, validEmployeeFields(), false)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict from service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, profile *media.File) error {
				return employeeerrors.ErrEmailExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, validEmployeeFields(), true)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("partial payload binds only present fields", func(t *testing.T) {
		targetID := uuid.New().String()
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest, profile *media.File) error {
				assert.Equal(t, targetID, id)
				assert.Nil(t, req.Name)
				if assert.NotNil(t, req.Address) {
					assert.Equal(t, "9 New Lane", *req.Address)
				}
				assert.Nil(t, profile)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, []formField{{"address", "9 New Lane"}}, false)
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+targetID, body)
		c.Request.Header.Set("Content-Type", contentType)
		c.Params = []gin.Param{{Key: "id", Value: targetID}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("present field still validated", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, []formField{{"email", "not-an-email"}}, false)
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+uuid.New().String(), body)
		c.Request.Header.Set("Content-Type", contentType)

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found from service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest, profile *media.File) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, nil, false)
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/missing", body)
		c.Request.Header.Set("Content-Type", contentType)
		c.Params = []gin.Param{{Key: "id", Value: "missing"}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		targetID := uuid.New().String()
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
				assert.Equal(t, targetID, id)
				return employee.EmployeeDetailResponse{Name: "Alice Smith", Department: "Engineering"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/"+targetID, nil)
		c.Params = []gin.Param{{Key: "id", Value: targetID}}

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Engineering")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
				return employee.EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/missing", nil)
		c.Params = []gin.Param{{Key: "id", Value: "missing"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("empty list stays a success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		targetID := uuid.New().String()
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, targetID, id)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/"+targetID, nil)
		c.Params = []gin.Param{{Key: "id", Value: targetID}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully")
	})
}
