package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campuscoffee/pos-service/internal/app/pos/entity"
	"campuscoffee/pos-service/internal/app/pos/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPosService struct {
	mock.Mock
}

func (m *MockPosService) CreatePos(ctx context.Context, req *entity.CreatePosRequest) (*entity.Pos, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pos), args.Error(1)
}

func (m *MockPosService) GetPos(ctx context.Context, id uuid.UUID) (*entity.Pos, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pos), args.Error(1)
}

func (m *MockPosService) GetAllPos(ctx context.Context) ([]entity.Pos, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pos), args.Error(1)
}

func (m *MockPosService) UpdatePos(ctx context.Context, id uuid.UUID, req *entity.UpdatePosRequest) (*entity.Pos, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pos), args.Error(1)
}

func (m *MockPosService) DeletePos(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupPosTestRouter(mockService *MockPosService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	posHandler := NewPosHandler(mockService)

	pos := router.Group("/pos")
	{
		pos.GET("", posHandler.GetAllPos)
		pos.GET("/:pos_id", posHandler.GetPos)
		pos.POST("", posHandler.CreatePos)
		pos.PUT("/:pos_id", posHandler.UpdatePos)
		pos.DELETE("/:pos_id", posHandler.DeletePos)
	}

	return router
}

func newHandlerTestPos() *entity.Pos {
	return &entity.Pos{
		ID:        uuid.New(),
		Name:      "Library Espresso Bar",
		Campus:    "North Campus",
		Type:      entity.PosTypeCafe,
		Address:   "12 University Ave",
		CreatedAt: time.Now(),
	}
}

func TestCreatePosHandler_Success(t *testing.T) {
	mockService := new(MockPosService)
	pos := newHandlerTestPos()

	mockService.On("CreatePos", mock.Anything, mock.AnythingOfType("*entity.CreatePosRequest")).Return(pos, nil)

	router := setupPosTestRouter(mockService)

	body, _ := json.Marshal(entity.CreatePosRequest{
		Name:    pos.Name,
		Campus:  pos.Campus,
		Type:    pos.Type,
		Address: pos.Address,
	})
	req, _ := http.NewRequest(http.MethodPost, "/pos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp entity.Pos
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, pos.Name, resp.Name)
}

func TestCreatePosHandler_InvalidType(t *testing.T) {
	mockService := new(MockPosService)
	router := setupPosTestRouter(mockService)

	// "food_truck" не входит в допустимые типы точек
	body, _ := json.Marshal(entity.CreatePosRequest{
		Name:    "Mystery Truck",
		Campus:  "North Campus",
		Type:    "food_truck",
		Address: "Parking lot B",
	})
	req, _ := http.NewRequest(http.MethodPost, "/pos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreatePos", mock.Anything, mock.Anything)
}

func TestCreatePosHandler_MissingRequiredFields(t *testing.T) {
	mockService := new(MockPosService)
	router := setupPosTestRouter(mockService)

	body, _ := json.Marshal(entity.CreatePosRequest{Name: "No campus"})
	req, _ := http.NewRequest(http.MethodPost, "/pos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreatePos", mock.Anything, mock.Anything)
}

func TestGetPosHandler_Success(t *testing.T) {
	mockService := new(MockPosService)
	pos := newHandlerTestPos()

	mockService.On("GetPos", mock.Anything, pos.ID).Return(pos, nil)

	router := setupPosTestRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/pos/"+pos.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.Pos
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, pos.ID, resp.ID)
}

func TestGetPosHandler_NotFound(t *testing.T) {
	mockService := new(MockPosService)
	missingID := uuid.New()

	mockService.On("GetPos", mock.Anything, missingID).Return(nil, service.ErrPosNotFound)

	router := setupPosTestRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/pos/"+missingID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPosHandler_InvalidUUID(t *testing.T) {
	mockService := new(MockPosService)
	router := setupPosTestRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/pos/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetPos", mock.Anything, mock.Anything)
}

func TestGetAllPosHandler_Success(t *testing.T) {
	mockService := new(MockPosService)
	posList := []entity.Pos{*newHandlerTestPos(), *newHandlerTestPos()}

	mockService.On("GetAllPos", mock.Anything).Return(posList, nil)

	router := setupPosTestRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/pos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.PosListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Pos, 2)
}

func TestUpdatePosHandler_Success(t *testing.T) {
	mockService := new(MockPosService)
	pos := newHandlerTestPos()
	pos.Name = "Renovated Espresso Bar"

	mockService.On("UpdatePos", mock.Anything, pos.ID, mock.AnythingOfType("*entity.UpdatePosRequest")).Return(pos, nil)

	router := setupPosTestRouter(mockService)

	body, _ := json.Marshal(entity.UpdatePosRequest{Name: "Renovated Espresso Bar"})
	req, _ := http.NewRequest(http.MethodPut, "/pos/"+pos.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.Pos
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Renovated Espresso Bar", resp.Name)
}

func TestUpdatePosHandler_NotFound(t *testing.T) {
	mockService := new(MockPosService)
	missingID := uuid.New()

	mockService.On("UpdatePos", mock.Anything, missingID, mock.Anything).Return(nil, service.ErrPosNotFound)

	router := setupPosTestRouter(mockService)

	body, _ := json.Marshal(entity.UpdatePosRequest{Name: "Ghost Cafe"})
	req, _ := http.NewRequest(http.MethodPut, "/pos/"+missingID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePosHandler_Success(t *testing.T) {
	mockService := new(MockPosService)
	posID := uuid.New()

	mockService.On("DeletePos", mock.Anything, posID).Return(nil)

	router := setupPosTestRouter(mockService)

	req, _ := http.NewRequest(http.MethodDelete, "/pos/"+posID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePosHandler_NotFound(t *testing.T) {
	mockService := new(MockPosService)
	missingID := uuid.New()

	mockService.On("DeletePos", mock.Anything, missingID).Return(service.ErrPosNotFound)

	router := setupPosTestRouter(mockService)

	req, _ := http.NewRequest(http.MethodDelete, "/pos/"+missingID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
