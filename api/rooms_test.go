package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayvista/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRoomUseCase is a mock implementation of rooms.RoomUseCase
type MockRoomUseCase struct {
	mock.Mock
}

func (m *MockRoomUseCase) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) ListByHostEmail(ctx context.Context, email string) ([]domain.Room, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) Create(ctx context.Context, room *domain.Room) (*domain.InsertAck, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsertAck), args.Error(1)
}

func (m *MockRoomUseCase) SetBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateAck, error) {
	args := m.Called(ctx, id, booked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateAck), args.Error(1)
}

func TestRoomHandler_list(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/rooms", nil)

	list := []domain.Room{
		{Title: "Sea view studio", Location: "Lisbon", Price: 120},
	}
	mockService.On("List", c.Request.Context()).Return(list, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_listByHost(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "host@example.com"}}
	c.Request = httptest.NewRequest("GET", "/rooms/host@example.com", nil)

	list := []domain.Room{
		{Title: "Cabin", Host: domain.Host{Email: "host@example.com"}},
	}
	mockService.On("ListByHostEmail", c.Request.Context(), "host@example.com").Return(list, nil)

	handler.listByHost(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Room
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "host@example.com", response[0].Host.Email)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_get(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	id := primitive.NewObjectID()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id.Hex()}}
	c.Request = httptest.NewRequest("GET", "/room/"+id.Hex(), nil)

	room := &domain.Room{ID: id, Title: "Sea view studio"}
	mockService.On("GetByID", c.Request.Context(), id).Return(room, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_get_malformedID(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "not-a-hex-id"}}
	c.Request = httptest.NewRequest("GET", "/room/not-a-hex-id", nil)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestRoomHandler_get_absent(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	id := primitive.NewObjectID()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id.Hex()}}
	c.Request = httptest.NewRequest("GET", "/room/"+id.Hex(), nil)

	mockService.On("GetByID", c.Request.Context(), id).Return(nil, nil)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_create(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	room := domain.Room{
		Title:    "Sea view studio",
		Location: "Lisbon",
		Price:    120,
		Host:     domain.Host{Name: "Bob", Email: "host@example.com"},
	}
	body, _ := json.Marshal(room)
	c.Request = httptest.NewRequest("POST", "/room", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ack := &domain.InsertAck{InsertedID: "abc123"}
	mockService.On("Create", c.Request.Context(), &room).Return(ack, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.InsertAck
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "abc123", response.InsertedID)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_updateStatus(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	id := primitive.NewObjectID()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id.Hex()}}

	body, _ := json.Marshal(updateStatusRequest{Status: true})
	c.Request = httptest.NewRequest("PATCH", "/rooms/status/"+id.Hex(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ack := &domain.UpdateAck{MatchedCount: 1, ModifiedCount: 1}
	mockService.On("SetBookedStatus", c.Request.Context(), id, true).Return(ack, nil)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.UpdateAck
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), response.ModifiedCount)

	mockService.AssertExpectations(t)
}
