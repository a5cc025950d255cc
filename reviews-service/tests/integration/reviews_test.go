//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"campuscoffee/reviews-service/internal/app/reviews/entity"
	"campuscoffee/reviews-service/internal/app/reviews/handler"
	"campuscoffee/reviews-service/internal/app/reviews/infrastructure"
	"campuscoffee/reviews-service/internal/app/reviews/repository"
	"campuscoffee/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testMinApprovals = 3

type MockKafkaProducer struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockKafkaProducer) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKafkaProducer) Close() error { return nil }

// Заглушки внешних сервисов: все пользователи и точки продаж существуют
type StubUserClient struct{}

func (c *StubUserClient) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return &entity.User{ID: userID, Email: userID + "@campus.edu"}, nil
}

type StubPosClient struct {
	MissingID string
}

func (c *StubPosClient) GetPos(ctx context.Context, posID string) (*entity.Pos, error) {
	if posID == c.MissingID {
		return nil, infrastructure.ErrPosNotFound
	}
	return &entity.Pos{ID: posID, Name: "Library Espresso Bar"}, nil
}

type ReviewsIntegrationTestSuite struct {
	suite.Suite
	client        *mongo.Client
	db            *mongo.Database
	router        *gin.Engine
	reviewService *service.ReviewService
	kafkaProducer *MockKafkaProducer
	currentUserID string
	testPosID     string
}

func TestReviewsIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ReviewsIntegrationTestSuite))
}

func (s *ReviewsIntegrationTestSuite) SetupSuite() {
	mongoURI := getEnv("TEST_MONGODB_URI", "mongodb://localhost:27018")
	dbName := getEnv("TEST_MONGODB_DATABASE", "reviews_test_db")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	s.client, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	s.Require().NoError(err)

	s.db = s.client.Database(dbName)

	reviewRepo := repository.NewReviewRepository(s.db)
	s.kafkaProducer = &MockKafkaProducer{Messages: make([][]byte, 0)}
	s.reviewService = service.NewReviewService(
		reviewRepo,
		&StubUserClient{},
		&StubPosClient{MissingID: "missing-pos"},
		s.kafkaProducer,
		testMinApprovals,
	)

	s.testPosID = "test-pos-" + primitive.NewObjectID().Hex()

	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	reviewHandler := handler.NewReviewHandler(s.reviewService)

	// Подмена JWT: user_id берётся из состояния сьюта
	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.currentUserID)
		c.Next()
	}

	reviews := s.router.Group("/reviews")
	reviews.Use(authMiddleware)
	reviews.POST("", reviewHandler.CreateReview)
	reviews.GET("/:review_id", reviewHandler.GetReview)
	reviews.POST("/:review_id/approve", reviewHandler.ApproveReview)
	reviews.GET("/pos/:pos_id", reviewHandler.GetReviewsByPos)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *ReviewsIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	s.db.Collection("reviews").Drop(ctx)
	s.kafkaProducer.Messages = make([][]byte, 0)
	s.kafkaProducer.ExpectedCalls = nil
	s.kafkaProducer.Calls = nil
	s.kafkaProducer.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.currentUserID = "test-user-" + primitive.NewObjectID().Hex()
}

func (s *ReviewsIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.client.Disconnect(ctx)
	}
}

func (s *ReviewsIntegrationTestSuite) createReview(posID string) entity.Review {
	reqBody := entity.CreateReviewRequest{PosID: posID, Content: "Solid espresso and quick service."}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created entity.Review
	json.Unmarshal(w.Body.Bytes(), &created)
	return created
}

func (s *ReviewsIntegrationTestSuite) TestCreateReview_Success() {
	created := s.createReview(s.testPosID)

	s.Equal(s.currentUserID, created.AuthorID)
	s.False(created.ID.IsZero())
	s.Equal(0, created.ApprovalCount)
	s.False(created.Approved)
	s.Len(s.kafkaProducer.Messages, 1)
}

func (s *ReviewsIntegrationTestSuite) TestCreateReview_PosNotFound() {
	reqBody := entity.CreateReviewRequest{PosID: "missing-pos", Content: "Review of nonexistent place."}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReviewsIntegrationTestSuite) TestCreateReview_DuplicateAuthorPos() {
	s.createReview(s.testPosID)

	// Второй отзыв того же автора на ту же точку
	reqBody := entity.CreateReviewRequest{PosID: s.testPosID, Content: "Trying to review it again."}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *ReviewsIntegrationTestSuite) TestApproveReview_SelfApprovalRejected() {
	created := s.createReview(s.testPosID)

	req, _ := http.NewRequest(http.MethodPost, "/reviews/"+created.ID.Hex()+"/approve", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *ReviewsIntegrationTestSuite) TestApproveReview_ReachesThreshold() {
	created := s.createReview(s.testPosID)

	// Одобрения от трёх разных пользователей
	for i := 0; i < testMinApprovals; i++ {
		s.currentUserID = "approver-" + primitive.NewObjectID().Hex()

		req, _ := http.NewRequest(http.MethodPost, "/reviews/"+created.ID.Hex()+"/approve", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Require().Equal(http.StatusOK, w.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/reviews/"+created.ID.Hex(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var review entity.Review
	json.Unmarshal(w.Body.Bytes(), &review)
	s.Equal(testMinApprovals, review.ApprovalCount)
	s.True(review.Approved)
}

func (s *ReviewsIntegrationTestSuite) TestGetReviewsByPos_FiltersByApproval() {
	posID := "filter-pos-" + primitive.NewObjectID().Hex()
	created := s.createReview(posID)

	// Отзыв второго автора на ту же точку остаётся неодобренным
	s.currentUserID = "second-author-" + primitive.NewObjectID().Hex()
	s.createReview(posID)

	for i := 0; i < testMinApprovals; i++ {
		s.currentUserID = "approver-" + primitive.NewObjectID().Hex()
		req, _ := http.NewRequest(http.MethodPost, "/reviews/"+created.ID.Hex()+"/approve", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Require().Equal(http.StatusOK, w.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/reviews/pos/"+posID+"?approved=true", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)

	var approvedList entity.ReviewListResponse
	json.Unmarshal(w.Body.Bytes(), &approvedList)
	s.Equal(1, approvedList.Total)
	s.Equal(created.ID, approvedList.Reviews[0].ID)

	req, _ = http.NewRequest(http.MethodGet, "/reviews/pos/"+posID+"?approved=false", nil)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)

	var pendingList entity.ReviewListResponse
	json.Unmarshal(w.Body.Bytes(), &pendingList)
	s.Equal(1, pendingList.Total)
	s.False(pendingList.Reviews[0].Approved)
}

func (s *ReviewsIntegrationTestSuite) TestGetReview_NotFound() {
	req, _ := http.NewRequest(http.MethodGet, "/reviews/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReviewsIntegrationTestSuite) TestHealthCheck() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
