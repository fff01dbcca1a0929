package test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"dressapi/models"
	"dressapi/services"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateAdminToken() string {
	return GenerateTokenForSubject("admin")
}

func GenerateTokenForSubject(subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing admin token. Error %s", err)
	}
	return t
}

func NewJSONAdminRequest(method string, target string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateAdminToken()))
	return req
}

// AssistantMock answers without touching the network. ReplyCalls counts
// how many times the model path was exercised.
type AssistantMock struct {
	ReplyText     string
	ReplyErr      error
	Criteria      *models.GarmentFilter
	CriteriaErr   error
	ReplyCalls    int
	CriteriaCalls int
}

func (m *AssistantMock) Reply(ctx context.Context, history []models.ChatTurn, message string) (string, error) {
	m.ReplyCalls++
	if m.ReplyErr != nil {
		return "", m.ReplyErr
	}
	if m.ReplyText != "" {
		return m.ReplyText, nil
	}
	return "You could wear a classic silk saree.", nil
}

func (m *AssistantMock) ExtractCriteria(ctx context.Context, message string) (*models.GarmentFilter, error) {
	m.CriteriaCalls++
	if m.CriteriaErr != nil {
		return nil, m.CriteriaErr
	}
	return m.Criteria, nil
}

var _ services.AssistantProvider = (*AssistantMock)(nil)

// ReplyCacheMock is a plain map-backed stand-in for the Ristretto cache.
type ReplyCacheMock struct {
	mu      sync.Mutex
	Replies map[string]string
}

func NewReplyCacheMock() *ReplyCacheMock {
	return &ReplyCacheMock{Replies: map[string]string{}}
}

func (m *ReplyCacheMock) Get(ctx context.Context, query string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reply, ok := m.Replies[query]
	return reply, ok
}

func (m *ReplyCacheMock) Set(ctx context.Context, query string, reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Replies[query] = reply
}

var _ services.ReplyCacheProvider = (*ReplyCacheMock)(nil)

// SeededGarments returns the catalog rows SetupTestDB seeded, in stored order.
func SeededGarments(db *gorm.DB) []models.Garment {
	var garments []models.Garment
	if err := db.Order("id").Find(&garments).Error; err != nil {
		log.Fatalf("Failed to load seeded garments: %v", err)
	}
	return garments
}
