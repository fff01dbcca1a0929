package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"dressapi/dbhelper"
	"dressapi/models"
	"dressapi/services"
	"dressapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGarmentsAll(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	seeded := test.SeededGarments(db)

	req := httptest.NewRequest("GET", "/garments", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.GarmentListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	// no filter returns the whole catalog in stored order
	require.Len(t, response.Garments, len(seeded))
	for i, garment := range seeded {
		assert.Equal(t, garment.Name, response.Garments[i].Name)
	}
}

func TestListGarmentsByCategoryAndOccasion(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := httptest.NewRequest("GET", "/garments?category=Sherwani&occasion=Wedding", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.GarmentListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Garments, 1)
	assert.Equal(t, "Wedding Sherwani", response.Garments[0].Name)
	assert.Equal(t, "Sherwani", response.Garments[0].Category)
	assert.Equal(t, "Wedding", response.Garments[0].Occasion)
}

func TestListGarmentsEveryCategoryOccasionPair(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	seeded := test.SeededGarments(db)

	expected := map[[2]string]int{}
	for _, garment := range seeded {
		expected[[2]string{garment.Category, garment.Occasion}]++
	}

	for pair, count := range expected {
		req := httptest.NewRequest("GET", "/garments?category="+url.QueryEscape(pair[0])+"&occasion="+url.QueryEscape(pair[1]), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var response models.GarmentListOut
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response.Garments, count, "pair %v", pair)
		for _, garment := range response.Garments {
			assert.Equal(t, pair[0], garment.Category)
			assert.Equal(t, pair[1], garment.Occasion)
		}
	}
}

func TestListGarmentsCategoryCaseInsensitive(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := httptest.NewRequest("GET", "/garments?category=saree", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.GarmentListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Garments)
	for _, garment := range response.Garments {
		assert.Equal(t, "Saree", garment.Category)
	}
}

func TestListGarmentsKeywordSearch(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := httptest.NewRequest("GET", "/garments?q=dhoti", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.GarmentListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	// matches the two dhotis plus the vesti whose description mentions one
	require.Len(t, response.Garments, 3)
	assert.Equal(t, "Traditional Dhoti", response.Garments[0].Name)
	assert.Equal(t, "Silk Dhoti", response.Garments[1].Name)
	assert.Equal(t, "Traditional Vesti", response.Garments[2].Name)
}

func TestListGarmentsNoMatch(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := httptest.NewRequest("GET", "/garments?category=Vesti&occasion=Formal", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// an empty result is a 200 with an empty list, not an error
	require.Equal(t, http.StatusOK, rec.Code)
	var response models.GarmentListOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.Garments)
}

func TestListCategories(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := httptest.NewRequest("GET", "/garments/categories", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.CategoriesOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Categories, 9)
	assert.Contains(t, response.Categories, "Saree")
	assert.Contains(t, response.Categories, "Sherwani")
	assert.Contains(t, response.Categories, "Salwar Kameez")
}
