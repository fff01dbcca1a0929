package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dressapi/dbhelper"
	"dressapi/models"
	"dressapi/services"
	"dressapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := test.NewJSONRequest("POST", "/admin/login", models.AdminLoginIn{Password: "test-admin-password"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.AdminLoginOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)

	// the issued token works against the protected surface
	garment := test.SeededGarments(db)[0]
	patch := test.NewJSONRequest("PATCH", fmt.Sprintf("/admin/garments/%d", garment.ID), models.GarmentUpdateIn{Price: Float64Pointer(10)})
	patch.Header.Set("Authorization", "Bearer "+response.AccessToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, patch)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := test.NewJSONRequest("POST", "/admin/login", models.AdminLoginIn{Password: "guess"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateGarmentOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	garment := test.SeededGarments(db)[0]

	reqBody := models.GarmentUpdateIn{
		Price:     Float64Pointer(179.99),
		Available: BoolPointer(false),
	}
	req := test.NewJSONAdminRequest("PATCH", fmt.Sprintf("/admin/garments/%d", garment.ID), reqBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Garment
	require.NoError(t, db.First(&updated, garment.ID).Error)
	assert.Equal(t, 179.99, updated.Price)
	assert.False(t, updated.Available)
	assert.Equal(t, garment.Name, updated.Name)
}

func TestUpdateGarmentNormalizesCategory(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	garment := test.SeededGarments(db)[0]

	req := test.NewJSONAdminRequest("PATCH", fmt.Sprintf("/admin/garments/%d", garment.ID), models.GarmentUpdateIn{
		Category: StrPointer("sherwani"),
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Garment
	require.NoError(t, db.First(&updated, garment.ID).Error)
	assert.Equal(t, "Sherwani", updated.Category)
}

func TestUpdateGarmentUnauthorized(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	garment := test.SeededGarments(db)[0]

	req := test.NewJSONRequest("PATCH", fmt.Sprintf("/admin/garments/%d", garment.ID), models.GarmentUpdateIn{Price: Float64Pointer(10)})
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateGarmentWrongSubject(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	garment := test.SeededGarments(db)[0]

	req := test.NewJSONRequest("PATCH", fmt.Sprintf("/admin/garments/%d", garment.ID), models.GarmentUpdateIn{Price: Float64Pointer(10)})
	req.Header.Set("Authorization", "Bearer "+test.GenerateTokenForSubject("visitor"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateGarmentNotFound(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)

	req := test.NewJSONAdminRequest("PATCH", "/admin/garments/999999", models.GarmentUpdateIn{Price: Float64Pointer(10)})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateGarmentInvalidInput(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AssistantMock{}, services.NewSessionStore(), test.NewReplyCacheMock(), nil)
	garment := test.SeededGarments(db)[0]

	req := test.NewJSONAdminRequest("PATCH", fmt.Sprintf("/admin/garments/%d", garment.ID), models.GarmentUpdateIn{
		Gender: StrPointer("Other"),
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
