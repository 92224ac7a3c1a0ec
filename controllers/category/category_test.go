package categoryControllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Medicine{}))
	return db
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func warmCache(t *testing.T, db *gorm.DB) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/categories", nil)
	GetCategories(db)(c)
	require.Equal(t, http.StatusOK, w.Code)
	_, ok := cache.get()
	require.True(t, ok)
}

func TestCreateCategoryInvalidatesCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	cache.clear()
	warmCache(t, db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/categories", `{"name":"Vitamins"}`)
	CreateCategory(db)(c)

	require.Equal(t, http.StatusCreated, w.Code)
	_, ok := cache.get()
	assert.False(t, ok, "category creation must clear the listing cache before responding")
}

func TestUpdateCategoryInvalidatesCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	category := models.Category{Name: "Vitamins"}
	require.NoError(t, db.Create(&category).Error)
	cache.clear()
	warmCache(t, db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(category.ID), 10)}}
	c.Request = jsonRequest(http.MethodPut, "/categories/1", `{"name":"Supplements"}`)
	UpdateCategory(db)(c)

	require.Equal(t, http.StatusOK, w.Code)
	_, ok := cache.get()
	assert.False(t, ok)
}

func TestDeleteCategoryInvalidatesCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	category := models.Category{Name: "Vitamins"}
	require.NoError(t, db.Create(&category).Error)
	cache.clear()
	warmCache(t, db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(category.ID), 10)}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/categories/1", nil)
	DeleteCategory(db)(c)

	require.Equal(t, http.StatusOK, w.Code)
	_, ok := cache.get()
	assert.False(t, ok)
}

func TestDeleteMissingCategoryLeavesCacheWarm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	cache.clear()
	warmCache(t, db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/categories/999", nil)
	DeleteCategory(db)(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	_, ok := cache.get()
	assert.True(t, ok, "a rejected write must not invalidate the listing")
}
