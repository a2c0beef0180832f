package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/santimarro/figuras-api/initializers"
	"github.com/santimarro/figuras-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type catalogResponse struct {
	Products []models.Product `json:"products"`
	Metadata struct {
		Total int `json:"total"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
	} `json:"metadata"`
}

func setupCatalog(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductImage{}, &models.Review{}))
	initializers.DB = db

	now := time.Now()
	products := []models.Product{
		{
			Model:       gorm.Model{CreatedAt: now.Add(-3 * time.Hour)},
			Name:        "Figura Goku",
			Description: "figura articulada de colección",
			Price:       decimal.RequireFromString("35.00"),
			Stock:       3,
			Category:    models.CategoryFigure,
		},
		{
			Model:       gorm.Model{CreatedAt: now.Add(-2 * time.Hour)},
			Name:        "Brazo de repuesto",
			Description: "repuesto compatible",
			Price:       decimal.RequireFromString("5.00"),
			Stock:       20,
			Category:    models.CategorySpare,
		},
		{
			Model:       gorm.Model{CreatedAt: now.Add(-1 * time.Hour)},
			Name:        "Figura personalizada",
			Description: "pintada a mano",
			Price:       decimal.RequireFromString("60.00"),
			Stock:       1,
			Category:    models.CategoryCustom,
		},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	server := gin.New()
	server.GET("/products", GetProducts)
	server.GET("/products/:id", GetProduct)
	return server
}

func getCatalog(t *testing.T, server *gin.Engine, path string) catalogResponse {
	t.Helper()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp catalogResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func productNames(resp catalogResponse) []string {
	names := make([]string, 0, len(resp.Products))
	for _, p := range resp.Products {
		names = append(names, p.Name)
	}
	return names
}

func TestGetProductsDefaultSortNewestFirst(t *testing.T) {
	server := setupCatalog(t)

	resp := getCatalog(t, server, "/products")
	require.Equal(t, 3, resp.Metadata.Total)
	require.Equal(t,
		[]string{"Figura personalizada", "Brazo de repuesto", "Figura Goku"},
		productNames(resp))
}

func TestGetProductsSearchMatchesNameAndDescription(t *testing.T) {
	server := setupCatalog(t)

	resp := getCatalog(t, server, "/products?q=articulada")
	require.Equal(t, []string{"Figura Goku"}, productNames(resp))

	resp = getCatalog(t, server, "/products?q=repuesto")
	require.Equal(t, []string{"Brazo de repuesto"}, productNames(resp))
}

func TestGetProductsCategoryFilter(t *testing.T) {
	server := setupCatalog(t)

	resp := getCatalog(t, server, "/products?category=spare")
	require.Equal(t, 1, resp.Metadata.Total)
	require.Equal(t, []string{"Brazo de repuesto"}, productNames(resp))
}

func TestGetProductsSortByPrice(t *testing.T) {
	server := setupCatalog(t)

	asc := getCatalog(t, server, "/products?sort=price")
	require.Equal(t,
		[]string{"Brazo de repuesto", "Figura Goku", "Figura personalizada"},
		productNames(asc))

	desc := getCatalog(t, server, "/products?sort=-price")
	require.Equal(t,
		[]string{"Figura personalizada", "Figura Goku", "Brazo de repuesto"},
		productNames(desc))
}

func TestGetProductUnknownID(t *testing.T) {
	server := setupCatalog(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/products/9999", nil)
	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
