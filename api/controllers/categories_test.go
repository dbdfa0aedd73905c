package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	catalogsvc "github.com/mvillaluz/tindera-backend/internal/catalog"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

type stubCatalog struct {
	listCategoriesFn  func(ctx context.Context) ([]catalogsvc.CategoryDTO, error)
	getCategoryFn     func(ctx context.Context, id uint) (*catalogsvc.CategoryDTO, error)
	createCategoryFn  func(ctx context.Context, input catalogsvc.NameInput) (*catalogsvc.CategoryDTO, error)
	deleteCategoryFn  func(ctx context.Context, id uint) error
	menuFn            func(ctx context.Context) (*catalogsvc.MenuDTO, error)
	listSubcatsFn     func(ctx context.Context, categoryID *uint) ([]catalogsvc.SubcategoryDTO, error)
	createItemFn      func(ctx context.Context, input catalogsvc.ItemInput) (*catalogsvc.ItemDTO, error)
	createSubcatFn    func(ctx context.Context, input catalogsvc.SubcategoryInput) (*catalogsvc.SubcategoryDTO, error)
	updateCategoryFn  func(ctx context.Context, id uint, input catalogsvc.NameInput) (*catalogsvc.CategoryDTO, error)
	deleteItemFn      func(ctx context.Context, id uint) error
	getItemFn         func(ctx context.Context, id uint) (*catalogsvc.ItemDTO, error)
	listItemsFn       func(ctx context.Context) ([]catalogsvc.ItemDTO, error)
	updateItemFn      func(ctx context.Context, id uint, input catalogsvc.ItemInput) (*catalogsvc.ItemDTO, error)
	getSubcatFn       func(ctx context.Context, id uint) (*catalogsvc.SubcategoryDTO, error)
	updateSubcatFn    func(ctx context.Context, id uint, input catalogsvc.NameInput) (*catalogsvc.SubcategoryDTO, error)
	deleteSubcatFn    func(ctx context.Context, id uint) error
}

func (s *stubCatalog) ListCategories(ctx context.Context) ([]catalogsvc.CategoryDTO, error) {
	return s.listCategoriesFn(ctx)
}

func (s *stubCatalog) GetCategory(ctx context.Context, id uint) (*catalogsvc.CategoryDTO, error) {
	return s.getCategoryFn(ctx, id)
}

func (s *stubCatalog) CreateCategory(ctx context.Context, input catalogsvc.NameInput) (*catalogsvc.CategoryDTO, error) {
	return s.createCategoryFn(ctx, input)
}

func (s *stubCatalog) UpdateCategory(ctx context.Context, id uint, input catalogsvc.NameInput) (*catalogsvc.CategoryDTO, error) {
	return s.updateCategoryFn(ctx, id, input)
}

func (s *stubCatalog) DeleteCategory(ctx context.Context, id uint) error {
	return s.deleteCategoryFn(ctx, id)
}

func (s *stubCatalog) ListSubcategories(ctx context.Context, categoryID *uint) ([]catalogsvc.SubcategoryDTO, error) {
	return s.listSubcatsFn(ctx, categoryID)
}

func (s *stubCatalog) GetSubcategory(ctx context.Context, id uint) (*catalogsvc.SubcategoryDTO, error) {
	return s.getSubcatFn(ctx, id)
}

func (s *stubCatalog) CreateSubcategory(ctx context.Context, input catalogsvc.SubcategoryInput) (*catalogsvc.SubcategoryDTO, error) {
	return s.createSubcatFn(ctx, input)
}

func (s *stubCatalog) UpdateSubcategory(ctx context.Context, id uint, input catalogsvc.NameInput) (*catalogsvc.SubcategoryDTO, error) {
	return s.updateSubcatFn(ctx, id, input)
}

func (s *stubCatalog) DeleteSubcategory(ctx context.Context, id uint) error {
	return s.deleteSubcatFn(ctx, id)
}

func (s *stubCatalog) ListItems(ctx context.Context) ([]catalogsvc.ItemDTO, error) {
	return s.listItemsFn(ctx)
}

func (s *stubCatalog) GetItem(ctx context.Context, id uint) (*catalogsvc.ItemDTO, error) {
	return s.getItemFn(ctx, id)
}

func (s *stubCatalog) CreateItem(ctx context.Context, input catalogsvc.ItemInput) (*catalogsvc.ItemDTO, error) {
	return s.createItemFn(ctx, input)
}

func (s *stubCatalog) UpdateItem(ctx context.Context, id uint, input catalogsvc.ItemInput) (*catalogsvc.ItemDTO, error) {
	return s.updateItemFn(ctx, id, input)
}

func (s *stubCatalog) DeleteItem(ctx context.Context, id uint) error {
	return s.deleteItemFn(ctx, id)
}

func (s *stubCatalog) Menu(ctx context.Context) (*catalogsvc.MenuDTO, error) {
	return s.menuFn(ctx)
}

func pathRequest(method, url, param, value string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if param != "" {
		rc := chi.NewRouteContext()
		rc.URLParams.Add(param, value)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope.Error.Code
}

func TestCreateCategory(t *testing.T) {
	svc := &stubCatalog{
		createCategoryFn: func(ctx context.Context, input catalogsvc.NameInput) (*catalogsvc.CategoryDTO, error) {
			if input.Name != "Beverages" {
				t.Fatalf("unexpected name %q", input.Name)
			}
			return &catalogsvc.CategoryDTO{ID: 1, Name: input.Name}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := pathRequest(http.MethodPost, "/api/v1/categories", "", "", []byte(`{"name":"Beverages"}`))
	CreateCategory(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var envelope struct {
		Data catalogsvc.CategoryDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != 1 || envelope.Data.Name != "Beverages" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestCreateCategoryRejectsMissingName(t *testing.T) {
	svc := &stubCatalog{
		createCategoryFn: func(ctx context.Context, input catalogsvc.NameInput) (*catalogsvc.CategoryDTO, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := pathRequest(http.MethodPost, "/api/v1/categories", "", "", []byte(`{}`))
	CreateCategory(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if code := decodeError(t, rec); code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code got %q", code)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	svc := &stubCatalog{
		getCategoryFn: func(ctx context.Context, id uint) (*catalogsvc.CategoryDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		},
	}

	rec := httptest.NewRecorder()
	req := pathRequest(http.MethodGet, "/api/v1/categories/9", "categoryId", "9", nil)
	GetCategory(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestGetCategoryRejectsBadID(t *testing.T) {
	svc := &stubCatalog{
		getCategoryFn: func(ctx context.Context, id uint) (*catalogsvc.CategoryDTO, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := pathRequest(http.MethodGet, "/api/v1/categories/zero", "categoryId", "zero", nil)
	GetCategory(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListSubcategoriesPassesFilter(t *testing.T) {
	var gotFilter *uint
	svc := &stubCatalog{
		listSubcatsFn: func(ctx context.Context, categoryID *uint) ([]catalogsvc.SubcategoryDTO, error) {
			gotFilter = categoryID
			return []catalogsvc.SubcategoryDTO{}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subcategories?category_id=3", nil)
	ListSubcategories(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if gotFilter == nil || *gotFilter != 3 {
		t.Fatalf("expected filter 3, got %v", gotFilter)
	}
}

func TestMenuReturnsGroupedCatalog(t *testing.T) {
	svc := &stubCatalog{
		menuFn: func(ctx context.Context) (*catalogsvc.MenuDTO, error) {
			return &catalogsvc.MenuDTO{
				Categories: []catalogsvc.MenuCategoryDTO{{ID: 1, Name: "Snacks"}},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/menu", nil)
	Menu(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data catalogsvc.MenuDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Categories) != 1 || envelope.Data.Categories[0].Name != "Snacks" {
		t.Fatalf("unexpected menu %+v", envelope.Data)
	}
}
