package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/fiorella-shop/fiorella-api/cache"
	"github.com/fiorella-shop/fiorella-api/models"
	"github.com/fiorella-shop/fiorella-api/services"
	"github.com/fiorella-shop/fiorella-api/utils"
	"github.com/gin-gonic/gin"
)

const productListPath = "/admin/products"

// ProductProvider is the slice of the product service the controller uses.
type ProductProvider interface {
	GetAll() ([]models.Product, error)
	GetPage(page int) ([]models.Product, error)
	Count() (int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(product *models.Product) error
}

// CategoryProvider supplies the selectable category list for forms.
type CategoryProvider interface {
	GetSelectable() ([]models.CategoryOption, error)
}

type ProductController struct {
	products   ProductProvider
	categories CategoryProvider
	storage    *utils.FileStorage
	cache      *cache.ProductCache
}

func NewProductController(products ProductProvider, categories CategoryProvider, storage *utils.FileStorage, productCache *cache.ProductCache) *ProductController {
	return &ProductController{
		products:   products,
		categories: categories,
		storage:    storage,
		cache:      productCache,
	}
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// respondWithFormErrors re-renders a form submission: field errors plus the
// repopulated category list.
func (pc *ProductController) respondWithFormErrors(ctx *gin.Context, fieldErrors gin.H) {
	categories, err := pc.categories.GetSelectable()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
		return
	}
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors":     fieldErrors,
		"categories": categories,
	})
}

func parseProductID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ListProducts renders one listing page of product summaries with paging
// metadata. A page past the last one yields an empty list, not an error.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("products:page:%d", page)
	if payload, ok := pc.cache.Get(ctx.Request.Context(), cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	products, err := pc.products.GetPage(page)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	summaries, err := services.MapToSummaries(products)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to map products", err)
		return
	}

	count, err := pc.products.Count()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to count products", err)
		return
	}

	response := gin.H{
		"products": summaries,
		"metadata": gin.H{
			"pageCount":   services.PageCount(count),
			"currentPage": page,
		},
	}
	if payload, err := json.Marshal(response); err == nil {
		pc.cache.Set(ctx.Request.Context(), cacheKey, payload)
	}
	ctx.JSON(http.StatusOK, response)
}

// ListAllProducts renders the full, unpaginated summary list.
func (pc *ProductController) ListAllProducts(ctx *gin.Context) {
	products, err := pc.products.GetAll()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	summaries, err := services.MapToSummaries(products)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to map products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": summaries})
}

// GetProduct renders the detail projection for one product.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	cacheKey := fmt.Sprintf("products:detail:%d", id)
	if payload, ok := pc.cache.Get(ctx.Request.Context(), cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	product, err := pc.products.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	images := make([]models.ProductImageView, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, models.ProductImageView{
			Image:  img.Name,
			IsMain: img.IsMain,
		})
	}

	detail := models.ProductDetail{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category.Name,
		Images:      images,
	}
	if payload, err := json.Marshal(detail); err == nil {
		pc.cache.Set(ctx.Request.Context(), cacheKey, payload)
	}
	ctx.JSON(http.StatusOK, detail)
}

// NewProduct supplies the category list for the create form.
func (pc *ProductController) NewProduct(ctx *gin.Context) {
	categories, err := pc.categories.GetSelectable()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateProduct handles the multipart create submission. Every image is
// validated before any file touches disk; the first image in submission
// order becomes the main one.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductCreateInput
	if err := ctx.ShouldBind(&input); err != nil {
		pc.respondWithFormErrors(ctx, gin.H{"form": err.Error()})
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		pc.respondWithFormErrors(ctx, gin.H{"Images": "At least one image is required"})
		return
	}

	for _, file := range files {
		if !utils.CheckFileSize(file, utils.MaxImageSizeKB) {
			pc.respondWithFormErrors(ctx, gin.H{"Images": "Image size must be max 500 kb"})
			return
		}
		if !utils.CheckFileType(file, "image/") {
			pc.respondWithFormErrors(ctx, gin.H{"Images": "File must be only image"})
			return
		}
	}

	price, err := utils.ParsePrice(input.Price)
	if err != nil {
		pc.respondWithFormErrors(ctx, gin.H{"Price": "Price must be a valid decimal number"})
		return
	}

	names, err := pc.storage.SaveAll(files)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to save images", err)
		return
	}

	images := make([]models.ProductImage, 0, len(names))
	for i, name := range names {
		images = append(images, models.ProductImage{
			Name:   name,
			IsMain: i == 0,
		})
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		CategoryID:  input.CategoryID,
		Images:      images,
	}

	if err := pc.products.Create(&product); err != nil {
		pc.storage.RemoveAll(names)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.Redirect(http.StatusSeeOther, productListPath)
}

// EditProductForm prefills the edit form: current field values, the
// read-only image list, and the selectable categories.
func (pc *ProductController) EditProductForm(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := pc.products.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	categories, err := pc.categories.GetSelectable()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
		return
	}

	images := make([]models.ProductImageView, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, models.ProductImageView{
			Image:  img.Name,
			IsMain: img.IsMain,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"categoryId":  product.CategoryID,
		"images":      images,
		"categories":  categories,
	})
}

// UpdateProduct overwrites the four mutable fields and commits. Images are
// not part of the edit submission.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var input models.ProductEditInput
	if err := ctx.ShouldBind(&input); err != nil {
		pc.respondWithFormErrors(ctx, gin.H{"form": err.Error()})
		return
	}

	price, err := utils.ParsePrice(input.Price)
	if err != nil {
		pc.respondWithFormErrors(ctx, gin.H{"Price": "Price must be a valid decimal number"})
		return
	}

	product, err := pc.products.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = price
	product.CategoryID = input.CategoryID

	if err := pc.products.Update(product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.Redirect(http.StatusSeeOther, productListPath)
}

// DeleteProduct removes the image files from the upload root, then the
// product row; image rows cascade with it.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := pc.products.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	for _, img := range product.Images {
		if err := pc.storage.Remove(img.Name); err != nil {
			log.Printf("Error removing image file %s: %v", img.Name, err)
		}
	}

	if err := pc.products.Delete(product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.Redirect(http.StatusSeeOther, productListPath)
}
