package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"inventory-backend/internal/services"
)

const productNotFound = "Product not found"

type ProductHandler struct {
	products *services.ProductService
	log      logrus.FieldLogger
}

func NewProductHandler(products *services.ProductService, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

// POST /api/products (multipart)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	in := services.CreateProductInput{
		Name:           c.PostForm("productName"),
		PurchasePrice:  c.PostForm("purchasePrice"),
		RetailPrice:    c.PostForm("retailPrice"),
		WholesalePrice: c.PostForm("wholesalePrice"),
	}

	var image io.Reader
	if header, err := c.FormFile("productImage"); err == nil {
		file, err := header.Open()
		if err != nil {
			respondError(c, h.log, err, productNotFound, "Failed to save product")
			return
		}
		defer file.Close()
		image = file
	}

	product, err := h.products.Create(c.Request.Context(), in, image)
	if err != nil {
		respondError(c, h.log, err, productNotFound, "Failed to save product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product saved successfully",
		"product": product,
	})
}

// updateProductRequest acepta texto o número JSON en cada campo
type updateProductRequest struct {
	Name           interface{} `json:"productName"`
	PurchasePrice  interface{} `json:"purchasePrice"`
	RetailPrice    interface{} `json:"retailPrice"`
	WholesalePrice interface{} `json:"wholesalePrice"`
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
		return
	}

	// un valor no escalar queda vacío y lo rechaza la validación del servicio
	in := services.UpdateProductInput{}
	in.Name, _ = scalarString(req.Name)
	in.PurchasePrice, _ = scalarString(req.PurchasePrice)
	in.RetailPrice, _ = scalarString(req.RetailPrice)
	in.WholesalePrice, _ = scalarString(req.WholesalePrice)

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.log, err, productNotFound, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Product updated successfully",
		"updatedProduct": product,
	})
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err, productNotFound, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted successfully"})
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, productNotFound, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/search?query=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.products.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, h.log, err, productNotFound, "Failed to search products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"), baseURL(c))
	if err != nil {
		respondError(c, h.log, err, productNotFound, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}
