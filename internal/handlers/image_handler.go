package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"inventory-backend/internal/middleware"
	"inventory-backend/internal/storage"
)

type ImageHandler struct {
	images *storage.ImageStore
	log    logrus.FieldLogger
}

func NewImageHandler(images *storage.ImageStore, log logrus.FieldLogger) *ImageHandler {
	return &ImageHandler{images: images, log: log}
}

// POST /api/images (multipart, campo "image")
func (h *ImageHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file is required"})
		return
	}
	defer file.Close()

	path, err := h.images.Save(c.Request.Context(), file)
	if err != nil {
		middleware.Entry(c, h.log).WithError(err).Error("failed to store image")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imagePath": path})
}

// GET /api/images/:imageId
func (h *ImageHandler) ServeImage(c *gin.Context) {
	path, err := h.images.Resolve(c.Param("imageId"))
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Image not found"})
			return
		}
		middleware.Entry(c, h.log).WithError(err).Error("failed to read image")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch image"})
		return
	}

	c.File(path)
}
