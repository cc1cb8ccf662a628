package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"inventory-backend/internal/pricecode"
)

type alphabetRequest struct {
	Price interface{} `json:"price"`
}

type numberRequest struct {
	AlphabetPrice interface{} `json:"alphabetPrice"`
}

// POST /api/switch-to-alphabet
func SwitchToAlphabet(c *gin.Context) {
	var req alphabetRequest
	_ = c.ShouldBindJSON(&req)

	price, ok := scalarString(req.Price)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Price is required"})
		return
	}

	alphabetPrice, err := pricecode.AlphabetEncode(price)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Price must contain only digits 0-9"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alphabetPrice": alphabetPrice})
}

// POST /api/switch-to-number
func SwitchToNumber(c *gin.Context) {
	var req numberRequest
	_ = c.ShouldBindJSON(&req)

	letters, ok := scalarString(req.AlphabetPrice)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Alphabet price is required"})
		return
	}

	numberPrice, err := pricecode.NumberDecode(letters)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Alphabet price must contain only letters a-j"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"numberPrice": numberPrice})
}

// scalarString acepta texto o número JSON; vacío o ausente cuenta como faltante
func scalarString(v interface{}) (string, bool) {
	switch v.(type) {
	case nil, map[string]interface{}, []interface{}, bool:
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
