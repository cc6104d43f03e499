package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
	"studioviking-backend/utils"
)

// BarController serves the bar inventory and checkout.
type BarController struct {
	Ledger *ledger.Ledger
}

// CheckoutItemInput is one requested checkout line.
type CheckoutItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=1"`
}

// CheckoutInput defines the expected JSON structure for a checkout
type CheckoutInput struct {
	Items         []CheckoutItemInput `json:"items" binding:"required,min=1"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
}

// UpdateStockInput defines the expected JSON structure for a restock
type UpdateStockInput struct {
	Stock *int `json:"stock" binding:"required,min=0"`
}

// GetProducts returns the bar inventory.
func (bc *BarController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, bc.Ledger.Products())
}

// GetSales returns the full sales history.
func (bc *BarController) GetSales(c *gin.Context) {
	c.JSON(http.StatusOK, bc.Ledger.Sales())
}

// UpdateStock overwrites a product's stock count (restock).
func (bc *BarController) UpdateStock(c *gin.Context) {
	productID := c.Param("id")

	var input UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product, err := bc.Ledger.AdjustProductStock(productID, *input.Stock)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update stock")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// Checkout builds a tab from the requested lines and registers the
// sale. Quantities are capped at the product's stock, the same rule
// the cart applies while the tab is open.
func (bc *BarController) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	method, err := models.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	products := bc.Ledger.Products()

	var cart ledger.Cart
	for _, item := range input.Items {
		var product *models.Product
		for i := range products {
			if products[i].ID == item.ProductID {
				product = &products[i]
				break
			}
		}
		if product == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Product not found: "+item.ProductID)
			return
		}
		if !cart.Add(*product) {
			utils.RespondWithError(c, http.StatusConflict, "Product out of stock: "+product.Name)
			return
		}
		if item.Quantity > 1 {
			cart.UpdateQuantity(product.ID, item.Quantity-1)
		}
	}

	sale, err := bc.Ledger.RegisterSale(cart.Items(), method)
	if err != nil {
		if errors.Is(err, ledger.ErrEmptySale) || errors.Is(err, ledger.ErrInvalidInput) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to register sale")
		}
		return
	}

	c.JSON(http.StatusCreated, sale)
}
