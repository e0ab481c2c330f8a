package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management/middlewares"
	"cafe-management/models"
	"cafe-management/utils"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// AddToCart handles POST /user/add_to_cart. A sold-out menu is rejected
// without touching the cart; an entry matching the same
// (menu, temperature, special request) merges by quantity.
func (cc *CartController) AddToCart(c *gin.Context) {
	menuID, err := strconv.Atoi(c.PostForm("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return
	}
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid quantity"))
		return
	}
	temperature := c.DefaultPostForm("temperature", models.TempIce)
	specialRequest := c.PostForm("special_request")

	var menu models.Menu
	if err := cc.DB.First(&menu, menuID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}
	if menu.IsSoldOut {
		utils.RespondError(c, http.StatusBadRequest, ErrMenuSoldOut)
		return
	}

	sess := middlewares.GetSession(c)
	sess.Cart = sess.Cart.Add(menu, quantity, temperature, specialRequest)

	utils.RespondJSON(c, http.StatusOK, menu.Name+" added to cart", gin.H{
		"cart":       sess.Cart,
		"cart_count": len(sess.Cart),
	})
}

// ViewCart handles GET /user/view_cart.
func (cc *CartController) ViewCart(c *gin.Context) {
	sess := middlewares.GetSession(c)
	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"cart":         sess.Cart,
		"total_amount": sess.Cart.Total(),
	})
}

// UpdateCart handles POST /user/update_cart with action=remove|update.
// Entries are addressed by position, so callers must re-fetch the cart
// after every mutation.
func (cc *CartController) UpdateCart(c *gin.Context) {
	index, err := strconv.Atoi(c.PostForm("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid index"))
		return
	}

	sess := middlewares.GetSession(c)
	var ok bool

	switch action := c.PostForm("action"); action {
	case "remove":
		sess.Cart, ok = sess.Cart.Remove(index)
	case "update":
		quantity, qerr := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if qerr != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid quantity"))
			return
		}
		sess.Cart, ok = sess.Cart.UpdateQuantity(index, quantity)
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("action must be remove or update"))
		return
	}

	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart index out of range"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", gin.H{
		"cart":         sess.Cart,
		"total_amount": sess.Cart.Total(),
	})
}

// ClearCart handles POST /user/clear_cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	sess := middlewares.GetSession(c)
	sess.Cart = nil
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", gin.H{"cart": sess.Cart})
}
