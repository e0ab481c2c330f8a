package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management/models"
	"cafe-management/utils"
)

// Categories are a derived projection over Menu.Category, not rows of
// their own. A category exists exactly as long as a menu references it.
type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetCategories handles GET /admin/categories.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var categories []string
	err := cc.DB.Model(&models.Menu{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", gin.H{"categories": categories})
}

// AddCategory handles POST /admin/categories. Nothing is stored: a new
// label only becomes real once a menu uses it. The endpoint just
// validates the name the way the admin form expects.
func (cc *CategoryController) AddCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("category_name"))
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category name is required"))
		return
	}

	var count int64
	if err := cc.DB.Model(&models.Menu{}).Where("category = ?", name).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("category %q already exists", name))
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Category %q accepted", name), gin.H{"category": name})
}

// DeleteCategory handles POST /admin/categories/delete/:category and
// refuses while menus still reference the label.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	name := c.Param("category")

	var count int64
	if err := cc.DB.Model(&models.Menu{}).Where("category = ?", name).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("category %q still has %d menus; delete or move them first", name, count))
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Category %q removed", name), nil)
}
