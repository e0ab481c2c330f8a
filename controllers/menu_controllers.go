package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management/events"
	"cafe-management/models"
	"cafe-management/utils"
)

type MenuController struct {
	DB        *gorm.DB
	UploadDir string
	Hub       *events.Hub
}

func NewMenuController(db *gorm.DB, uploadDir string, hub *events.Hub) *MenuController {
	return &MenuController{DB: db, UploadDir: uploadDir, Hub: hub}
}

// listMenus returns menus for an optional category, ordered by
// display_order then id.
func (mc *MenuController) listMenus(category string) ([]models.Menu, error) {
	var menus []models.Menu
	q := mc.DB.Order("display_order, id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return menus, q.Find(&menus).Error
}

// listCategories projects the distinct category labels out of the menu
// table; there is no category entity of its own.
func (mc *MenuController) listCategories() ([]string, error) {
	var categories []string
	err := mc.DB.Model(&models.Menu{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// GetMenus handles GET /user/menu and GET /admin/menu.
func (mc *MenuController) GetMenus(c *gin.Context) {
	category := c.Query("category")

	menus, err := mc.listMenus(category)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	categories, err := mc.listCategories()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", gin.H{
		"menus":             menus,
		"categories":        categories,
		"selected_category": category,
	})
}

// GetMenuForEdit handles GET /admin/menu/edit/:menu_id and returns the
// menu plus the category list the edit form offers.
func (mc *MenuController) GetMenuForEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}
	categories, _ := mc.listCategories()

	utils.RespondJSON(c, http.StatusOK, "Menu detail", gin.H{
		"menu":       menu,
		"categories": categories,
	})
}

// AddMenuPage handles GET /admin/menu/add and returns the category list
// the add form offers.
func (mc *MenuController) AddMenuPage(c *gin.Context) {
	categories, err := mc.listCategories()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu add form", gin.H{
		"categories":          categories,
		"temperature_options": []string{models.TempHot, models.TempIce, models.TempBoth, models.TempNone},
	})
}

// menuForm reads the shared add/edit form fields. Malformed numbers abort
// the whole mutation.
func (mc *MenuController) menuForm(c *gin.Context) (name, category string, price, displayOrder int, description, tempOption string, err error) {
	name = c.PostForm("name")
	category = c.PostForm("category")
	description = c.PostForm("description")
	tempOption = c.DefaultPostForm("temperature_option", models.TempBoth)

	if name == "" || category == "" {
		return "", "", 0, 0, "", "", errors.New("name and category are required")
	}
	if !models.IsValidTemperatureOption(tempOption) {
		return "", "", 0, 0, "", "", ErrInvalidTemperature
	}

	price, err = strconv.Atoi(c.PostForm("price"))
	if err != nil || price < 0 {
		return "", "", 0, 0, "", "", errors.New("invalid price")
	}

	displayOrder, err = strconv.Atoi(c.DefaultPostForm("display_order", "9999"))
	if err != nil {
		return "", "", 0, 0, "", "", errors.New("invalid display_order")
	}
	return name, category, price, displayOrder, description, tempOption, nil
}

// saveImage stores an uploaded menu image under a timestamped sanitized
// name and returns the stored filename. A missing file is not an error.
func (mc *MenuController) saveImage(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if file.Size > utils.MaxUploadSize {
		return nil, errors.New("image exceeds the 16MB upload limit")
	}
	if !utils.AllowedImageFile(file.Filename) {
		return nil, errors.New("only png/jpg/jpeg/gif images are allowed")
	}

	if err := os.MkdirAll(mc.UploadDir, 0o755); err != nil {
		return nil, err
	}
	filename := utils.UniqueImageName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(mc.UploadDir, filename)); err != nil {
		return nil, err
	}
	return &filename, nil
}

func (mc *MenuController) removeImage(filename string) {
	path := filepath.Join(mc.UploadDir, filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Printf("failed to remove image %s: %v", path, err)
	}
}

// CreateMenu handles POST /admin/menu/add.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	name, category, price, displayOrder, description, tempOption, err := mc.menuForm(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	image, err := mc.saveImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu := models.Menu{
		Name:              name,
		Category:          category,
		Price:             price,
		Description:       description,
		Image:             image,
		TemperatureOption: tempOption,
		DisplayOrder:      displayOrder,
	}
	if err := mc.DB.Create(&menu).Error; err != nil {
		if image != nil {
			mc.removeImage(*image)
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu created: %s (%s, %d won)", menu.Name, menu.Category, menu.Price)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu handles POST /admin/menu/edit/:menu_id. Replacing the image
// deletes the previously stored file.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	name, category, price, displayOrder, description, tempOption, err := mc.menuForm(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	newImage, err := mc.saveImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if newImage != nil {
		if menu.Image != nil {
			mc.removeImage(*menu.Image)
		}
		menu.Image = newImage
	}

	menu.Name = name
	menu.Category = category
	menu.Price = price
	menu.Description = description
	menu.TemperatureOption = tempOption
	menu.DisplayOrder = displayOrder

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu handles GET /admin/menu/delete/:menu_id. The stored image
// goes first, then the row; order items keep their snapshot.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
		return
	}

	if menu.Image != nil {
		mc.removeImage(*menu.Image)
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		// historic line items lose the live reference but keep the snapshot
		if err := tx.Model(&models.OrderItem{}).
			Where("menu_id = ?", menu.ID).
			Update("menu_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&menu).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu deleted: %s (id=%d)", menu.Name, menu.ID)
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": menu.ID})
}

// ToggleSoldOut handles POST /admin/menu/toggle_soldout/:menu_id.
// Response shape matches the dashboard's AJAX contract.
func (mc *MenuController) ToggleSoldOut(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid menu id"})
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": ErrMenuNotFound.Error()})
		return
	}

	menu.IsSoldOut = !menu.IsSoldOut
	if err := mc.DB.Save(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	mc.Hub.MenuSoldOutChanged(menu.ID, menu.IsSoldOut)

	status := "판매중"
	if menu.IsSoldOut {
		status = "품절"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"status":     status,
		"is_soldout": menu.IsSoldOut,
	})
}

// UpdateMenuOrder handles POST /admin/menu/update_order. All display
// order changes apply in one transaction; unknown ids are skipped.
func (mc *MenuController) UpdateMenuOrder(c *gin.Context) {
	var body struct {
		MenuOrders []struct {
			ID    uint `json:"id"`
			Order int  `json:"order"`
		} `json:"menu_orders"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range body.MenuOrders {
			var menu models.Menu
			if err := tx.First(&menu, item.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if err := tx.Model(&menu).Update("display_order", item.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SeedMenus handles GET /init_db: inserts the standard sample menus when
// the table is still empty.
func (mc *MenuController) SeedMenus(c *gin.Context) {
	var count int64
	if err := mc.DB.Model(&models.Menu{}).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondJSON(c, http.StatusOK, "Menus already present", gin.H{"seeded": 0})
		return
	}

	samples := []models.Menu{
		{Name: "아메리카노", Category: "커피", Price: 4000, Description: "깔끔한 맛의 아메리카노", TemperatureOption: models.TempBoth, DisplayOrder: 1},
		{Name: "카페라떼", Category: "커피", Price: 4500, Description: "부드러운 우유가 들어간 라떼", TemperatureOption: models.TempBoth, DisplayOrder: 2},
		{Name: "카푸치노", Category: "커피", Price: 4500, Description: "풍부한 거품의 카푸치노", TemperatureOption: models.TempBoth, DisplayOrder: 3},
		{Name: "녹차라떼", Category: "차", Price: 4000, Description: "진한 녹차의 맛", TemperatureOption: models.TempBoth, DisplayOrder: 4},
		{Name: "치즈케이크", Category: "디저트", Price: 5000, Description: "부드러운 치즈케이크", TemperatureOption: models.TempNone, DisplayOrder: 5},
		{Name: "초콜릿 머핀", Category: "디저트", Price: 3500, Description: "달콤한 초콜릿 머핀", TemperatureOption: models.TempNone, DisplayOrder: 6},
	}
	if err := mc.DB.Create(&samples).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Seeded %d menus", len(samples)), gin.H{"seeded": len(samples)})
}
