package controllers

import (
	"errors"
	"strconv"

	"github.com/surajprakash3/Foodie-project/pkg/resp"
	"github.com/surajprakash3/Foodie-project/services"
	"github.com/surajprakash3/Foodie-project/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc       *services.FoodService
	UploadDir string
}

func NewFoodController(s *services.FoodService, uploadDir string) *FoodController {
	return &FoodController{Svc: s, UploadDir: uploadDir}
}

// GET /api/foods?category=
func (h *FoodController) List(c *gin.Context) {
	foods, err := h.Svc.ListAvailable(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /api/foods/categories
func (h *FoodController) Categories(c *gin.Context) {
	categories, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /api/foods/:restaurantId
func (h *FoodController) ListByRestaurant(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("restaurantId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	foods, err := h.Svc.ListByRestaurant(uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, foods)
}

// POST /api/foods/create — global item, no restaurant reference
func (h *FoodController) CreateGlobal(c *gin.Context) {
	h.create(c, nil)
}

// POST /api/foods/:restaurantId
func (h *FoodController) CreateForRestaurant(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("restaurantId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	id := uint(restID)
	h.create(c, &id)
}

func (h *FoodController) create(c *gin.Context, restaurantID *uint) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		resp.BadRequest(c, "Price is required")
		return
	}

	in := services.CreateFoodIn{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
	}
	if v, ok := c.GetPostForm("rating"); ok {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid rating")
			return
		}
		in.Rating = &rating
	}
	if v, ok := c.GetPostForm("isAvailable"); ok {
		available := v == "true"
		in.IsAvailable = &available
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUploadedImage(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		in.Image = url
	}

	food, err := h.Svc.Create(restaurantID, &in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired),
			errors.Is(err, services.ErrCategoryRequired),
			errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrRestaurantNotFound):
			resp.NotFound(c, "Restaurant not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, food)
}

// PUT /api/foods/item/:id — only provided fields overwrite stored values
func (h *FoodController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}

	var in services.UpdateFoodIn
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid price")
			return
		}
		in.Price = &price
	}
	if v, ok := c.GetPostForm("category"); ok {
		in.Category = &v
	}
	if v, ok := c.GetPostForm("rating"); ok {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid rating")
			return
		}
		in.Rating = &rating
	}
	if v, ok := c.GetPostForm("isAvailable"); ok {
		available := v == "true"
		in.IsAvailable = &available
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUploadedImage(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		in.Image = &url
	}

	food, err := h.Svc.Update(uint(id), &in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			resp.NotFound(c, "Food item not found")
		case errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, food)
}

// DELETE /api/foods/item/:id
func (h *FoodController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			resp.NotFound(c, "Food item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Food item deleted successfully")
}
