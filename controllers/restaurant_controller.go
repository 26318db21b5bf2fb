package controllers

import (
	"errors"
	"strconv"

	"github.com/surajprakash3/Foodie-project/pkg/resp"
	"github.com/surajprakash3/Foodie-project/services"
	"github.com/surajprakash3/Foodie-project/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc       *services.RestaurantService
	UploadDir string
}

func NewRestaurantController(s *services.RestaurantService, uploadDir string) *RestaurantController {
	return &RestaurantController{Svc: s, UploadDir: uploadDir}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /api/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	in := services.CreateRestaurantIn{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		active := v == "true"
		in.IsActive = &active
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUploadedImage(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		in.Image = url
	}

	rest, err := h.Svc.Create(&in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired),
			errors.Is(err, services.ErrAddressMissing):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, rest)
}

// PUT /api/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var in services.UpdateRestaurantIn
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("address"); ok {
		in.Address = &v
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		active := v == "true"
		in.IsActive = &active
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUploadedImage(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		in.Image = &url
	}

	rest, err := h.Svc.Update(uint(id), &in)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /api/restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Restaurant deleted successfully")
}
