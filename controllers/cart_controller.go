package controllers

import (
	"errors"
	"strconv"

	"github.com/surajprakash3/Foodie-project/pkg/resp"
	"github.com/surajprakash3/Foodie-project/services"
	"github.com/surajprakash3/Foodie-project/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Food ID is required")
		return
	}

	cart, err := h.Svc.Add(uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			resp.NotFound(c, "Food item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/remove/:foodId
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}

	cart, err := h.Svc.Remove(uid, uint(foodID))
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, "Cart not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/clear
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Cart cleared")
}
