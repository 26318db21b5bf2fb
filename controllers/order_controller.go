package controllers

import (
	"errors"
	"strconv"

	"github.com/surajprakash3/Foodie-project/pkg/resp"
	"github.com/surajprakash3/Foodie-project/services"
	"github.com/surajprakash3/Foodie-project/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /api/orders
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Place(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressRequired):
			resp.BadRequest(c, "Delivery address is required")
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, "Cart is empty")
		case errors.Is(err, services.ErrInvalidPaymentMethod):
			resp.BadRequest(c, "Invalid payment method")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/user
func (h *OrderController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/admin
func (h *OrderController) ListAll(c *gin.Context) {
	orders, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /api/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Invalid status value")
		return
	}

	order, err := h.Svc.UpdateStatus(uint(id), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "Invalid status value")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "Order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
