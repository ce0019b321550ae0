package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"food-delivery-api/logger"
	"food-delivery-api/models"
	"food-delivery-api/services"
)

type OrderController struct {
	orders *services.OrderService
	log    *logger.Logger
}

func NewOrderController(orders *services.OrderService, log *logger.Logger) *OrderController {
	return &OrderController{orders: orders, log: log}
}

func (ctl *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req models.CreateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json payload"})
			return
		}

		order, err := ctl.orders.Create(ctx, &req)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		ctl.log.Info("order_created", "order "+order.ID.Hex()+" created")
		c.JSON(http.StatusCreated, gin.H{
			"order_id": order.ID.Hex(),
			"status":   order.Status,
			"total":    order.Total,
		})
	}
}

func (ctl *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := ctl.orders.List(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctl *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")

		order, err := ctl.orders.Get(ctx, orderId)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
