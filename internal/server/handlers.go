package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/infrastructure"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"github.com/labstack/echo/v4"
)

type PatchRequest struct {
	Order domain.Order             `json:"order"`
	Patch []map[string]interface{} `json:"patch"`
}

func handleRefresh(svc interfaces.FeeFacade) echo.HandlerFunc {
	return func(c echo.Context) error {
		var order domain.Order
		if err := c.Bind(&order); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid order payload"))
		}
		return refresh(c, svc, order)
	}
}

func handlePatch(svc interfaces.FeeFacade) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req PatchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid patch request"))
		}

		patchBytes, err := json.Marshal(req.Patch)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid patch request"))
		}
		updatedOrder, err := infrastructure.ApplyOrderPatch(req.Order, patchBytes)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, domain.ErrInvalidOrder) {
				status = http.StatusBadRequest
			}
			return c.JSON(status, errorBody(err.Error()))
		}
		return refresh(c, svc, updatedOrder)
	}
}

func refresh(c echo.Context, svc interfaces.FeeFacade, order domain.Order) error {
	result, err := svc.Refresh(c.Request().Context(), order)
	if err != nil {
		return c.JSON(refreshStatus(err), errorBody(err.Error()))
	}
	return c.JSON(http.StatusOK, result)
}

func handleListFees(loader interfaces.FeeLoader) echo.HandlerFunc {
	return func(c echo.Context) error {
		fees, err := loader.Load(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		}
		if fees == nil {
			fees = []domain.FeeRecord{}
		}
		return c.JSON(http.StatusOK, fees)
	}
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// refreshStatus blames the client only for its order. Fee problems during a refresh come
// from the server's own fee source.
func refreshStatus(err error) int {
	if errors.Is(err, domain.ErrInvalidOrder) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// adminStatus maps errors of the fee maintenance routes, where the fee is the request body.
func adminStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFee):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFeeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
