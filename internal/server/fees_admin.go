package server

import (
	"net/http"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/labstack/echo/v4"
)

// registerFeeAdmin mounts fee maintenance routes backed by the database.
func registerFeeAdmin(g *echo.Group, repo domain.FeeRepository) {
	g.POST("", func(c echo.Context) error {
		var fee domain.FeeRecord
		if err := c.Bind(&fee); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid fee payload"))
		}
		if err := repo.Create(c.Request().Context(), &fee); err != nil {
			return c.JSON(adminStatus(err), errorBody(err.Error()))
		}
		return c.JSON(http.StatusCreated, fee)
	})

	g.GET("/:id", func(c echo.Context) error {
		fee, err := repo.FindByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(adminStatus(err), errorBody(err.Error()))
		}
		return c.JSON(http.StatusOK, fee)
	})

	g.PUT("/:id", func(c echo.Context) error {
		var fee domain.FeeRecord
		if err := c.Bind(&fee); err != nil {
			return c.JSON(http.StatusBadRequest, errorBody("invalid fee payload"))
		}
		fee.ID = c.Param("id")
		if err := repo.Update(c.Request().Context(), &fee); err != nil {
			return c.JSON(adminStatus(err), errorBody(err.Error()))
		}
		return c.JSON(http.StatusOK, fee)
	})

	g.POST("/:id/enable", setEnabled(repo, true))
	g.POST("/:id/disable", setEnabled(repo, false))

	g.DELETE("/:id", func(c echo.Context) error {
		if err := repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(adminStatus(err), errorBody(err.Error()))
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func setEnabled(repo domain.FeeRepository, enabled bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := repo.SetEnabled(c.Request().Context(), c.Param("id"), enabled); err != nil {
			return c.JSON(adminStatus(err), errorBody(err.Error()))
		}
		return c.NoContent(http.StatusNoContent)
	}
}
