package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
)

// BalanceHandler maneja los cortes de caja.
type BalanceHandler struct {
	uc *usecase.BalanceUseCase
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(uc *usecase.BalanceUseCase) *BalanceHandler {
	return &BalanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar corte de caja
// @Tags         balance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBalanceRequest  true  "balance_type (opening|closing), cash_balance, momo_balance, date"
// @Success      201   {object}  dto.BalanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/balance [post]
func (h *BalanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), PrincipalFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cortes de caja
// @Tags         balance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceListResponse
// @Router       /api/balance [get]
func (h *BalanceHandler) List(c *fiber.Ctx) error {
	page, err := pageFrom(c)
	if err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener corte de caja
// @Tags         balance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del corte"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/balance/{id} [get]
func (h *BalanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
