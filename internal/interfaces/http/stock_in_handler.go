package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/ledger"
)

// StockInHandler maneja entradas de stock y el mantenimiento de posiciones.
type StockInHandler struct {
	uc *ledger.LedgerUseCase
}

// NewStockInHandler construye el handler.
func NewStockInHandler(uc *ledger.LedgerUseCase) *StockInHandler {
	return &StockInHandler{uc: uc}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Description  Crea la posición del producto o suma a la existente (costo base según la política configurada).
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, product_quantity, price_per_unit, total_price (opcional), date (opcional)"
// @Success      201   {object}  dto.StockPositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockInHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StockIn(c.UserContext(), PrincipalFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar posiciones de stock
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "límite (máx 100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.StockPositionListResponse
// @Router       /api/stock/in [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	page, err := pageFrom(c)
	if err != nil {
		return badQuery(c)
	}
	out, err := h.uc.ListPositions(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener posición de stock
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la posición"
// @Success      200  {object}  dto.StockPositionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/in/{id} [get]
func (h *StockInHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPosition(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir posición de stock
// @Description  Cantidad 0 elimina la posición. No agrega movimientos al historial.
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la posición"
// @Param        body  body  dto.UpdateStockRequest  true  "campos a corregir"
// @Success      200   {object}  dto.StockPositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/in/{id} [patch]
func (h *StockInHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePosition(c.UserContext(), PrincipalFrom(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar posición de stock
// @Tags         stock-in
// @Security     Bearer
// @Param        id   path  string  true  "ID de la posición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/in/{id} [delete]
func (h *StockInHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeletePosition(c.UserContext(), PrincipalFrom(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
