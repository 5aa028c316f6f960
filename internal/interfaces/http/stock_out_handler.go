package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/ledger"
)

// StockOutHandler maneja salidas de stock, su mantenimiento y la consulta por fechas.
type StockOutHandler struct {
	uc *ledger.LedgerUseCase
}

// NewStockOutHandler construye el handler.
func NewStockOutHandler(uc *ledger.LedgerUseCase) *StockOutHandler {
	return &StockOutHandler{uc: uc}
}

// StockOut godoc
// @Summary      Registrar salida de stock (venta)
// @Description  Rechaza con 403 INSUFFICIENT_STOCK si la cantidad supera lo disponible.
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, product_quantity, price_per_unit (venta), total_price (opcional), date (opcional)"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/out/add [post]
func (h *StockOutHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StockOut(c.UserContext(), PrincipalFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MovementsByDate godoc
// @Summary      Movimientos por rango de fechas
// @Description  Fechas YYYY-MM-DD; vacías = hoy. 404 si no hay movimientos en el rango. Las entradas siempre se clasifican break-even.
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "fin (YYYY-MM-DD)"
// @Success      200  {object}  dto.MovementsReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/out/byDate [post]
func (h *StockOutHandler) MovementsByDate(c *fiber.Ctx) error {
	var in dto.MovementsByDateRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.MovementsByDate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MovementsReportPDF godoc
// @Summary      Reporte PDF de movimientos por fechas
// @Tags         stock-out
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  false  "inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "fin (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/out/byDate/report.pdf [get]
func (h *StockOutHandler) MovementsReportPDF(c *fiber.Ctx) error {
	var in dto.MovementsByDateRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	pdf, err := h.uc.MovementsReportPDF(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="movimientos_%s_%s.pdf"`,
		nonEmpty(in.StartDate, "hoy"), nonEmpty(in.EndDate, "hoy")))
	return c.Send(pdf)
}

// List godoc
// @Summary      Listar salidas
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "límite (máx 100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.StockOutListResponse
// @Router       /api/stock/out [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	page, err := pageFrom(c)
	if err != nil {
		return badQuery(c)
	}
	out, err := h.uc.ListStockOuts(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/out/{id} [get]
func (h *StockOutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetStockOut(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir salida
// @Description  No modifica posiciones ni historial.
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la salida"
// @Param        body  body  dto.UpdateStockRequest  true  "campos a corregir"
// @Success      200   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/out/{id} [patch]
func (h *StockOutHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStockOut(c.UserContext(), PrincipalFrom(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar salida
// @Tags         stock-out
// @Security     Bearer
// @Param        id   path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/out/{id} [delete]
func (h *StockOutHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteStockOut(c.UserContext(), PrincipalFrom(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
