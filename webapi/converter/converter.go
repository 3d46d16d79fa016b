package converter

import (
	"errors"

	conv "github.com/amirasaad/priceconv/pkg/converter"
	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/amirasaad/priceconv/pkg/widget"
	"github.com/amirasaad/priceconv/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for the converter widget.
func Routes(app *fiber.App, w *widget.Widget) {
	group := app.Group("/api/converter")
	group.Get("/", GetView(w))
	group.Put("/input", SetInput(w))
	group.Delete("/input", ClearInput(w))
	group.Put("/mode", SetMode(w))
	group.Post("/flip", Flip(w))
	group.Post("/refresh", Refresh(w))

	app.Get("/api/convert", Quote(w))
}

// GetView returns the current widget view.
// @Summary Get converter view
// @Description Current input, mode, direction, rate and formatted result
// @Tags converter
// @Produce json
// @Success 200 {object} common.Response{data=widget.View}
// @Router /api/converter [get]
func GetView(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Converter fetched successfully", w.View())
	}
}

// SetInput replaces the price input.
// @Summary Edit price input
// @Description Invalid or negative input converts as zero
// @Tags converter
// @Accept json
// @Produce json
// @Param request body InputRequest true "Input"
// @Success 200 {object} common.Response{data=widget.View}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/converter/input [put]
func SetInput(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[InputRequest](c)
		if input == nil {
			return err
		}
		w.SetInput(input.Value)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Input updated", w.View())
	}
}

// ClearInput empties the price input.
// @Summary Clear price input
// @Tags converter
// @Produce json
// @Success 200 {object} common.Response{data=widget.View}
// @Router /api/converter/input [delete]
func ClearInput(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w.Clear()
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Input cleared", w.View())
	}
}

// SetMode switches between total price and per-weight price.
// @Summary Set conversion mode
// @Tags converter
// @Accept json
// @Produce json
// @Param request body ModeRequest true "Mode"
// @Success 200 {object} common.Response{data=widget.View}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/converter/mode [put]
func SetMode(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ModeRequest](c)
		if input == nil {
			return err
		}
		mode, err := conv.ParseMode(input.Mode)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid mode", err)
		}
		w.SetMode(mode)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Mode updated", w.View())
	}
}

// Flip inverts the conversion direction.
// @Summary Switch direction
// @Tags converter
// @Produce json
// @Success 200 {object} common.Response{data=widget.View}
// @Router /api/converter/flip [post]
func Flip(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w.Flip()
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Direction switched", w.View())
	}
}

// Refresh starts a background fetch of the live rate.
// @Summary Refresh exchange rate
// @Description Starts a single fetch; poll the view until loading is false
// @Tags converter
// @Produce json
// @Success 202 {object} common.Response{data=widget.View}
// @Failure 409 {object} common.ProblemDetails
// @Router /api/converter/refresh [post]
func Refresh(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := w.TriggerRefresh(c.UserContext()); err != nil {
			if errors.Is(err, domain.ErrRefreshInProgress) {
				return common.ProblemDetailsJSON(c, "Refresh in progress", err, "Wait for the pending refresh to finish")
			}
			return common.ProblemDetailsJSON(c, "Failed to refresh rate", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusAccepted, "Refresh started", w.View())
	}
}

// Quote converts an amount at the current rate without changing the widget.
// @Summary Convert an amount
// @Tags converter
// @Produce json
// @Param amount query string false "Amount, invalid input converts as zero"
// @Param direction query string false "ils-cad (default) or cad-ils"
// @Param mode query string false "total (default) or weight"
// @Success 200 {object} common.Response{data=QuoteResponse}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/convert [get]
func Quote(w *widget.Widget) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query, err := common.BindQueryAndValidate[QuoteQuery](c)
		if query == nil {
			return err
		}
		dir, err := conv.ParseDirection(query.Direction)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid direction", err)
		}
		mode, err := conv.ParseMode(query.Mode)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid mode", err)
		}

		amount := conv.ParseAmount(query.Amount)
		result, rate := w.Quote(amount, dir, mode)
		_, target := w.Pair().Oriented(dir.IsReverse())
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Converted successfully", QuoteResponse{
			Amount:     amount,
			Direction:  dir.String(),
			Mode:       mode.String(),
			Rate:       rate,
			RateText:   widget.RateText(w.Pair(), dir, rate),
			Result:     result,
			ResultText: target.FormatPrice(result),
		})
	}
}
