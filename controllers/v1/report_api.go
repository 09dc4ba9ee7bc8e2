package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"personnel-backend/controllers"
	reportprovider "personnel-backend/lib/report"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app fiber.Router) {
	controller := reportApiController{}
	app.Route("reports", func(router fiber.Router) {
		router.Get("excel", controller.leaveExcel)
		router.Get("pdf", controller.todayRosterPdf)
	})
}

// @Summary Leave report
// @Tags Reports
// @Description Monthly leave workbook, one employee or the whole roster
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   employeeId	query	string	false	"report subject, whole roster when omitted"
// @Param   date	query	string	true	"month window (YYYY-MM)"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/reports/excel [get]
func (c *reportApiController) leaveExcel(ctx *fiber.Ctx) error {
	file, fileName, err := reportprovider.Instance.MonthlyLeaveExcel(ctx.Query("employeeId"), ctx.Query("date"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}

// @Summary Today's roster
// @Tags Reports
// @Description One-page document listing employees on leave today
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/reports/pdf [get]
func (c *reportApiController) todayRosterPdf(ctx *fiber.Ctx) error {
	file, fileName, err := reportprovider.Instance.TodayRosterPDF()
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(file)
}
