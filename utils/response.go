package utils

import "github.com/gofiber/fiber/v2"

// Semua endpoint membalas amplop {code, message, data} dengan HTTP 200;
// code di body yang menentukan hasil, mengikuti kontrak frontend lama.

func Success(ctx *fiber.Ctx, data interface{}) error {
	return SuccessMessage(ctx, data, "success")
}

func SuccessMessage(ctx *fiber.Ctx, data interface{}, message string) error {
	if data == nil {
		data = fiber.Map{}
	}
	return ctx.JSON(fiber.Map{
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func Error(ctx *fiber.Ctx, code int, message string) error {
	return ErrorData(ctx, code, message, nil)
}

func ErrorData(ctx *fiber.Ctx, code int, message string, data interface{}) error {
	if data == nil {
		data = fiber.Map{}
	}
	return ctx.JSON(fiber.Map{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func Paginate(ctx *fiber.Ctx, items interface{}, page, pageSize int, total int64) error {
	return Success(ctx, fiber.Map{
		"items":    items,
		"page":     page,
		"pageSize": pageSize,
		"total":    total,
	})
}
