package controller

import (
	"fmt"

	"warehouse-chat-be/internal/dto"
	"warehouse-chat-be/internal/pkg/serverutils"
	"warehouse-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	IngestTable(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService   service.IChatService
	ingestService service.IIngestService
}

func NewChatController(chatService service.IChatService, ingestService service.IIngestService) IChatController {
	return &chatController{
		chatService:   chatService,
		ingestService: ingestService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("message", c.SendMessage)
	h.Post("ingest", c.IngestTable)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.ProcessMessage(ctx.Context(), userId, &req)

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}

func (c *chatController) IngestTable(ctx *fiber.Ctx) error {
	var req dto.IngestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	published, err := c.ingestService.IngestTable(ctx.Context(), req.Table)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse(
		fmt.Sprintf("Success ingest table, %d rows queued", published), nil))
}
