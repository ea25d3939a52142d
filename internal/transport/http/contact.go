package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/storage"
	"sundar_marbles/internal/transport/http/dto"
	"sundar_marbles/internal/transport/http/dto/request"
	"sundar_marbles/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SubmitContactMessage accepts a visitor enquiry and queues the
// operator notification.
func (r *Routers) SubmitContactMessage(c echo.Context) error {
	var req request.ContactMessageRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	msg, err := r.ContactService.SubmitMessage(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status:  "success",
		Message: "Your message has been sent successfully!",
		Data:    msg,
	})
}

// GetContactInfo returns the active company contact records.
func (r *Routers) GetContactInfo(c echo.Context) error {
	info, err := r.ContactService.ListContactInfo(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(info))
}

// SubscribeNewsletter subscribes (or re-activates) an email address.
func (r *Routers) SubscribeNewsletter(c echo.Context) error {
	var req request.NewsletterSubscribeRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	sub, err := r.NewsletterService.Subscribe(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status:  "success",
		Message: "Successfully subscribed to newsletter!",
		Data:    sub,
	})
}

// UnsubscribeNewsletter deactivates a subscription. Unknown addresses
// are acknowledged the same way so the endpoint does not leak who is
// subscribed.
func (r *Routers) UnsubscribeNewsletter(c echo.Context) error {
	var req request.NewsletterUnsubscribeRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	if err := r.NewsletterService.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "You have been unsubscribed.",
	})
}

// ListContactMessages is the staff inbox with optional status filter.
func (r *Routers) ListContactMessages(c echo.Context) error {
	statusFilter := c.QueryParam("status")
	page, perPage := paginationParams(c)

	messages, total, err := r.ContactService.ListMessages(c.Request().Context(), statusFilter, page, perPage)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidStatusFilter) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "status must be one of new, read, replied, closed"))
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewListResponse(messages, total, page, perPage)))
}

// GenerateWhatsAppLink builds the wa.me hand-off URL for a message and
// records that the hand-off happened.
func (r *Routers) GenerateWhatsAppLink(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	link, err := r.ContactService.GenerateWhatsAppLink(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrMessageNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "WhatsApp URL generated successfully",
		Data:    map[string]string{"whatsapp_url": link},
	})
}

// MarkMessageRead transitions a new message to read. Repeated calls
// keep the original read timestamp.
func (r *Routers) MarkMessageRead(c echo.Context) error {
	return r.transitionMessage(c, r.ContactService.MarkAsRead, "Message marked as read")
}

// MarkMessageReplied records that staff answered the enquiry.
func (r *Routers) MarkMessageReplied(c echo.Context) error {
	return r.transitionMessage(c, r.ContactService.MarkAsReplied, "Message marked as replied")
}

// MarkMessageClosed archives a finished conversation.
func (r *Routers) MarkMessageClosed(c echo.Context) error {
	return r.transitionMessage(c, r.ContactService.MarkAsClosed, "Message closed")
}

// UpdateMessageModeration edits priority and admin notes.
func (r *Routers) UpdateMessageModeration(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req request.ModerationUpdateRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	msg, err := r.ContactService.UpdateModeration(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrMessageNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(msg))
}

func (r *Routers) transitionMessage(
	c echo.Context,
	transition func(ctx context.Context, id uuid.UUID) (models.ContactMessage, error),
	message string,
) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	msg, err := transition(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrMessageNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: message,
		Data:    msg,
	})
}

func paginationParams(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	return page, perPage
}
