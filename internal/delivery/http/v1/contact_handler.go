package v1

import (
	"errors"
	"net/http"
	"strings"

	"go-remodeling-backend/internal/delivery/http/response"
	"go-remodeling-backend/internal/domain"
	"go-remodeling-backend/internal/usecase"
	"go-remodeling-backend/pkg/apperror"
	"go-remodeling-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Quote Request
// @Description  Submit the contact form for a free remodeling quote. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.Submission  true  "Quote Request Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if ct := c.ContentType(); !strings.HasPrefix(ct, "application/json") {
		c.Error(apperror.BadRequest("Content-Type must be application/json"))
		return
	}

	var req domain.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			// Schema violations: report every violated field at once
			c.Error(apperror.Validation(validation.FormatFieldErrors(fieldErrs)))
			return
		}
		// Malformed body (invalid JSON, wrong types)
		c.Error(apperror.BadRequest("Request body is not valid JSON"))
		return
	}

	if err := h.contactUC.SubmitLead(c.Request.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrMailerUnavailable) {
			c.Error(apperror.New(http.StatusServiceUnavailable, "Contact service temporarily unavailable", err))
			return
		}
		// SECURITY: transport details stay server-side; the caller only
		// learns the submission was not delivered and may retry.
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send your request. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your request has been sent successfully!", nil)
}
