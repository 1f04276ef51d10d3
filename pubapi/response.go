package pubapi

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/utils"
)

type baseResponse[T any] struct {
	Data  *T               `json:"data,omitempty"`
	Links map[string][]any `json:"links,omitempty"`
}

type baseErrorResponse struct {
	Error ErrorResponse `json:"error"`
}

type ErrorResponse struct {
	err    error `json:"-"`
	status int   `json:"-"`

	Code     string   `json:"code"`
	Messages []string `json:"messages,omitempty"`
}

func NewResponse[T any](data T) baseResponse[T] {
	return baseResponse[T]{
		Data: &data,
	}
}

func (resp baseResponse[T]) WithLink(kind string, value any) baseResponse[T] {
	if resp.Links == nil {
		resp.Links = make(map[string][]any)
	}
	resp.Links[kind] = append(resp.Links[kind], value)

	return resp
}

func NewErrorResponse() baseErrorResponse {
	return baseErrorResponse{
		Error: ErrorResponse{
			Code:   ErrInternalServerError.Error(),
			status: http.StatusInternalServerError,
		},
	}
}

func (resp baseErrorResponse) WithError(err error) baseErrorResponse {
	resp.Error.err = err
	resp.Error.status = http.StatusInternalServerError

	var fieldErrors models.FieldValidationError
	switch err := err.(type) { // nolint:errorlint
	case validator.ValidationErrors:
		resp.Error.status = http.StatusBadRequest
		resp.Error.Code = ErrInvalidPayload.Error()
		resp.Error.Messages = utils.Map(err, func(verr validator.FieldError) string {
			return AdaptFieldValidationError(verr)
		})

	default:
		switch {
		case errors.As(err, &fieldErrors):
			resp.Error.status = http.StatusBadRequest
			resp.Error.Code = ErrInvalidPayload.Error()
			for _, field := range fieldErrors.Fields() {
				resp.Error.Messages = append(resp.Error.Messages, "field `"+field+"` "+fieldErrors[field])
			}

		case errors.Is(err, models.NotFoundError):
			resp.Error.status = http.StatusNotFound
			resp.Error.Code = ErrNotFound.Error()

		case errors.Is(err, models.ConflictError):
			resp.Error.status = http.StatusConflict
			resp.Error.Code = ErrConflict.Error()

		case
			errors.Is(err, ErrInvalidId),
			errors.Is(err, ErrInvalidPayload),
			errors.Is(err, models.BadParameterError):

			resp.Error.status = http.StatusBadRequest
			resp.Error.Code = ErrInvalidPayload.Error()
		}
	}

	// only details are public, the error chain itself may leak internals
	if details := errors.GetAllDetails(err); len(details) > 0 {
		resp.Error.Messages = append(resp.Error.Messages, details...)
	}

	return resp
}

func (resp baseResponse[T]) Serve(c *gin.Context, statuses ...int) {
	status := http.StatusOK
	if len(statuses) > 0 {
		status = statuses[0]
	}

	c.JSON(status, resp)
}

func (resp baseErrorResponse) Serve(c *gin.Context) {
	if resp.Error.status >= http.StatusInternalServerError && resp.Error.err != nil {
		utils.LogAndReportSentryError(c.Request.Context(), resp.Error.err)
	}
	c.JSON(resp.Error.status, resp)
}
