package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"todo_tracker/internal/middleware"
	"todo_tracker/internal/model"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	detailAuthFailed  = "Authentication Failed !"
	detailTodoMissing = "todo not found"
)

// respondError maps service errors to a status and a {"detail": ...} body.
// Anything unclassified becomes a logged 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": detailTodoMissing})
	case errors.Is(err, service.ErrNotAdmin):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": detailAuthFailed})
	case errors.Is(err, service.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect password"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"detail": service.ErrUserAlreadyExists.Error()})
	default:
		logger.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": internalDetail(err)})
	}
}

func internalDetail(err error) string {
	return fmt.Sprintf("An exception of type %T occurred. Details: %s", rootCause(err), err)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// validationIssue mirrors one entry of a 422 detail list
type validationIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

func respondValidation(c *gin.Context, location string, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]validationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, validationIssue{
				Loc:  []any{location, fe.Field()},
				Msg:  validationMessage(fe),
				Type: fe.Tag(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": issues})
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	msg := "Invalid request"
	switch {
	case errors.As(err, &typeErr):
		msg = fmt.Sprintf("Input should be of type %s", typeErr.Type)
	case errors.As(err, &syntaxErr):
		msg = "JSON decode error"
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []validationIssue{{
		Loc:  []any{location},
		Msg:  msg,
		Type: "invalid",
	}}})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String should have at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String should have at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Input should be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// bindJSON decodes and validates the body, writing a 422 on failure
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondValidation(c, "body", err)
		return false
	}
	return true
}

// pathID parses a positive integer path parameter, writing a 422 otherwise
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []validationIssue{{
			Loc:  []any{"path", name},
			Msg:  "Input should be greater than 0",
			Type: "greater_than",
		}}})
		return 0, false
	}
	return id, true
}

// identity returns the caller set by the JWT middleware
func identity(c *gin.Context) (model.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication failed"})
	}
	return id, ok
}

// useTagNames makes validation errors report json (or form) names instead
// of Go field names.
func useTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}
