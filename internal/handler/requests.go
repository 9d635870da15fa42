package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	invalidBodyMessage  = "invalid request body"
	invalidDateMessage  = "date must look like 2006-01-02"
	invalidIndexMessage = "index must be a number"
	noSessionMessage    = "no active session"
)

var validate = validator.New()

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type expenseRequest struct {
	Date        string  `json:"date" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type incomeRequest struct {
	Date      string  `json:"date" validate:"required"`
	Source    string  `json:"source" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Frequency string  `json:"frequency"`
}

type profileRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Language string `json:"language"`
}

type goalRequest struct {
	Name     string  `json:"name" validate:"required"`
	Target   float64 `json:"target" validate:"required,gt=0"`
	Current  float64 `json:"current" validate:"gte=0"`
	Deadline string  `json:"deadline" validate:"required"`
}

func validateRequest(req any) []ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var res []ValidationError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		res = append(res, ValidationError{
			Field:   fieldErr.Field(),
			Message: errorMsg(fieldErr),
		})
	}
	return res
}

func errorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + err.Param()
	case "gte":
		return "must be at least " + err.Param()
	}
	return "invalid value"
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondValidation(c *gin.Context, errs []ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
}
