package response

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterTagNames makes validator report fields by their json tag so
// that validation errors line up with the request payload keys.
// Call once at router setup.
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationFailed writes a 422 with per-field messages. Non-validator
// errors (malformed JSON, type mismatches) degrade to a 400.
func ValidationFailed(c *gin.Context, err error) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		BadRequest(c, "Requête invalide")
		return
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "Les données fournies sont invalides.",
		"errors":  fields,
	})
}

// FieldError writes a 422 for a single business-rule violation in the
// same shape as the validator output, so clients handle both alike.
func FieldError(c *gin.Context, field, msg string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "Les données fournies sont invalides.",
		"errors":  gin.H{field: []string{msg}},
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Le champ %s est obligatoire.", fe.Field())
	case "email":
		return fmt.Sprintf("Le champ %s doit être une adresse e-mail valide.", fe.Field())
	case "oneof":
		return fmt.Sprintf("La valeur du champ %s est invalide.", fe.Field())
	case "min":
		return fmt.Sprintf("Le champ %s doit être au moins %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Le champ %s ne doit pas dépasser %s.", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("Le champ %s doit être une date valide.", fe.Field())
	default:
		return fmt.Sprintf("Le champ %s est invalide.", fe.Field())
	}
}
