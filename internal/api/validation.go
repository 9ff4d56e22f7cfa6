package api

import (
	"agri_commerce/internal/domain" // Error taxonomy
	"errors"                        // Error inspection
	"fmt"                           // Message formatting
	"io"                            // Empty body detection
	"reflect"                       // Struct tag lookup
	"strconv"                       // Path id parsing
	"strings"                       // String manipulation
	"sync"                          // One-time validator setup

	"github.com/gin-gonic/gin"                                       // Gin web framework
	"github.com/gin-gonic/gin/binding"                               // Gin's validator engine
	"github.com/go-playground/validator/v10"                         // Validation errors
	"github.com/go-playground/validator/v10/non-standard/validators" // notblank rule
)

var registerOnce sync.Once

// registerValidators makes field errors report JSON names and adds the notblank rule
func registerValidators() {
	registerOnce.Do(func() {
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
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

// bindJSON decodes the request body into req and runs its binding rules.
// An empty body is validated as an empty object so missing fields are listed.
func bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Message: MsgInvalidRequest} // Malformed JSON or wrong types
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	var missing []string
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	msg := MsgInvalidData
	if len(missing) == len(fields) {
		msg = fmt.Sprintf("Champs requis manquants : %s.", strings.Join(missing, ", "))
	}
	return &domain.ValidationError{Message: msg, Fields: fields}
}

// fieldMessage describes one failed rule
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Le champ %s est requis.", fe.Field())
	case "notblank":
		return fmt.Sprintf("Le champ %s ne peut pas être vide.", fe.Field())
	case "email":
		return "Adresse email invalide."
	default:
		return fmt.Sprintf("Le champ %s est invalide.", fe.Field())
	}
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, &domain.ValidationError{
			Message: MsgInvalidID,
			Fields:  []domain.FieldError{{Field: "id", Message: MsgInvalidID}},
		}
	}
	return uint(id), nil
}

// normalizeEmail lower-cases an address that already passed format validation.
// Gmail addresses also lose dots and "+tag" suffixes in the local part.
func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, host := email[:at], email[at+1:]
	if host == "gmail.com" || host == "googlemail.com" {
		if plus := strings.Index(local, "+"); plus >= 0 {
			local = local[:plus]
		}
		local = strings.ReplaceAll(local, ".", "")
		host = "gmail.com"
	}
	return local + "@" + host
}
