package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/epmviz/backend/internal/pkg/apperr"
	"github.com/epmviz/backend/internal/util"
)

var (
	Validate = util.NewValidator()

	translator ut.Translator
)

func init() {
	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	custom := map[string]string{
		"finite":               "{0} must be a finite number",
		"viewer":               "{0} must be 1 to 64 letters, digits, '_' or '-'",
		"caseinsensitiveoneof": "{0} must be one of [{1}]",
	}
	for tag, text := range custom {
		tag, text := tag, text
		err := Validate.RegisterTranslation(tag, translator, func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field(), fe.Param())
			return t
		})
		if err != nil {
			log.Warn().Err(err).Str("tag", tag).Msg("could not register translation for custom tag")
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// Translate turns a validator error into ErrorResponses. Errors that are not
// validation errors yield a single response without a field.
func Translate(err error) []*ErrorResponse {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []*ErrorResponse{{Violation: "invalid", Message: err.Error()}}
	}

	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}
	return trans
}

// ValidQuery parses the query string into dest and validates it. dest shall
// always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(dest)
}

// ValidBody is ValidQuery for request bodies.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(dest)
}

func ValidStruct(dest any) error {
	if err := Validate.Struct(dest); err != nil {
		return apperr.NewInvalidViolations(Translate(err))
	}

	return nil
}

func ValidVar(field any, tag string) error {
	if err := Validate.Var(field, tag); err != nil {
		return apperr.NewInvalidViolations(Translate(err))
	}

	return nil
}
