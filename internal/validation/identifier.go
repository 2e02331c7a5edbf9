package validation

import (
	"fmt"
	"regexp"
)

// IdentifierPattern определяет допустимый формат идентификаторов документов
// (eventId, userId, companyId, questionnaireId).
// Латинские буквы, цифры, дефис и нижнее подчеркивание; длина 1-128 символов.
// Такие значения безопасно подставлять в URL и ключи хранилища.
var IdentifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// MaxIdentifierLen максимальная длина идентификатора
const MaxIdentifierLen = 128

// ValidateIdentifier проверяет идентификатор документа.
// field используется только в тексте ошибки.
func ValidateIdentifier(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	if len(value) > MaxIdentifierLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxIdentifierLen)
	}

	if !IdentifierPattern.MatchString(value) {
		return fmt.Errorf("%s can only contain letters, numbers, '-' and '_'", field)
	}

	return nil
}
