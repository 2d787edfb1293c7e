package quota

import "github.com/heartmarshall/dossier-backend/internal/domain"

func validateConsume(kind domain.QuotaKind, amount int) error {
	var errs []domain.FieldError

	if !kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be docgen or trust"})
	}
	if amount < 1 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
