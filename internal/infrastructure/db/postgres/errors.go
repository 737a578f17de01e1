package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/eventhub/account-service/internal/core/domain"
)

const uniqueViolation = "23505"

// translateError maps driver errors onto domain sentinels. notFound is
// returned for sql.ErrNoRows; every other error is returned unchanged.
func translateError(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		if strings.Contains(pqErr.Constraint, "email") {
			return domain.ErrEmailTaken
		}
		return domain.ErrIdentityTaken
	}
	return err
}
