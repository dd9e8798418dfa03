package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation は PostgreSQL の unique_violation (23505)
const uniqueViolation = pq.ErrorCode("23505")

// isUniqueViolation は一意制約違反かどうかを返す
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
