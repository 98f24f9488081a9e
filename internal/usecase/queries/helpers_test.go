//go:build unit

package queries_test

import (
	"errors"

	"shareit/internal/infra"
)

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", errors.New("no rows in result set"), infra.KindNotFound)
}
