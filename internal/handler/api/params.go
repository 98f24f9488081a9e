package api

import (
	"strconv"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageFrom = "0"
	defaultPageSize = "10"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewIncorrectParameter(name, raw)
	}
	return id, nil
}

// parsePage reads the from/size query pair. Range checks happen in the
// usecase layer; only non-numeric input is rejected here.
func parsePage(c *gin.Context) (queries.Page, error) {
	rawFrom := c.DefaultQuery("from", defaultPageFrom)
	from, err := strconv.Atoi(rawFrom)
	if err != nil {
		return queries.Page{}, errs.NewIncorrectParameter("from", rawFrom)
	}

	rawSize := c.DefaultQuery("size", defaultPageSize)
	size, err := strconv.Atoi(rawSize)
	if err != nil {
		return queries.Page{}, errs.NewIncorrectParameter("size", rawSize)
	}

	return queries.Page{From: from, Size: size}, nil
}
