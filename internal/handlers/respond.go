package handlers

import (
	"kasir-pos/internal/respond"

	"github.com/gin-gonic/gin"
)

// Local aliases keep handler code short; the enumeration itself lives in
// the respond package shared with the middleware.
const (
	KindValidation   = respond.KindValidation
	KindNotFound     = respond.KindNotFound
	KindBusinessRule = respond.KindBusinessRule
	KindAuth         = respond.KindAuth
	KindInternal     = respond.KindInternal
)

func fail(c *gin.Context, status int, kind, message string) {
	respond.Fail(c, status, kind, message)
}
