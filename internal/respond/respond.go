// Package respond holds the closed error-kind enumeration every error
// payload carries, so the dashboard can branch on kinds instead of
// string-matching messages.
package respond

import (
	"github.com/gin-gonic/gin"
)

const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindBusinessRule = "business_rule"
	KindAuth         = "auth"
	KindInternal     = "internal"
)

// Fail writes the standard error payload.
func Fail(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error": message, "kind": kind})
}
