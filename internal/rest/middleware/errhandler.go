package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
)

// ErrorHandler renders the last error recorded on the context as the
// standard error envelope, with the HTTP status derived from the error's
// sentinel mark.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
	}
}
