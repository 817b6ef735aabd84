package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrMissingFields  = errors.New("titulo, img y descripcion son requeridos")
	ErrPostNotFound   = errors.New("Post no encontrado")
	errUnexpectedRows = errors.New("unexpected number of rows")
)

// ValidationError is bad client input; it never reaches the store.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// respondError maps an error to its status code. Anything that is neither a validation
// nor a not-found error is logged and answered with the generic message only.
func respondError(c *gin.Context, err error, generic string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": ErrPostNotFound.Error()})
	default:
		log.Printf("%s: %v", generic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
