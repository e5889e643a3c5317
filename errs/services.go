package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Business-Rule Errors
var (
	ErrDuplicateTitle = errors.New("a blog post with this title already exists")
)

// NewDuplicateTitleError reports a title collision with an active blog post.
// Titles held only by soft-deleted posts never trigger this error.
func NewDuplicateTitleError(title string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateTitle,
		Details:    fmt.Sprintf("Title %q is already used by an active blog post", title),
		Field:      "title",
	}
}

func IsDuplicateTitle(err error) bool {
	return errors.Is(err, ErrDuplicateTitle)
}
