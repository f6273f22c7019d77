package restapi_handlers

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
)

// Error is the body of every non 2xx response.
type Error struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// JSONError replies to the request with the specified error message and HTTP code.
// It does not otherwise end the request; the caller should ensure no further
// writes are done to the gin context.
func JSONError(c *gin.Context, code int, title string, baseErr error) {
	if baseErr == nil {
		baseErr = errors.New("no error provided")
	}
	// print error to logs
	if code >= 500 && code <= 599 {
		// print traceback so we might be able to determine more about where specifically the error occurred
		debug.PrintStack()
		st.Logger.Err(baseErr).Int("code", code).Str("title", title).Msg("internal restapi error")
	}

	response := Error{Status: fmt.Sprint(code), Title: title, Detail: baseErr.Error()}
	out, err := json.Marshal(response)
	if err != nil {
		st.Logger.Err(err).Int("code", code).Str("title", title).Str("detail", baseErr.Error()).
			Msg("restapi failed to return json error response")
	}
	WriteJSON(c, code, out)
}

// JSON replies with obj encoded as json.
func JSON(c *gin.Context, code int, obj any) {
	out, err := json.Marshal(obj)
	if err != nil {
		JSONError(c, 500, "could not encode response", err)
		return
	}
	WriteJSON(c, code, out)
}

// WriteJSON replies with already encoded json.
func WriteJSON(c *gin.Context, code int, raw []byte) {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
	c.Writer.WriteHeader(code)
	_, err := c.Writer.Write(raw)
	c.Writer.Flush()
	if err != nil {
		st.Logger.Warn().Err(err).Msg("failed writing response")
	}
}
