package restapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/dedupe"
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/restapi/restapi_handlers"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// largest json body accepted for a single item
const maxBodyBytes = 4 * 1024 * 1024

var errNoItem = errors.New("item not found in body")

// Items serves verdicts for json posts.
type Items struct {
	checker     *dedupe.Checker
	itemPath    string
	verdictPath string
}

type VerdictResponse struct {
	Verdict         dedupe.Verdict `json:"verdict"`
	PossiblyPresent bool           `json:"possibly_present"`
}

type AddResponse struct {
	Added bool `json:"added"`
}

func NewItems(checker *dedupe.Checker, conf *st.USRestapi) *Items {
	return &Items{checker: checker, itemPath: conf.ItemPath, verdictPath: conf.VerdictPath}
}

// readItem extracts the item string from the json body.
func (it *Items) readItem(c *gin.Context) ([]byte, string, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("could not read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, "", fmt.Errorf("body larger than %d bytes", maxBodyBytes)
	}
	if !gjson.ValidBytes(body) {
		return nil, "", errors.New("body is not valid json")
	}
	res := gjson.GetBytes(body, it.itemPath)
	if !res.Exists() {
		return nil, "", fmt.Errorf("%w: %s", errNoItem, it.itemPath)
	}
	if res.Type != gjson.String {
		return nil, "", fmt.Errorf("item at %s must be a string, got %s", it.itemPath, res.Type)
	}
	return body, res.String(), nil
}

func (it *Items) GetFilter(c *gin.Context) {
	restapi_handlers.JSON(c, http.StatusOK, it.checker.Stats())
}

func (it *Items) PostAdd(c *gin.Context) {
	_, item, err := it.readItem(c)
	if err != nil {
		restapi_handlers.JSONError(c, http.StatusBadRequest, "bad item", err)
		return
	}
	it.checker.Add(item)
	restapi_handlers.JSON(c, http.StatusOK, AddResponse{Added: true})
}

func (it *Items) PostContains(c *gin.Context) {
	_, item, err := it.readItem(c)
	if err != nil {
		restapi_handlers.JSONError(c, http.StatusBadRequest, "bad item", err)
		return
	}
	v := it.checker.Check(item)
	recordVerdict(c, v)
	restapi_handlers.JSON(c, http.StatusOK, VerdictResponse{Verdict: v, PossiblyPresent: v == dedupe.PotentialDuplicate})
}

// PostCheck records the item and echoes the posted json with the verdict set.
func (it *Items) PostCheck(c *gin.Context) {
	body, item, err := it.readItem(c)
	if err != nil {
		restapi_handlers.JSONError(c, http.StatusBadRequest, "bad item", err)
		return
	}
	v := it.checker.CheckAndSet(item)
	recordVerdict(c, v)
	out, err := sjson.SetBytes(body, it.verdictPath, v.String())
	if err != nil {
		restapi_handlers.JSONError(c, http.StatusInternalServerError, "could not set verdict", err)
		return
	}
	restapi_handlers.WriteJSON(c, http.StatusOK, out)
}
