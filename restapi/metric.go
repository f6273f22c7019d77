package restapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/dedupe"
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/prom"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// gin context key holding the verdict a handler answered with
const verdictKey = "uniquestream.verdict"

// statusWriter keeps the response code, and the body of error responses, for the access log.
type statusWriter struct {
	gin.ResponseWriter
	status  int
	errBody []byte
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	if w.status >= 400 {
		w.errBody = append(w.errBody, data...)
	}
	return n, err
}

// AccessLine is one request in the restapi access logs.
type AccessLine struct {
	Time            string          `json:"time"`
	DurationS       float64         `json:"duration_s"`
	Status          int             `json:"status"`
	Method          string          `json:"method"`
	Route           string          `json:"route"`
	Remote          string          `json:"remote"`
	UserAgent       string          `json:"user_agent"`
	BodyBytes       int64           `json:"body_bytes"`
	Verdict         string          `json:"verdict,omitempty"`
	PossiblyPresent *bool           `json:"possibly_present,omitempty"`
	Error           json.RawMessage `json:"error,omitempty"`
	ErrorInvalid    bool            `json:"error_invalid,omitempty"`
}

// recordVerdict makes the verdict visible to the metric handler wrapping this route.
func recordVerdict(c *gin.Context, v dedupe.Verdict) {
	c.Set(verdictKey, v)
}

func newAccessLine(c *gin.Context, route string, start time.Time, elapsed time.Duration, w *statusWriter) AccessLine {
	line := AccessLine{
		Time:      start.Format(time.RFC3339),
		DurationS: elapsed.Seconds(),
		Status:    w.status,
		Method:    c.Request.Method,
		Route:     route,
		Remote:    c.Request.RemoteAddr,
		UserAgent: c.Request.UserAgent(),
		BodyBytes: c.Request.ContentLength,
		Error:     w.errBody,
	}
	if raw, ok := c.Get(verdictKey); ok {
		if v, ok := raw.(dedupe.Verdict); ok {
			present := v == dedupe.PotentialDuplicate
			line.Verdict = v.String()
			line.PossiblyPresent = &present
		}
	}
	return line
}

// MetricHandler times a route, counts its response codes and verdicts, and writes an access log line.
// The route template must be supplied as gin does not expose it to handlers.
func MetricHandler(route string, fn gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &statusWriter{ResponseWriter: c.Writer, status: http.StatusOK}
		c.Writer = w

		start := time.Now()
		fn(c)
		elapsed := time.Since(start)

		prom.RestapiTimes.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())
		prom.RestapiCodes.WithLabelValues(c.Request.Method, route, strconv.Itoa(w.status)).Inc()
		line := newAccessLine(c, route, start, elapsed, w)
		if line.Verdict != "" {
			prom.RestapiVerdicts.WithLabelValues(route, line.Verdict).Inc()
		}

		raw, err := json.Marshal(line)
		if err != nil {
			st.Logger.Warn().Err(err).Str("route", route).Msg("access log error body is not json, dropping it")
			line.Error = nil
			line.ErrorInvalid = true
			raw, err = json.Marshal(line)
			if err != nil {
				st.Logger.Error().Err(err).Str("route", route).Msg("could not encode access log line")
				return
			}
		}
		if w.status < 400 {
			st.LogRestapiOk.Write(raw)
		} else {
			st.LogRestapiErr.Write(raw)
		}
	}
}
