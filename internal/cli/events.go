package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/microcharts/pkg/observability"
)

// logHooks writes pipeline, cache and HTTP events to the debug log.
type logHooks struct {
	logger *log.Logger
}

// LogEvents registers hooks that log every pipeline, cache and HTTP event
// at debug level. main enables it with --verbose.
func (c *CLI) LogEvents() {
	h := logHooks{logger: c.Logger.WithPrefix(appName + "/events")}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) done(msg string, d time.Duration, err error, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", d.Round(time.Microsecond))
	if err != nil {
		h.logger.Debug(msg+" failed", append(keyvals, "error", err)...)
		return
	}
	h.logger.Debug(msg, keyvals...)
}

func (h logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load", "source", source)
}

func (h logHooks) OnLoadComplete(_ context.Context, source string, entries int, d time.Duration, err error) {
	h.done("loaded", d, err, "source", source, "entries", entries)
}

func (h logHooks) OnLayoutStart(_ context.Context, kind string, entries int) {
	h.logger.Debug("layout", "kind", kind, "entries", entries)
}

func (h logHooks) OnLayoutComplete(_ context.Context, kind string, d time.Duration, err error) {
	h.done("laid out", d, err, "kind", kind)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("rendered", d, err, "formats", formats)
}

func (h logHooks) OnCacheHit(_ context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h logHooks) OnCacheMiss(_ context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h logHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.logger.Debug("cache set", "format", format, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, route, id string) {
	h.logger.Debug("request", "method", method, "route", route, "request_id", id)
}

func (h logHooks) OnResponse(_ context.Context, method, route, id string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "request_id", id, "status", status, "elapsed", d)
}

func (h logHooks) OnError(_ context.Context, method, route, id string, err error) {
	h.logger.Debug("request error", "method", method, "route", route, "request_id", id, "error", err)
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
	_ observability.HTTPHooks     = logHooks{}
)
