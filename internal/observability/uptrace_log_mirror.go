package observability

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/matchodds/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const (
	uptraceLogInstrumentation = "matchodds/internal/platform/logging"
	maxLogValueDepth          = 3
	maxMirroredPreview        = 512
)

// quietPaths are polled by probes and metric scrapers.
var quietPaths = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// quietEvents fire once per browser tab or chrome devtools message.
var quietEvents = map[string]struct{}{
	"chrome log":            {},
	"browser page acquired": {},
}

func newUptraceLogMirror(serviceVersion string) logging.MirrorFunc {
	otelLogger := otelglobal.Logger(
		uptraceLogInstrumentation,
		otellog.WithInstrumentationVersion(serviceVersion),
	)

	return func(ctx context.Context, level logging.Level, msg string, args ...any) {
		if shouldSkipUptraceLog(msg, args) {
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}

		severity := toOTelSeverity(level)
		if !otelLogger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
			return
		}

		now := time.Now().UTC()
		var record otellog.Record
		record.SetTimestamp(now)
		record.SetObservedTimestamp(now)
		record.SetSeverity(severity)
		record.SetSeverityText(strings.ToUpper(level.String()))
		record.SetEventName(msg)
		record.SetBody(otellog.StringValue(msg))
		if attrs := buildOTelLogAttributes(args); len(attrs) > 0 {
			record.AddAttributes(attrs...)
		}
		otelLogger.Emit(ctx, record)
	}
}

func shouldSkipUptraceLog(msg string, args []any) bool {
	if _, quiet := quietEvents[msg]; quiet {
		return true
	}
	if msg != "http_request" {
		return false
	}
	path, ok := stringArg(args, "http_path")
	if !ok {
		return false
	}
	_, quiet := quietPaths[path]
	return quiet
}

func stringArg(args []any, key string) (string, bool) {
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok && k == key {
			v, ok := args[i+1].(string)
			return v, ok
		}
	}
	return "", false
}

func buildOTelLogAttributes(args []any) []otellog.KeyValue {
	if len(args) == 0 {
		return nil
	}

	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprintf("arg_%d", i/2)
		if k, ok := args[i].(string); ok && strings.TrimSpace(k) != "" {
			key = k
		}
		if i+1 >= len(args) {
			attrs = append(attrs, otellog.Empty(key))
			continue
		}
		value := args[i+1]
		if key == "preview" {
			if s, ok := value.(string); ok {
				value = truncateRunes(s, maxMirroredPreview)
			}
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: toOTelLogValue(value, 0)})
	}
	return attrs
}

// truncateRunes cuts page previews down before they leave the process.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

func toOTelSeverity(level zapcore.Level) otellog.Severity {
	switch {
	case level <= zapcore.DebugLevel:
		return otellog.SeverityDebug
	case level == zapcore.InfoLevel:
		return otellog.SeverityInfo
	case level == zapcore.WarnLevel:
		return otellog.SeverityWarn
	case level >= zapcore.DPanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityError
	}
}

func toOTelLogValue(value any, depth int) otellog.Value {
	if value == nil {
		return otellog.Value{}
	}
	if depth >= maxLogValueDepth {
		return otellog.StringValue(fmt.Sprint(value))
	}

	switch v := value.(type) {
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case []byte:
		return otellog.BytesValue(append([]byte(nil), v...))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.CanInt():
		return otellog.Int64Value(rv.Int())
	case rv.CanUint():
		if u := rv.Uint(); u <= 1<<63-1 {
			return otellog.Int64Value(int64(u))
		}
		return otellog.StringValue(fmt.Sprint(value))
	case rv.CanFloat():
		return otellog.Float64Value(rv.Float())
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return toOTelLogValue(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		items := make([]otellog.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, toOTelLogValue(rv.Index(i).Interface(), depth+1))
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return otellog.StringValue(fmt.Sprint(value))
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		kvs := make([]otellog.KeyValue, 0, len(keys))
		for _, key := range keys {
			kvs = append(kvs, otellog.KeyValue{
				Key:   key.String(),
				Value: toOTelLogValue(rv.MapIndex(key).Interface(), depth+1),
			})
		}
		return otellog.MapValue(kvs...)
	default:
		return otellog.StringValue(fmt.Sprint(value))
	}
}
