package serdefmt

import "go.uber.org/zap"

// ZapField returns a zap field that renders v as compact debug text when the
// entry is encoded.
func ZapField(key string, v any) zap.Field {
	return zap.Stringer(key, ToDebug(v))
}
