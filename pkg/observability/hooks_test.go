package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Conversion hooks
	p := NoopConversionHooks{}
	p.OnParseStart(ctx, "go.obo")
	p.OnParseComplete(ctx, "go.obo", 100, time.Second, nil)
	p.OnTranslateStart(ctx, "go")
	p.OnTranslateComplete(ctx, "go", 1000, 2, time.Second, nil)
	p.OnSerializeComplete(ctx, "ofn", 4096, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "conversion")
	c.OnCacheMiss(ctx, "hierarchy")
	c.OnCacheSet(ctx, "conversion", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/convert")
	h.OnResponse(ctx, "POST", "/v1/convert", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Conversion() should return NoopConversionHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customConversion := &testConversionHooks{}
	SetConversionHooks(customConversion)
	if Conversion() != customConversion {
		t.Error("SetConversionHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Reset() should restore NoopConversionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConversionHooks{}
	SetConversionHooks(custom)
	SetConversionHooks(nil)

	if Conversion() != custom {
		t.Error("SetConversionHooks(nil) should be ignored")
	}

	Reset()
}

type testConversionHooks struct{ NoopConversionHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
