package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var SymbolCache = cache.New(1*time.Hour, 10*time.Minute)
var QuoteCache = cache.New(2*time.Second, 30*time.Second)
var DepthCache = cache.New(2*time.Second, 30*time.Second)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
