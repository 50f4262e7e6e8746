// Package foodindex is the public entry point to the multilingual food-name
// engine.
//
// An Engine owns a language registry built from configuration. It resolves
// request languages (falling back to the configured language when a code
// has no backend), produces index keys, and exposes the Chinese query-time
// helpers: expansion, autocomplete, dish-name parsing and intent detection.
//
//	cfg, _ := config.Load(".")
//	eng, err := foodindex.New(cfg)
//	keys, _ := eng.IndexKeys("zh", "红烧牛肉面")
//	variants, _ := eng.ExpandSearchQuery("土豆")
package foodindex
