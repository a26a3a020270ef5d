package usecase

import (
	"strings"

	"smart-todo-backend/internal/model"
)

// cacheKey normalizes the input so identical requests hit the same entry
// regardless of case and surrounding whitespace.
func cacheKey(feature model.Feature, text string) string {
	return string(feature) + "|" + strings.ToLower(strings.TrimSpace(text))
}

func (uc implUseCase) cacheGet(feature model.Feature, text string) (model.ParsedTask, bool) {
	parsed, ok := uc.cache.Get(cacheKey(feature, text))
	if !ok {
		return model.ParsedTask{}, false
	}
	parsed.Cached = true
	return parsed, true
}

func (uc implUseCase) cachePut(feature model.Feature, text string, parsed model.ParsedTask) {
	parsed.Cached = false
	uc.cache.Add(cacheKey(feature, text), parsed)
}
