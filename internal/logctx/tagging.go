package logctx

import (
	"context"

	"udplog/internal/global"
)

// Returns a context whose tag list ends with newTag.
// The parent's list is copied, never mutated.
func AppendCtxTag(ctx context.Context, newTag string) (newCtx context.Context) {
	old := GetTagList(ctx)
	tags := append(append([]string(nil), old...), newTag)

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Returns a context without the last tag (copy-on-write)
func RemoveLastCtxTag(ctx context.Context) (newCtx context.Context) {
	tags := GetTagList(ctx)
	if len(tags) > 0 {
		tags = tags[:len(tags)-1]
	}

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Overwrites entire tag list with given list
func OverwriteCtxTag(ctx context.Context, newList []string) (newCtx context.Context) {
	newCtx = context.WithValue(ctx, global.LogTagsKey, append([]string(nil), newList...))
	return
}

// Extracts a copy of the tag list from context or returns empty list
func GetTagList(ctx context.Context) (tags []string) {
	stored, ok := ctx.Value(global.LogTagsKey).([]string)
	if !ok {
		tags = []string{}
		return
	}
	tags = append([]string(nil), stored...)
	return
}
