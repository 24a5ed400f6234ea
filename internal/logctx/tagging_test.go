package logctx

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"udplog/internal/global"
)

func assertTags(t *testing.T, ctx context.Context, want []string) {
	t.Helper()
	got := GetTagList(ctx)
	if got == nil {
		got = []string{}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tags mismatch: got=%v want=%v", got, want)
	}
}

func TestCtxTags(t *testing.T) {
	base := OverwriteCtxTag(context.Background(), []string{global.NSCollector})

	tests := []struct {
		name   string
		modify func(context.Context) context.Context
		want   []string
	}{
		{
			name:   "append",
			modify: func(ctx context.Context) context.Context { return AppendCtxTag(ctx, global.NSListen) },
			want:   []string{global.NSCollector, global.NSListen},
		},
		{
			name:   "remove last",
			modify: RemoveLastCtxTag,
			want:   []string{},
		},
		{
			name: "remove past empty",
			modify: func(ctx context.Context) context.Context {
				return RemoveLastCtxTag(RemoveLastCtxTag(ctx))
			},
			want: []string{},
		},
		{
			name: "overwrite then append",
			modify: func(ctx context.Context) context.Context {
				return AppendCtxTag(OverwriteCtxTag(ctx, []string{global.NSClient}), global.NSListen)
			},
			want: []string{global.NSClient, global.NSListen},
		},
		{
			name:   "wrong type stored",
			modify: func(ctx context.Context) context.Context { return context.WithValue(ctx, global.LogTagsKey, "nope") },
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTags(t, tt.modify(base), tt.want)
			assertTags(t, base, []string{global.NSCollector}) // parent unchanged
		})
	}
}

func TestGetTagList_ReturnsCopy(t *testing.T) {
	input := []string{"a", "b"}
	ctx := OverwriteCtxTag(context.Background(), input)
	input[0] = "mutated"

	tags := GetTagList(ctx)
	tags[1] = "mutated"

	assertTags(t, ctx, []string{"a", "b"})
}

func TestCtxTags_ConcurrentBranches(t *testing.T) {
	baseCtx := OverwriteCtxTag(context.Background(), []string{"base"})

	const goroutines = 8
	results := make([][]string, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ctx := AppendCtxTag(baseCtx, fmt.Sprintf("worker-%d", id))
			ctx = AppendCtxTag(ctx, "step")
			ctx = RemoveLastCtxTag(ctx)
			results[id] = GetTagList(AppendCtxTag(ctx, "final"))
		}(i)
	}
	wg.Wait()

	assertTags(t, baseCtx, []string{"base"})
	for id, got := range results {
		want := []string{"base", fmt.Sprintf("worker-%d", id), "final"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("goroutine %d tags mismatch: got=%v want=%v", id, got, want)
		}
	}
}
