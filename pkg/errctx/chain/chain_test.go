package chain

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/ib-77/errctx/pkg/errctx"
)

type config struct {
	Port int `json:"port"`
}

func readFile(_ context.Context, path string) ([]byte, error) {
	if path == "missing.json" {
		return nil, fs.ErrNotExist
	}
	return []byte(`{"port": 8080}`), nil
}

func parse(_ context.Context, data []byte) (config, error) {
	var c config
	err := json.Unmarshal(data, &c)
	return c, err
}

func loadConfig(ctx context.Context, path string) *Chain[config] {
	read := ThenTry(FromValue(ctx, path), readFile).
		WithDynamicContext(func() string { return "Failed to read file '" + path + "'" })
	return ThenTry(read, parse).
		WithContext("Failed to load configuration")
}

func TestChain_Success(t *testing.T) {
	t.Parallel()

	res := loadConfig(context.Background(), "config.json").Result()

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Result().Port != 8080 {
		t.Fatalf("expected port 8080, got %d", res.Result().Port)
	}
}

func TestChain_FailureCollectsContext(t *testing.T) {
	t.Parallel()

	res := loadConfig(context.Background(), "missing.json").
		WithContext("Failed to start the program").
		Result()

	want := "Failed to start the program\n" +
		"  caused by: Failed to load configuration\n" +
		"  caused by: Failed to read file 'missing.json'\n" +
		"  caused by: file does not exist"

	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if res.Err().Error() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", res.Err(), want)
	}
	if !errors.Is(res.Err(), fs.ErrNotExist) {
		t.Fatalf("expected errors.Is to reach fs.ErrNotExist")
	}
}

func TestChain_DynamicContextNotBuiltOnSuccess(t *testing.T) {
	t.Parallel()

	built := false
	res := FromValue(context.Background(), 1).
		WithDynamicContext(func() string {
			built = true
			return "unused"
		}).
		Result()

	if built || !res.IsSuccess() {
		t.Fatalf("expected untouched success; built=%v, success=%v", built, res.IsSuccess())
	}
}

func TestChain_ThenMapEnsureFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seen := 0

	c := Map(
		Then(FromValue(ctx, 2), func(ctx context.Context, v int) errctx.Result[int] { return errctx.Success(v * 3) }),
		func(ctx context.Context, v int) int { return v + 1 }).
		Ensure(func(ctx context.Context, v int) { seen = v })

	out := Finally(c,
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err error) int { return -1 })

	if out != 7 || seen != 7 {
		t.Fatalf("expected 7, got out=%d seen=%d", out, seen)
	}

	failed := Start(ctx, errctx.Err[int]("nope")).
		Ensure(func(ctx context.Context, v int) { t.Fatalf("Ensure must not run on failure") })
	out = Finally(failed,
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err error) int { return -1 })
	if out != -1 {
		t.Fatalf("expected -1 for failure, got %d", out)
	}
}

func TestChain_FailureIdSurvivesSteps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := errctx.Err[string]("origin")

	res := Map(ThenTry(Start(ctx, start), readFile).WithContext("read"), func(ctx context.Context, b []byte) int {
		return len(b)
	}).WithContext("measure").Result()

	if res.Id() != start.Id() {
		t.Fatalf("id changed across steps: %v -> %v", start.Id(), res.Id())
	}
	if res.Err().Error() != "measure\n  caused by: read\n  caused by: origin" {
		t.Fatalf("unexpected chain: %q", res.Err().Error())
	}
}
