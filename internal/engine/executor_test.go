package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/bianoble/file-renamer/internal/plan"
)

const testDir = "/target"

func newTestFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(testDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		// Content is the original name so moves can be traced.
		if err := afero.WriteFile(fs, filepath.Join(testDir, f), []byte(f), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func op(oldName, newName string) plan.RenameOp {
	return plan.RenameOp{
		OldPath: filepath.Join(testDir, oldName),
		NewPath: filepath.Join(testDir, newName),
		OldName: oldName,
		NewName: newName,
	}
}

// contents maps each file name in testDir to its content.
func contents(t *testing.T, fs afero.Fs) map[string]string {
	t.Helper()
	infos, err := afero.ReadDir(fs, testDir)
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string]string, len(infos))
	for _, info := range infos {
		data, err := afero.ReadFile(fs, filepath.Join(testDir, info.Name()))
		if err != nil {
			t.Fatal(err)
		}
		out[info.Name()] = string(data)
	}
	return out
}

func TestExecuteAllSucceed(t *testing.T) {
	fs := newTestFs(t, "a.txt", "b.txt")
	ex := &Executor{Fs: fs}

	result, err := ex.Execute(context.Background(), []plan.RenameOp{op("a.txt", "x_a.txt"), op("b.txt", "x_b.txt")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 2 || len(result.Errors) != 0 {
		t.Errorf("success = %d, errors = %v", result.Success, result.Errors)
	}

	want := map[string]string{"x_a.txt": "a.txt", "x_b.txt": "b.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestExecutePartialFailure(t *testing.T) {
	fs := newTestFs(t, "a.txt", "c.txt")
	ex := &Executor{Fs: fs}

	result, err := ex.Execute(context.Background(), []plan.RenameOp{
		op("a.txt", "1.txt"),
		op("missing.txt", "2.txt"),
		op("c.txt", "3.txt"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 2 {
		t.Errorf("success = %d, want 2", result.Success)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "missing.txt") || !strings.Contains(result.Errors[0], "2.txt") {
		t.Errorf("error %q should name the old and new file", result.Errors[0])
	}
	if result.Failed[0].Phase != PhaseStage {
		t.Errorf("phase = %q, want %q", result.Failed[0].Phase, PhaseStage)
	}
	if !errors.Is(result.Failed[0], os.ErrNotExist) {
		t.Errorf("failure %v should wrap os.ErrNotExist", result.Failed[0].Err)
	}

	want := map[string]string{"1.txt": "a.txt", "3.txt": "c.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestExecuteSwap(t *testing.T) {
	fs := newTestFs(t, "a.txt", "b.txt")
	ex := &Executor{Fs: fs}

	result, err := ex.Execute(context.Background(), []plan.RenameOp{op("a.txt", "b.txt"), op("b.txt", "a.txt")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 2 {
		t.Fatalf("success = %d, errors = %v", result.Success, result.Errors)
	}

	want := map[string]string{"a.txt": "b.txt", "b.txt": "a.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestExecuteChain(t *testing.T) {
	fs := newTestFs(t, "1.txt", "2.txt")
	ex := &Executor{Fs: fs}

	// 1 takes 2's name while 2 moves on to 3.
	result, err := ex.Execute(context.Background(), []plan.RenameOp{op("1.txt", "2.txt"), op("2.txt", "3.txt")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 2 {
		t.Fatalf("success = %d, errors = %v", result.Success, result.Errors)
	}

	want := map[string]string{"2.txt": "1.txt", "3.txt": "2.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestExecuteDestinationAppeared(t *testing.T) {
	fs := newTestFs(t, "a.txt", "b.txt", "late.txt")
	ex := &Executor{Fs: fs}

	result, err := ex.Execute(context.Background(), []plan.RenameOp{op("a.txt", "late.txt"), op("b.txt", "c.txt")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 1 || len(result.Errors) != 1 {
		t.Fatalf("success = %d, errors = %v", result.Success, result.Errors)
	}
	if !errors.Is(result.Failed[0], ErrDestinationExists) {
		t.Errorf("failure = %v, want ErrDestinationExists", result.Failed[0])
	}
	if result.Failed[0].Phase != PhaseFinalize {
		t.Errorf("phase = %q, want %q", result.Failed[0].Phase, PhaseFinalize)
	}

	// The blocked file is back under its old name and nothing was overwritten.
	want := map[string]string{"a.txt": "a.txt", "c.txt": "b.txt", "late.txt": "late.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestExecuteCanceled(t *testing.T) {
	fs := newTestFs(t, "a.txt", "b.txt")
	ex := &Executor{Fs: fs}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := ex.Execute(ctx, []plan.RenameOp{op("a.txt", "x.txt"), op("b.txt", "y.txt")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.Canceled {
		t.Error("result should be marked canceled")
	}
	if result.Success != 0 || len(result.Errors) != 2 {
		t.Errorf("success = %d, errors = %v", result.Success, result.Errors)
	}
	for _, f := range result.Failed {
		if f.Phase != PhaseSkipped || !errors.Is(f, context.Canceled) {
			t.Errorf("failure = %+v, want skipped with context.Canceled", f)
		}
	}

	want := map[string]string{"a.txt": "a.txt", "b.txt": "b.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestExecuteCanceledMidwayFinalizesStaged(t *testing.T) {
	fs := newTestFs(t, "a.txt", "b.txt", "c.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stat of the second source cancels the run; the first is already staged.
	ex := &Executor{Fs: &cancelOnStat{Fs: fs, trigger: filepath.Join(testDir, "b.txt"), cancel: cancel}}

	result, err := ex.Execute(ctx, []plan.RenameOp{op("a.txt", "x.txt"), op("b.txt", "y.txt"), op("c.txt", "z.txt")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.Canceled {
		t.Error("result should be marked canceled")
	}
	if result.Success != 2 {
		t.Errorf("success = %d, want 2 (errors %v)", result.Success, result.Errors)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "c.txt") {
		t.Errorf("errors = %v, want one for c.txt", result.Errors)
	}

	want := map[string]string{"x.txt": "a.txt", "y.txt": "b.txt", "c.txt": "c.txt"}
	if got := contents(t, fs); !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

type cancelOnStat struct {
	afero.Fs
	trigger string
	cancel  context.CancelFunc
}

func (c *cancelOnStat) Stat(name string) (os.FileInfo, error) {
	if name == c.trigger {
		c.cancel()
	}
	return c.Fs.Stat(name)
}

func TestExecuteProgress(t *testing.T) {
	fs := newTestFs(t, "a.txt", "b.txt")
	var calls [][2]int
	ex := &Executor{Fs: fs, Progress: func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}}

	_, err := ex.Execute(context.Background(), []plan.RenameOp{
		op("a.txt", "x.txt"),
		op("gone.txt", "y.txt"),
		op("b.txt", "z.txt"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("progress calls = %v, want %v", calls, want)
	}
}

func TestExecuteEmptyList(t *testing.T) {
	ex := &Executor{Fs: newTestFs(t)}
	result, err := ex.Execute(context.Background(), []plan.RenameOp{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 0 || len(result.Errors) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestExecuteInvalidOperations(t *testing.T) {
	tests := []struct {
		name string
		ops  []plan.RenameOp
		want string
	}{
		{name: "absent", ops: nil, want: "absent"},
		{name: "missing paths", ops: []plan.RenameOp{{OldName: "a", NewName: "b"}}, want: "required"},
		{
			name: "different directories",
			ops: []plan.RenameOp{{
				OldPath: "/target/a.txt", NewPath: "/elsewhere/a.txt",
				OldName: "a.txt", NewName: "a.txt",
			}},
			want: "different directories",
		},
		{
			name: "names disagree with paths",
			ops: []plan.RenameOp{{
				OldPath: "/target/a.txt", NewPath: "/target/b.txt",
				OldName: "a.txt", NewName: "c.txt",
			}},
			want: "do not match",
		},
		{name: "duplicate source", ops: []plan.RenameOp{op("a.txt", "b.txt"), op("a.txt", "c.txt")}, want: "again"},
		{name: "duplicate destination", ops: []plan.RenameOp{op("a.txt", "c.txt"), op("b.txt", "c.txt")}, want: "already used"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFs(t, "a.txt", "b.txt")
			ex := &Executor{Fs: fs}

			result, err := ex.Execute(context.Background(), tt.ops)
			if err == nil {
				t.Fatalf("expected error, got result %+v", result)
			}
			if !errors.Is(err, ErrInvalidOperations) {
				t.Errorf("error %v should match ErrInvalidOperations", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}

			// Nothing is touched when the list is rejected.
			names := make([]string, 0)
			for n := range contents(t, fs) {
				names = append(names, n)
			}
			sort.Strings(names)
			if !reflect.DeepEqual(names, []string{"a.txt", "b.txt"}) {
				t.Errorf("files = %v", names)
			}
		})
	}
}

func TestExecuteCaseInsensitiveDuplicates(t *testing.T) {
	ex := &Executor{Fs: newTestFs(t, "a.txt", "b.txt"), CaseInsensitive: true}
	_, err := ex.Execute(context.Background(), []plan.RenameOp{op("a.txt", "X.txt"), op("b.txt", "x.txt")})
	if !errors.Is(err, ErrInvalidOperations) {
		t.Errorf("err = %v, want ErrInvalidOperations", err)
	}
}

func TestExecuteOnDisk(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"IMG_01.png", "IMG_02.png"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ops := []plan.RenameOp{
		{OldPath: filepath.Join(dir, "IMG_01.png"), NewPath: filepath.Join(dir, "vacation_01.png"), OldName: "IMG_01.png", NewName: "vacation_01.png", SourceName: "vacation_01.jpg"},
		{OldPath: filepath.Join(dir, "IMG_02.png"), NewPath: filepath.Join(dir, "vacation_02.png"), OldName: "IMG_02.png", NewName: "vacation_02.png", SourceName: "vacation_02.jpg"},
	}
	result, err := NewExecutor(nil).Execute(context.Background(), ops)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Success != 2 {
		t.Fatalf("success = %d, errors = %v", result.Success, result.Errors)
	}
	if !reflect.DeepEqual(result.Renamed, ops) {
		t.Errorf("renamed = %v, want %v", result.Renamed, ops)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if want := []string{"vacation_01.png", "vacation_02.png"}; !reflect.DeepEqual(names, want) {
		t.Errorf("files = %v, want %v", names, want)
	}
}
