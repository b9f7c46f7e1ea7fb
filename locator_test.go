package procstream

import (
	"context"
	"testing"
)

func TestFindExecutables(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("finds the shell", func(t *testing.T) {
		t.Parallel()

		paths := FindExecutables(ctx, "sh", 10)
		if len(paths) == 0 {
			t.Fatal("expected at least one path for sh")
		}
		for i, p := range paths {
			if p == "" {
				t.Errorf("path %d is empty", i)
			}
		}
	})

	t.Run("caps results", func(t *testing.T) {
		t.Parallel()

		paths := FindExecutables(ctx, "sh", 1)
		if len(paths) > 1 {
			t.Fatalf("len(paths) = %d, want at most 1", len(paths))
		}
	})

	t.Run("unknown name yields empty result", func(t *testing.T) {
		t.Parallel()

		// The lookup command exits non-zero; the failure is swallowed at
		// this boundary and conflated with "not found".
		paths := FindExecutables(ctx, "no-such-binary-9a1f0c", 10)
		if len(paths) != 0 {
			t.Fatalf("paths = %v, want empty", paths)
		}
	})

	t.Run("misuse yields empty result", func(t *testing.T) {
		t.Parallel()

		if paths := FindExecutables(ctx, "", 10); len(paths) != 0 {
			t.Errorf("empty name: paths = %v, want empty", paths)
		}
		if paths := FindExecutables(ctx, "sh", 0); len(paths) != 0 {
			t.Errorf("max 0: paths = %v, want empty", paths)
		}
		if paths := FindExecutables(ctx, "sh", -1); len(paths) != 0 {
			t.Errorf("negative max: paths = %v, want empty", paths)
		}
	})
}

func TestFindExecutable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if p := FindExecutable(ctx, "sh"); p == "" {
		t.Error("expected a path for sh, got empty")
	}
	if p := FindExecutable(ctx, "no-such-binary-9a1f0c"); p != "" {
		t.Errorf("FindExecutable() = %q, want empty", p)
	}
}

func TestExecutableExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if !ExecutableExists(ctx, "sh") {
		t.Error("ExecutableExists(sh) = false, want true")
	}
	if ExecutableExists(ctx, "no-such-binary-9a1f0c") {
		t.Error("ExecutableExists(nonexistent) = true, want false")
	}
}
